package dto

// CreateClassRequest represents a class creation request; the owning teacher is
// taken from the authenticated actor, never from the body.
type CreateClassRequest struct {
	Name       string `json:"name" binding:"required" example:"Grade 7 English"`
	WordBookID *int64 `json:"wordBookId,omitempty" example:"3"`
}

// UpdateClassRequest represents a class update; empty fields are left unchanged
type UpdateClassRequest struct {
	Name       *string `json:"name,omitempty"`
	WordBookID *int64  `json:"wordBookId,omitempty"`
}

// AddStudentRequest represents a roster addition request
type AddStudentRequest struct {
	StudentID int64 `json:"studentId" binding:"required" example:"12"`
}

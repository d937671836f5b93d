package models

import "time"

// Class groups students under exactly one owning teacher, with an optional
// bound word book. StudentIDs has set semantics: a student appears at most once.
type Class struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	TeacherID  int64     `json:"teacherId" db:"teacher_id"`
	StudentIDs []int64   `json:"studentIds" db:"student_ids"`
	WordBookID *int64    `json:"wordBookId,omitempty" db:"word_book_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

package dto

import "github.com/okutan/lexbook/internal/app/models"

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Username string          `json:"username" binding:"required,max=20" example:"ms.chen"`
	Password string          `json:"password" binding:"required,min=6" example:"secret123"`
	Email    string          `json:"email" binding:"required,email" example:"chen@school.example"`
	Role     models.RoleType `json:"role,omitempty" example:"teacher"` // Defaults to student when omitted
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"ms.chen"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// UserResponse is the credential-free representation of a user
type UserResponse struct {
	ID       int64           `json:"id" example:"1"`
	Username string          `json:"username" example:"ms.chen"`
	Email    string          `json:"email" example:"chen@school.example"`
	Role     models.RoleType `json:"role" example:"teacher"`
}

// AuthResponse carries the authenticated user together with a session token
type AuthResponse struct {
	UserResponse
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn" example:"604800"` // Seconds until the token expires
}

// TokenResponse carries a re-issued session token
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn" example:"604800"`
}

// NewUserResponse strips a user down to its public fields
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}

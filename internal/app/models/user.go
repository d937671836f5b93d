package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                  // Unique identifier for the user
	Username  string    `json:"username" db:"username" example:"ms.chen"`                // Unique login name
	Email     string    `json:"email" db:"email" example:"chen@school.example"`          // User's email address
	Password  string    `json:"-" db:"password"`                                         // Hashed credential (excluded from JSON)
	Role      RoleType  `json:"role" db:"role" example:"teacher"`                        // User's role (teacher or student)
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`
}

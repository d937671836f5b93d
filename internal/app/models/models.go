package models

// RoleType defines the user role type
type RoleType string

const (
	RoleTeacher RoleType = "teacher"
	RoleStudent RoleType = "student"
)

// Valid reports whether the role is one of the recognized roles.
func (r RoleType) Valid() bool {
	return r == RoleTeacher || r == RoleStudent
}

package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "Admin"
	RoleTeacher RoleType = "Teacher"
	RoleStudent RoleType = "Student"
)

// ValidRole reports whether the given role is one of the known roles.
func ValidRole(role RoleType) bool {
	switch role {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

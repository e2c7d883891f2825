package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID            int64     `json:"id" db:"id"`
	InstituteName string    `json:"instituteName" db:"institute_name"`
	Country       string    `json:"country" db:"country"`
	City          string    `json:"city" db:"city"`
	FullName      string    `json:"fullName" db:"full_name"`
	Mobile        string    `json:"mobile" db:"mobile"`
	Email         string    `json:"email" db:"email"`
	Password      string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Role          RoleType  `json:"role" db:"role"`
	Branch        *string   `json:"branch,omitempty" db:"branch"`
	Year          *string   `json:"year,omitempty" db:"year"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

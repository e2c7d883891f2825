package dto

import (
	"github.com/digiclass/backend/internal/app/models"
)

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	InstituteName string          `json:"instituteName" binding:"required"`
	Country       string          `json:"country" binding:"required"`
	City          string          `json:"city" binding:"required"`
	FullName      string          `json:"fullName" binding:"required"`
	Mobile        string          `json:"mobile" binding:"required"`
	Email         string          `json:"email" binding:"required,email"`
	Password      string          `json:"password" binding:"required,min=8"`
	Role          models.RoleType `json:"role" binding:"required"`
	Branch        *string         `json:"branch,omitempty"`
	Year          *string         `json:"year,omitempty"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType"`
	ExpiresIn             int    `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int    `json:"refreshTokenExpiresIn,omitempty"`
}

// UserData is the role-scoped profile subset returned on login
type UserData struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Branch   string `json:"branch"`
	Year     string `json:"year"`
	Role     string `json:"role"`
}

// LoginResponse represents a successful authentication response
type LoginResponse struct {
	Token    TokenResponse `json:"token"`
	UserData UserData      `json:"userData"`
}

// RefreshTokenRequest represents a refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ForgotPasswordRequest starts a password reset
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest completes a password reset
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateProfileRequest represents profile update data. Role is not part of
// the request and cannot be changed through profile routes.
type UpdateProfileRequest struct {
	InstituteName string  `json:"instituteName" binding:"required"`
	Country       string  `json:"country" binding:"required"`
	City          string  `json:"city" binding:"required"`
	FullName      string  `json:"fullName" binding:"required"`
	Mobile        string  `json:"mobile" binding:"required"`
	Branch        *string `json:"branch,omitempty"`
	Year          *string `json:"year,omitempty"`
}

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"User.Name+tag@example.co.in", true},
		{"  user@example.com  ", true},
		{"userexample.com", false},
		{"user@", false},
		{"@example.com", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.email))
		})
	}
}

func TestValidMobile(t *testing.T) {
	tests := []struct {
		mobile string
		want   bool
	}{
		{"9876543210", true},
		{"+919876543210", true},
		{"123456789", false},
		{"98765abc10", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.mobile, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidMobile(tt.mobile))
		})
	}
}

func TestCheckPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantOK   bool
	}{
		{"valid", "abcdef12", true},
		{"too short", "ab1", false},
		{"no digit", "abcdefgh", false},
		{"no letter", "12345678", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := CheckPassword(tt.password)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.NotEmpty(t, reason)
			}
		})
	}
}

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("Asha Patel"))
	assert.False(t, ValidName("A"))
	assert.False(t, ValidName("  "))
}

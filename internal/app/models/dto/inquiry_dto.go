package dto

import (
	"github.com/digiclass/backend/internal/app/models"
)

// CreateInquiryRequest represents an admission inquiry payload
type CreateInquiryRequest struct {
	Name         string  `json:"name" binding:"required"`
	Mobile       string  `json:"mobile" binding:"required"`
	Standard     string  `json:"standard" binding:"required"`
	CourseType   string  `json:"courseType" binding:"required"`
	FollowUpDate *string `json:"followUpDate,omitempty"` // YYYY-MM-DD
	Note         *string `json:"note,omitempty"`
}

// UpdateInquiryRequest updates an inquiry, including its follow-up status
type UpdateInquiryRequest struct {
	Name         string               `json:"name" binding:"required"`
	Mobile       string               `json:"mobile" binding:"required"`
	Standard     string               `json:"standard" binding:"required"`
	CourseType   string               `json:"courseType" binding:"required"`
	Status       models.InquiryStatus `json:"status" binding:"required"`
	FollowUpDate *string              `json:"followUpDate,omitempty"` // YYYY-MM-DD
	Note         *string              `json:"note,omitempty"`
}

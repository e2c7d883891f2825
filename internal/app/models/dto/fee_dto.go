package dto

import (
	"github.com/digiclass/backend/internal/app/models"
)

// CreateFeeStructureRequest defines the fee for a standard/course-type pair
type CreateFeeStructureRequest struct {
	Standard   string  `json:"standard" binding:"required"`
	CourseType string  `json:"courseType" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
}

// UpdateFeeStructureRequest represents a fee structure update payload
type UpdateFeeStructureRequest = CreateFeeStructureRequest

// RecordFeePaymentRequest records a fee collection entry for a student
type RecordFeePaymentRequest struct {
	StudentID int64              `json:"studentId" binding:"required,min=1"`
	Amount    float64            `json:"amount" binding:"required,gt=0"`
	PaidOn    string             `json:"paidOn" binding:"required"` // YYYY-MM-DD
	Mode      models.PaymentMode `json:"mode" binding:"required"`
	Note      *string            `json:"note,omitempty"`
}

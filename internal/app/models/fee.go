package models

import (
	"time"
)

// PaymentMode defines how a fee payment was made
type PaymentMode string

const (
	PaymentCash   PaymentMode = "CASH"
	PaymentCheque PaymentMode = "CHEQUE"
	PaymentOnline PaymentMode = "ONLINE"
)

// ValidPaymentMode reports whether the given mode is known.
func ValidPaymentMode(mode PaymentMode) bool {
	switch mode {
	case PaymentCash, PaymentCheque, PaymentOnline:
		return true
	}
	return false
}

// FeeStructure defines the fee amount for a standard/course-type pair
type FeeStructure struct {
	ID         int64     `json:"id" db:"id"`
	Standard   string    `json:"standard" db:"standard"`
	CourseType string    `json:"courseType" db:"course_type"`
	Amount     float64   `json:"amount" db:"amount"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// FeePayment defines a single fee collection entry for a student
type FeePayment struct {
	ID        int64       `json:"id" db:"id"`
	StudentID int64       `json:"studentId" db:"student_id"`
	Amount    float64     `json:"amount" db:"amount"`
	PaidOn    time.Time   `json:"paidOn" db:"paid_on"`
	Mode      PaymentMode `json:"mode" db:"mode"`
	Note      *string     `json:"note,omitempty" db:"note"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
}

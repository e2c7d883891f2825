package models

import (
	"time"
)

// InquiryStatus tracks the follow-up state of an admission inquiry
type InquiryStatus string

const (
	InquiryOpen     InquiryStatus = "OPEN"
	InquiryFollowUp InquiryStatus = "FOLLOW_UP"
	InquiryClosed   InquiryStatus = "CLOSED"
)

// ValidInquiryStatus reports whether the given status is known.
func ValidInquiryStatus(status InquiryStatus) bool {
	switch status {
	case InquiryOpen, InquiryFollowUp, InquiryClosed:
		return true
	}
	return false
}

// Inquiry defines a prospective-student admission inquiry
type Inquiry struct {
	ID           int64         `json:"id" db:"id"`
	Name         string        `json:"name" db:"name"`
	Mobile       string        `json:"mobile" db:"mobile"`
	Standard     string        `json:"standard" db:"standard"`
	CourseType   string        `json:"courseType" db:"course_type"`
	Status       InquiryStatus `json:"status" db:"status"`
	FollowUpDate *time.Time    `json:"followUpDate,omitempty" db:"follow_up_date"`
	Note         *string       `json:"note,omitempty" db:"note"`
	CreatedAt    time.Time     `json:"createdAt" db:"created_at"`
}

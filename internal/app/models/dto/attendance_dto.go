package dto

import (
	"github.com/digiclass/backend/internal/app/models"
)

// AttendanceEntry is one student's status in a bulk attendance submission
type AttendanceEntry struct {
	StudentID int64                   `json:"studentId" binding:"required,min=1"`
	Status    models.AttendanceStatus `json:"status" binding:"required"`
}

// RecordAttendanceRequest marks attendance for a class batch on a date.
// Re-submitting an already-marked student/date pair updates the status.
type RecordAttendanceRequest struct {
	ClassBatchID int64             `json:"classBatchId" binding:"required,min=1"`
	Date         string            `json:"date" binding:"required"` // YYYY-MM-DD
	Entries      []AttendanceEntry `json:"entries" binding:"required,min=1,dive"`
}

// UpdateAttendanceRequest changes the status of a single attendance record
type UpdateAttendanceRequest struct {
	Status models.AttendanceStatus `json:"status" binding:"required"`
}

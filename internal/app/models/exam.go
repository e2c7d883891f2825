package models

import (
	"time"
)

// Exam defines a scheduled manual exam based on the 'exams' table
type Exam struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Standard     string    `json:"standard" db:"standard"`
	Subject      string    `json:"subject" db:"subject"`
	ExamDate     time.Time `json:"examDate" db:"exam_date"`
	TotalMarks   int       `json:"totalMarks" db:"total_marks"`
	ClassBatchID *int64    `json:"classBatchId,omitempty" db:"class_batch_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

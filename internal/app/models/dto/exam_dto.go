package dto

// CreateExamRequest represents an exam creation payload
type CreateExamRequest struct {
	Name         string `json:"name" binding:"required"`
	Standard     string `json:"standard" binding:"required"`
	Subject      string `json:"subject" binding:"required"`
	ExamDate     string `json:"examDate" binding:"required"` // YYYY-MM-DD
	TotalMarks   int    `json:"totalMarks" binding:"required,min=1"`
	ClassBatchID *int64 `json:"classBatchId,omitempty"`
}

// UpdateExamRequest represents an exam update payload
type UpdateExamRequest = CreateExamRequest

package dto

// CreateClassBatchRequest represents a class batch creation payload
type CreateClassBatchRequest struct {
	Name     string `json:"name" binding:"required"`
	Strength int    `json:"strength" binding:"required,min=1"`
	FromTime string `json:"fromTime" binding:"required"` // HH:MM
	ToTime   string `json:"toTime" binding:"required"`   // HH:MM
}

// UpdateClassBatchRequest represents a class batch update payload
type UpdateClassBatchRequest = CreateClassBatchRequest

package models

import (
	"time"
)

// ClassBatch defines a scheduled student group with a fixed seat capacity.
// Batch membership lives on the student side (students.class_batch_id);
// the roster is always derived by query, never stored as a list here.
type ClassBatch struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Strength  int       `json:"strength" db:"strength"` // seat capacity
	FromTime  string    `json:"fromTime" db:"from_time"`
	ToTime    string    `json:"toTime" db:"to_time"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// AssignedCount is the current roster size, populated on reads.
	AssignedCount int `json:"assignedCount" db:"-"`
}

// SeatsAvailable returns the number of free seats in the batch.
func (b *ClassBatch) SeatsAvailable() int {
	free := b.Strength - b.AssignedCount
	if free < 0 {
		return 0
	}
	return free
}

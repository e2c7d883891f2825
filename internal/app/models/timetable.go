package models

import (
	"time"
)

// TimetableSlot is one lecture slot in a timetable day
type TimetableSlot struct {
	Subject  string `json:"subject"`
	FromTime string `json:"fromTime"`
	ToTime   string `json:"toTime"`
}

// TimetableDay is one weekday's ordered lecture slots
type TimetableDay struct {
	Day      string          `json:"day"`
	Lectures []TimetableSlot `json:"lectures"`
}

// Timetable defines the weekly lecture grid for a class batch.
// The grid is persisted as JSONB in the 'timetables' table.
type Timetable struct {
	ClassBatchID int64          `json:"classBatchId" db:"class_batch_id"`
	Days         []TimetableDay `json:"days" db:"grid"`
	UpdatedAt    time.Time      `json:"updatedAt" db:"updated_at"`
}

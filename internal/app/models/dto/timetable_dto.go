package dto

// TimetableSlotRequest is one lecture slot in a timetable upsert
type TimetableSlotRequest struct {
	Subject  string `json:"subject"`
	FromTime string `json:"fromTime" binding:"required"`
	ToTime   string `json:"toTime" binding:"required"`
}

// TimetableDayRequest is one weekday's slots in a timetable upsert
type TimetableDayRequest struct {
	Day      string                 `json:"day" binding:"required"`
	Lectures []TimetableSlotRequest `json:"lectures" binding:"dive"`
}

// UpsertTimetableRequest replaces a class batch's weekly grid.
// Slots with an empty subject are dropped on write.
type UpsertTimetableRequest struct {
	Days []TimetableDayRequest `json:"days" binding:"required,dive"`
}

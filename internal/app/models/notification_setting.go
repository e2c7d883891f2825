package models

import (
	"time"
)

// NotificationSettings defines a user's automatic notification toggles
type NotificationSettings struct {
	UserID          int64     `json:"userId" db:"user_id"`
	AbsenceAlerts   bool      `json:"absenceAlerts" db:"absence_alerts"`
	FeeReminders    bool      `json:"feeReminders" db:"fee_reminders"`
	ExamAlerts      bool      `json:"examAlerts" db:"exam_alerts"`
	WhatsappEnabled bool      `json:"whatsappEnabled" db:"whatsapp_enabled"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

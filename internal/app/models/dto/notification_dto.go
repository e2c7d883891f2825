package dto

// UpdateNotificationSettingsRequest upserts the caller's notification toggles
type UpdateNotificationSettingsRequest struct {
	AbsenceAlerts   bool `json:"absenceAlerts"`
	FeeReminders    bool `json:"feeReminders"`
	ExamAlerts      bool `json:"examAlerts"`
	WhatsappEnabled bool `json:"whatsappEnabled"`
}

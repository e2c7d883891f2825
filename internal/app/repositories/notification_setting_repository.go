package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/digiclass/backend/internal/app/models"
	"github.com/digiclass/backend/internal/pkg/apperrors"
	"github.com/digiclass/backend/internal/pkg/dberrors"
)

// NotificationSettingRepository handles database operations for per-user
// notification preferences
type NotificationSettingRepository struct {
	db *pgxpool.Pool
}

// NewNotificationSettingRepository creates a new notification setting repository
func NewNotificationSettingRepository(db *pgxpool.Pool) *NotificationSettingRepository {
	return &NotificationSettingRepository{db: db}
}

// Get retrieves the notification settings for a user
func (r *NotificationSettingRepository) Get(ctx context.Context, userID int64) (*models.NotificationSettings, error) {
	query := `
		SELECT user_id, absence_alerts, fee_reminders, exam_alerts, whatsapp_enabled, updated_at
		FROM notification_settings
		WHERE user_id = $1
	`

	var ns models.NotificationSettings
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&ns.UserID,
		&ns.AbsenceAlerts,
		&ns.FeeReminders,
		&ns.ExamAlerts,
		&ns.WhatsappEnabled,
		&ns.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving notification settings: %w", err)
	}

	return &ns, nil
}

// Upsert stores the notification settings for a user
func (r *NotificationSettingRepository) Upsert(ctx context.Context, ns *models.NotificationSettings) error {
	query := `
		INSERT INTO notification_settings (user_id, absence_alerts, fee_reminders, exam_alerts, whatsapp_enabled, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET
			absence_alerts = EXCLUDED.absence_alerts,
			fee_reminders = EXCLUDED.fee_reminders,
			exam_alerts = EXCLUDED.exam_alerts,
			whatsapp_enabled = EXCLUDED.whatsapp_enabled,
			updated_at = NOW()
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		ns.UserID, ns.AbsenceAlerts, ns.FeeReminders, ns.ExamAlerts, ns.WhatsappEnabled,
	).Scan(&ns.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error storing notification settings: %w", err)
	}

	return nil
}

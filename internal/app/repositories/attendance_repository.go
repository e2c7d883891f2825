package repositories

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/digiclass/backend/internal/app/models"
	"github.com/digiclass/backend/internal/db"
	"github.com/digiclass/backend/internal/pkg/apperrors"
)

// AttendanceFilter narrows attendance listings
type AttendanceFilter struct {
	ClassBatchID *int64
	StudentID    *int64
	From         *time.Time
	To           *time.Time
}

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// RecordBatch upserts attendance for a batch on a given date. A second
// submission for the same student and date overwrites the earlier status.
func (r *AttendanceRepository) RecordBatch(ctx context.Context, records []*models.AttendanceRecord) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO attendance_records (student_id, class_batch_id, date, status)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (student_id, date)
			DO UPDATE SET status = EXCLUDED.status, class_batch_id = EXCLUDED.class_batch_id
			RETURNING id, created_at
		`
		for _, rec := range records {
			err := tx.QueryRow(ctx, query,
				rec.StudentID, rec.ClassBatchID, rec.Date, rec.Status,
			).Scan(&rec.ID, &rec.CreatedAt)
			if err != nil {
				return fmt.Errorf("error recording attendance: %w", err)
			}
		}
		return nil
	})
}

// List retrieves attendance records matching the filter, most recent first
func (r *AttendanceRepository) List(ctx context.Context, filter AttendanceFilter) ([]*models.AttendanceRecord, error) {
	builder := r.sb.
		Select("id", "student_id", "class_batch_id", "date", "status", "created_at").
		From("attendance_records").
		OrderBy("date DESC, student_id")

	if filter.ClassBatchID != nil {
		builder = builder.Where(sq.Eq{"class_batch_id": *filter.ClassBatchID})
	}
	if filter.StudentID != nil {
		builder = builder.Where(sq.Eq{"student_id": *filter.StudentID})
	}
	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"date": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(sq.LtOrEq{"date": *filter.To})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building attendance list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance: %w", err)
	}
	defer rows.Close()

	var records []*models.AttendanceRecord
	for rows.Next() {
		var rec models.AttendanceRecord
		err := rows.Scan(&rec.ID, &rec.StudentID, &rec.ClassBatchID, &rec.Date, &rec.Status, &rec.CreatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// UpdateStatus corrects a single attendance record
func (r *AttendanceRepository) UpdateStatus(ctx context.Context, id int64, status models.AttendanceStatus) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE attendance_records SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating attendance: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceNotFound
	}

	return nil
}

package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/digiclass/backend/internal/app/models"
	"github.com/digiclass/backend/internal/pkg/apperrors"
	"github.com/digiclass/backend/internal/pkg/dberrors"
)

// TimetableRepository handles database operations for weekly timetables.
// The lecture grid is stored as a JSONB document keyed by class batch.
type TimetableRepository struct {
	db *pgxpool.Pool
}

// NewTimetableRepository creates a new timetable repository
func NewTimetableRepository(db *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{db: db}
}

// Get retrieves the timetable for a class batch
func (r *TimetableRepository) Get(ctx context.Context, classBatchID int64) (*models.Timetable, error) {
	query := `SELECT class_batch_id, grid, updated_at FROM timetables WHERE class_batch_id = $1`

	var tt models.Timetable
	var grid []byte
	err := r.db.QueryRow(ctx, query, classBatchID).Scan(&tt.ClassBatchID, &grid, &tt.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTimetableNotFound
		}
		return nil, fmt.Errorf("error retrieving timetable: %w", err)
	}

	if err := json.Unmarshal(grid, &tt.Days); err != nil {
		return nil, fmt.Errorf("error decoding timetable grid: %w", err)
	}

	return &tt, nil
}

// Upsert stores the timetable for a class batch, replacing any existing grid
func (r *TimetableRepository) Upsert(ctx context.Context, tt *models.Timetable) error {
	grid, err := json.Marshal(tt.Days)
	if err != nil {
		return fmt.Errorf("error encoding timetable grid: %w", err)
	}

	query := `
		INSERT INTO timetables (class_batch_id, grid, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (class_batch_id)
		DO UPDATE SET grid = EXCLUDED.grid, updated_at = NOW()
		RETURNING updated_at
	`

	if err := r.db.QueryRow(ctx, query, tt.ClassBatchID, grid).Scan(&tt.UpdatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrClassBatchNotFound
		}
		return fmt.Errorf("error storing timetable: %w", err)
	}

	return nil
}

// Delete removes the timetable for a class batch
func (r *TimetableRepository) Delete(ctx context.Context, classBatchID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM timetables WHERE class_batch_id = $1`, classBatchID)
	if err != nil {
		return fmt.Errorf("error deleting timetable: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTimetableNotFound
	}

	return nil
}

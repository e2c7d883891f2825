package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/digiclass/backend/internal/app/models"
	"github.com/digiclass/backend/internal/db"
	"github.com/digiclass/backend/internal/pkg/apperrors"
	"github.com/digiclass/backend/internal/pkg/dberrors"
)

// ClassBatchRepository handles database operations for class batches and
// their rosters. Membership lives solely on students.class_batch_id, so
// roster changes are single-table updates guarded by a row lock on the batch.
type ClassBatchRepository struct {
	db *pgxpool.Pool
}

// NewClassBatchRepository creates a new class batch repository
func NewClassBatchRepository(db *pgxpool.Pool) *ClassBatchRepository {
	return &ClassBatchRepository{db: db}
}

// Create inserts a new class batch
func (r *ClassBatchRepository) Create(ctx context.Context, batch *models.ClassBatch) error {
	query := `
		INSERT INTO class_batches (name, strength, from_time, to_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		batch.Name, batch.Strength, batch.FromTime, batch.ToTime,
	).Scan(&batch.ID, &batch.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "class_batches_name_key") {
			return apperrors.ErrClassBatchAlreadyExists
		}
		return fmt.Errorf("error creating class batch: %w", err)
	}

	return nil
}

// GetByID retrieves a class batch with its current member count
func (r *ClassBatchRepository) GetByID(ctx context.Context, id int64) (*models.ClassBatch, error) {
	query := `
		SELECT cb.id, cb.name, cb.strength, cb.from_time, cb.to_time, cb.created_at,
		       COUNT(s.id) AS assigned_count
		FROM class_batches cb
		LEFT JOIN students s ON s.class_batch_id = cb.id
		WHERE cb.id = $1
		GROUP BY cb.id
	`

	var batch models.ClassBatch
	err := r.db.QueryRow(ctx, query, id).Scan(
		&batch.ID,
		&batch.Name,
		&batch.Strength,
		&batch.FromTime,
		&batch.ToTime,
		&batch.CreatedAt,
		&batch.AssignedCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassBatchNotFound
		}
		return nil, fmt.Errorf("error retrieving class batch: %w", err)
	}

	return &batch, nil
}

// List retrieves all class batches with member counts, newest first
func (r *ClassBatchRepository) List(ctx context.Context) ([]*models.ClassBatch, error) {
	query := `
		SELECT cb.id, cb.name, cb.strength, cb.from_time, cb.to_time, cb.created_at,
		       COUNT(s.id) AS assigned_count
		FROM class_batches cb
		LEFT JOIN students s ON s.class_batch_id = cb.id
		GROUP BY cb.id
		ORDER BY cb.created_at DESC, cb.id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing class batches: %w", err)
	}
	defer rows.Close()

	var batches []*models.ClassBatch
	for rows.Next() {
		var batch models.ClassBatch
		err := rows.Scan(
			&batch.ID,
			&batch.Name,
			&batch.Strength,
			&batch.FromTime,
			&batch.ToTime,
			&batch.CreatedAt,
			&batch.AssignedCount,
		)
		if err != nil {
			return nil, err
		}
		batches = append(batches, &batch)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return batches, nil
}

// Update replaces a batch's name, strength and timing
func (r *ClassBatchRepository) Update(ctx context.Context, batch *models.ClassBatch) error {
	query := `
		UPDATE class_batches
		SET name = $1, strength = $2, from_time = $3, to_time = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		batch.Name, batch.Strength, batch.FromTime, batch.ToTime, batch.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "class_batches_name_key") {
			return apperrors.ErrClassBatchAlreadyExists
		}
		return fmt.Errorf("error updating class batch: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassBatchNotFound
	}

	return nil
}

// Delete removes a class batch. Member students are detached, not deleted;
// the students FK is declared ON DELETE SET NULL.
func (r *ClassBatchRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM class_batches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting class batch: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassBatchNotFound
	}

	return nil
}

// AssignStudent enrolls a student into a batch. The batch row is locked so
// the seat count check and the membership update are atomic under
// concurrent assignments. Re-assigning a student already in the batch
// succeeds without consuming a seat.
func (r *ClassBatchRepository) AssignStudent(ctx context.Context, batchID, studentID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var strength int
		err := tx.QueryRow(ctx,
			`SELECT strength FROM class_batches WHERE id = $1 FOR UPDATE`,
			batchID).Scan(&strength)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrClassBatchNotFound
			}
			return fmt.Errorf("error locking class batch: %w", err)
		}

		var currentBatch *int64
		err = tx.QueryRow(ctx,
			`SELECT class_batch_id FROM students WHERE id = $1`,
			studentID).Scan(&currentBatch)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrStudentNotFound
			}
			return fmt.Errorf("error retrieving student membership: %w", err)
		}

		if currentBatch != nil && *currentBatch == batchID {
			return nil
		}

		var assigned int
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM students WHERE class_batch_id = $1`,
			batchID).Scan(&assigned)
		if err != nil {
			return fmt.Errorf("error counting batch members: %w", err)
		}

		if assigned >= strength {
			return apperrors.ErrClassBatchFull
		}

		if _, err := tx.Exec(ctx,
			`UPDATE students SET class_batch_id = $1, updated_at = NOW() WHERE id = $2`,
			batchID, studentID); err != nil {
			return fmt.Errorf("error assigning student: %w", err)
		}

		return nil
	})
}

// RemoveStudent detaches a student from a batch. The student must currently
// belong to that batch.
func (r *ClassBatchRepository) RemoveStudent(ctx context.Context, batchID, studentID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM class_batches WHERE id = $1)`,
			batchID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking class batch: %w", err)
		}
		if !exists {
			return apperrors.ErrClassBatchNotFound
		}

		cmdTag, err := tx.Exec(ctx,
			`UPDATE students SET class_batch_id = NULL, updated_at = NOW() WHERE id = $1 AND class_batch_id = $2`,
			studentID, batchID)
		if err != nil {
			return fmt.Errorf("error removing student: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotAssigned
		}

		return nil
	})
}

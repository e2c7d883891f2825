package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/digiclass/backend/internal/app/models"
	"github.com/digiclass/backend/internal/pkg/apperrors"
	"github.com/digiclass/backend/internal/pkg/dberrors"
)

// FeePaymentFilter narrows payment listings
type FeePaymentFilter struct {
	StudentID *int64
	From      *time.Time
	To        *time.Time
}

// FeeRepository handles database operations for fee structures and payments
type FeeRepository struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

// NewFeeRepository creates a new fee repository
func NewFeeRepository(db *pgxpool.Pool) *FeeRepository {
	return &FeeRepository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateStructure inserts a fee structure for a standard and course type
func (r *FeeRepository) CreateStructure(ctx context.Context, fs *models.FeeStructure) error {
	query := `
		INSERT INTO fee_structures (standard, course_type, amount)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, fs.Standard, fs.CourseType, fs.Amount).
		Scan(&fs.ID, &fs.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "fee_structures_standard_course_type_key") {
			return apperrors.ErrFeeStructureExists
		}
		return fmt.Errorf("error creating fee structure: %w", err)
	}

	return nil
}

// ListStructures retrieves all fee structures
func (r *FeeRepository) ListStructures(ctx context.Context) ([]*models.FeeStructure, error) {
	query := `
		SELECT id, standard, course_type, amount, created_at
		FROM fee_structures
		ORDER BY standard, course_type
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing fee structures: %w", err)
	}
	defer rows.Close()

	var structures []*models.FeeStructure
	for rows.Next() {
		var fs models.FeeStructure
		if err := rows.Scan(&fs.ID, &fs.Standard, &fs.CourseType, &fs.Amount, &fs.CreatedAt); err != nil {
			return nil, err
		}
		structures = append(structures, &fs)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return structures, nil
}

// GetStructure retrieves the fee structure for a standard and course type
func (r *FeeRepository) GetStructure(ctx context.Context, standard, courseType string) (*models.FeeStructure, error) {
	query := `
		SELECT id, standard, course_type, amount, created_at
		FROM fee_structures
		WHERE standard = $1 AND course_type = $2
	`

	var fs models.FeeStructure
	err := r.db.QueryRow(ctx, query, standard, courseType).
		Scan(&fs.ID, &fs.Standard, &fs.CourseType, &fs.Amount, &fs.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFeeStructureNotFound
		}
		return nil, fmt.Errorf("error retrieving fee structure: %w", err)
	}

	return &fs, nil
}

// UpdateStructure replaces the amount of a fee structure
func (r *FeeRepository) UpdateStructure(ctx context.Context, fs *models.FeeStructure) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE fee_structures SET amount = $1 WHERE id = $2`, fs.Amount, fs.ID)
	if err != nil {
		return fmt.Errorf("error updating fee structure: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeeStructureNotFound
	}

	return nil
}

// DeleteStructure removes a fee structure
func (r *FeeRepository) DeleteStructure(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM fee_structures WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting fee structure: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeeStructureNotFound
	}

	return nil
}

// RecordPayment inserts a fee payment for a student
func (r *FeeRepository) RecordPayment(ctx context.Context, payment *models.FeePayment) error {
	query := `
		INSERT INTO fee_payments (student_id, amount, paid_on, mode, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		payment.StudentID, payment.Amount, payment.PaidOn, payment.Mode, payment.Note,
	).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error recording fee payment: %w", err)
	}

	return nil
}

// ListPayments retrieves payments matching the filter, most recent first
func (r *FeeRepository) ListPayments(ctx context.Context, filter FeePaymentFilter) ([]*models.FeePayment, error) {
	builder := r.sb.
		Select("id", "student_id", "amount", "paid_on", "mode", "note", "created_at").
		From("fee_payments").
		OrderBy("paid_on DESC, id DESC")

	if filter.StudentID != nil {
		builder = builder.Where(sq.Eq{"student_id": *filter.StudentID})
	}
	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"paid_on": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(sq.LtOrEq{"paid_on": *filter.To})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building payment list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing fee payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.FeePayment
	for rows.Next() {
		var p models.FeePayment
		err := rows.Scan(&p.ID, &p.StudentID, &p.Amount, &p.PaidOn, &p.Mode, &p.Note, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

// SumPayments returns the total amount paid by a student
func (r *FeeRepository) SumPayments(ctx context.Context, studentID int64) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM fee_payments WHERE student_id = $1`,
		studentID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error summing fee payments: %w", err)
	}
	return total, nil
}

// DeletePayment removes a payment record
func (r *FeeRepository) DeletePayment(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM fee_payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting fee payment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeePaymentNotFound
	}

	return nil
}

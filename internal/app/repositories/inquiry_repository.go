package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/digiclass/backend/internal/app/models"
	"github.com/digiclass/backend/internal/pkg/apperrors"
)

// InquiryRepository handles database operations for admission inquiries
type InquiryRepository struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

// NewInquiryRepository creates a new inquiry repository
func NewInquiryRepository(db *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create inserts a new inquiry
func (r *InquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	query := `
		INSERT INTO inquiries (name, mobile, standard, course_type, status, follow_up_date, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		inquiry.Name,
		inquiry.Mobile,
		inquiry.Standard,
		inquiry.CourseType,
		inquiry.Status,
		inquiry.FollowUpDate,
		inquiry.Note,
	).Scan(&inquiry.ID, &inquiry.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating inquiry: %w", err)
	}

	return nil
}

// GetByID retrieves an inquiry by ID
func (r *InquiryRepository) GetByID(ctx context.Context, id int64) (*models.Inquiry, error) {
	query := `
		SELECT id, name, mobile, standard, course_type, status, follow_up_date, note, created_at
		FROM inquiries
		WHERE id = $1
	`

	var inquiry models.Inquiry
	err := r.db.QueryRow(ctx, query, id).Scan(
		&inquiry.ID,
		&inquiry.Name,
		&inquiry.Mobile,
		&inquiry.Standard,
		&inquiry.CourseType,
		&inquiry.Status,
		&inquiry.FollowUpDate,
		&inquiry.Note,
		&inquiry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("error retrieving inquiry: %w", err)
	}

	return &inquiry, nil
}

// List retrieves inquiries, optionally filtered by status, newest first
func (r *InquiryRepository) List(ctx context.Context, status models.InquiryStatus) ([]*models.Inquiry, error) {
	builder := r.sb.
		Select("id", "name", "mobile", "standard", "course_type", "status", "follow_up_date", "note", "created_at").
		From("inquiries").
		OrderBy("created_at DESC, id DESC")

	if status != "" {
		builder = builder.Where(sq.Eq{"status": status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building inquiry list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []*models.Inquiry
	for rows.Next() {
		var inquiry models.Inquiry
		err := rows.Scan(
			&inquiry.ID,
			&inquiry.Name,
			&inquiry.Mobile,
			&inquiry.Standard,
			&inquiry.CourseType,
			&inquiry.Status,
			&inquiry.FollowUpDate,
			&inquiry.Note,
			&inquiry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		inquiries = append(inquiries, &inquiry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return inquiries, nil
}

// Update replaces an inquiry's fields
func (r *InquiryRepository) Update(ctx context.Context, inquiry *models.Inquiry) error {
	query := `
		UPDATE inquiries
		SET name = $1, mobile = $2, standard = $3, course_type = $4, status = $5, follow_up_date = $6, note = $7
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		inquiry.Name,
		inquiry.Mobile,
		inquiry.Standard,
		inquiry.CourseType,
		inquiry.Status,
		inquiry.FollowUpDate,
		inquiry.Note,
		inquiry.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating inquiry: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInquiryNotFound
	}

	return nil
}

// Delete removes an inquiry
func (r *InquiryRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM inquiries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting inquiry: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInquiryNotFound
	}

	return nil
}

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

// ExamFilter narrows exam listings
type ExamFilter struct {
	Standard     string
	ClassBatchID *int64
}

// ExamRepository handles database operations for exams
type ExamRepository struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

// NewExamRepository creates a new exam repository
func NewExamRepository(db *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create inserts a new exam
func (r *ExamRepository) Create(ctx context.Context, exam *models.Exam) error {
	query := `
		INSERT INTO exams (name, standard, subject, exam_date, total_marks, class_batch_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		exam.Name, exam.Standard, exam.Subject, exam.ExamDate, exam.TotalMarks, exam.ClassBatchID,
	).Scan(&exam.ID, &exam.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating exam: %w", err)
	}

	return nil
}

// GetByID retrieves an exam by ID
func (r *ExamRepository) GetByID(ctx context.Context, id int64) (*models.Exam, error) {
	query := `
		SELECT id, name, standard, subject, exam_date, total_marks, class_batch_id, created_at
		FROM exams
		WHERE id = $1
	`

	var exam models.Exam
	err := r.db.QueryRow(ctx, query, id).Scan(
		&exam.ID,
		&exam.Name,
		&exam.Standard,
		&exam.Subject,
		&exam.ExamDate,
		&exam.TotalMarks,
		&exam.ClassBatchID,
		&exam.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExamNotFound
		}
		return nil, fmt.Errorf("error retrieving exam: %w", err)
	}

	return &exam, nil
}

// List retrieves exams matching the filter, upcoming first
func (r *ExamRepository) List(ctx context.Context, filter ExamFilter) ([]*models.Exam, error) {
	builder := r.sb.
		Select("id", "name", "standard", "subject", "exam_date", "total_marks", "class_batch_id", "created_at").
		From("exams").
		OrderBy("exam_date DESC, id DESC")

	if filter.Standard != "" {
		builder = builder.Where(sq.Eq{"standard": filter.Standard})
	}
	if filter.ClassBatchID != nil {
		builder = builder.Where(sq.Eq{"class_batch_id": *filter.ClassBatchID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building exam list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing exams: %w", err)
	}
	defer rows.Close()

	var exams []*models.Exam
	for rows.Next() {
		var exam models.Exam
		err := rows.Scan(
			&exam.ID,
			&exam.Name,
			&exam.Standard,
			&exam.Subject,
			&exam.ExamDate,
			&exam.TotalMarks,
			&exam.ClassBatchID,
			&exam.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		exams = append(exams, &exam)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exams, nil
}

// Update replaces an exam's fields
func (r *ExamRepository) Update(ctx context.Context, exam *models.Exam) error {
	query := `
		UPDATE exams
		SET name = $1, standard = $2, subject = $3, exam_date = $4, total_marks = $5, class_batch_id = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		exam.Name, exam.Standard, exam.Subject, exam.ExamDate, exam.TotalMarks, exam.ClassBatchID, exam.ID)
	if err != nil {
		return fmt.Errorf("error updating exam: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}

	return nil
}

// Delete removes an exam
func (r *ExamRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM exams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting exam: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}

	return nil
}

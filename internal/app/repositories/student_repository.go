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

// StudentFilter narrows student listings
type StudentFilter struct {
	Standard     string
	CourseType   string
	ClassBatchID *int64
	Unassigned   bool
}

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var studentColumns = []string{
	"id", "user_id", "first_name", "middle_name", "last_name",
	"father_name", "mother_name", "father_mobile", "mother_mobile",
	"mobile", "email", "address", "state", "city", "school",
	"gender", "standard", "course_type", "roll_number",
	"birth_date", "join_date", "class_batch_id",
	"created_at", "updated_at",
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.FirstName,
		&s.MiddleName,
		&s.LastName,
		&s.FatherName,
		&s.MotherName,
		&s.FatherMobile,
		&s.MotherMobile,
		&s.Mobile,
		&s.Email,
		&s.Address,
		&s.State,
		&s.City,
		&s.School,
		&s.Gender,
		&s.Standard,
		&s.CourseType,
		&s.RollNumber,
		&s.BirthDate,
		&s.JoinDate,
		&s.ClassBatchID,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new student record
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (
			user_id, first_name, middle_name, last_name,
			father_name, mother_name, father_mobile, mother_mobile,
			mobile, email, address, state, city, school,
			gender, standard, course_type, roll_number,
			birth_date, join_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.UserID,
		student.FirstName,
		student.MiddleName,
		student.LastName,
		student.FatherName,
		student.MotherName,
		student.FatherMobile,
		student.MotherMobile,
		student.Mobile,
		student.Email,
		student.Address,
		student.State,
		student.City,
		student.School,
		student.Gender,
		student.Standard,
		student.CourseType,
		student.RollNumber,
		student.BirthDate,
		student.JoinDate,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrStudentEmailExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query, args, err := r.sb.
		Select(studentColumns...).
		From("students").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building student select query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

func applyStudentFilter(builder sq.SelectBuilder, filter StudentFilter) sq.SelectBuilder {
	if filter.Standard != "" {
		builder = builder.Where(sq.Eq{"standard": filter.Standard})
	}
	if filter.CourseType != "" {
		builder = builder.Where(sq.Eq{"course_type": filter.CourseType})
	}
	if filter.ClassBatchID != nil {
		builder = builder.Where(sq.Eq{"class_batch_id": *filter.ClassBatchID})
	}
	if filter.Unassigned {
		builder = builder.Where("class_batch_id IS NULL")
	}
	return builder
}

// List retrieves students matching the filter, newest first
func (r *StudentRepository) List(ctx context.Context, filter StudentFilter) ([]*models.Student, error) {
	builder := applyStudentFilter(r.sb.
		Select(studentColumns...).
		From("students").
		OrderBy("created_at DESC, id DESC"), filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building student list query: %w", err)
	}

	return r.queryStudents(ctx, query, args)
}

// ListPage retrieves one page of students matching the filter along with
// the total match count
func (r *StudentRepository) ListPage(ctx context.Context, filter StudentFilter, offset uint64, limit int) ([]*models.Student, int64, error) {
	countQuery, countArgs, err := applyStudentFilter(r.sb.
		Select("COUNT(*)").
		From("students"), filter).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building student count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	query, args, err := applyStudentFilter(r.sb.
		Select(studentColumns...).
		From("students").
		OrderBy("created_at DESC, id DESC"), filter).
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building student list query: %w", err)
	}

	students, err := r.queryStudents(ctx, query, args)
	if err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

func (r *StudentRepository) queryStudents(ctx context.Context, query string, args []interface{}) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update replaces a student's editable fields. Batch membership is
// managed by the roster operations, not here.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students SET
			first_name = $1, middle_name = $2, last_name = $3,
			father_name = $4, mother_name = $5, father_mobile = $6, mother_mobile = $7,
			mobile = $8, email = $9, address = $10, state = $11, city = $12, school = $13,
			gender = $14, standard = $15, course_type = $16, roll_number = $17,
			birth_date = $18, join_date = $19, updated_at = $20
		WHERE id = $21
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.FirstName,
		student.MiddleName,
		student.LastName,
		student.FatherName,
		student.MotherName,
		student.FatherMobile,
		student.MotherMobile,
		student.Mobile,
		student.Email,
		student.Address,
		student.State,
		student.City,
		student.School,
		student.Gender,
		student.Standard,
		student.CourseType,
		student.RollNumber,
		student.BirthDate,
		student.JoinDate,
		time.Now(),
		student.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrStudentEmailExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student record
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentHasRelations
		}
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// GetByUserID retrieves the student profile linked to a login account
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	query, args, err := r.sb.
		Select(studentColumns...).
		From("students").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building student select query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by user: %w", err)
	}

	return student, nil
}

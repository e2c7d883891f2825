package services

import (
	"context"

	"github.com/digiclass/backend/internal/app/models"
	"github.com/digiclass/backend/internal/app/models/dto"
	"github.com/digiclass/backend/internal/app/repositories"
	"github.com/digiclass/backend/internal/pkg/apperrors"
	"github.com/digiclass/backend/internal/pkg/helpers"
	"github.com/digiclass/backend/internal/pkg/logger"
	"github.com/digiclass/backend/internal/pkg/validation"
)

// StudentService handles student registration and profile operations
type StudentService struct {
	studentRepo *repositories.StudentRepository
	batchRepo   *repositories.ClassBatchRepository
}

// NewStudentService creates a new student service
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	batchRepo *repositories.ClassBatchRepository,
) *StudentService {
	return &StudentService{studentRepo: studentRepo, batchRepo: batchRepo}
}

func studentFromRequest(req *dto.CreateStudentRequest) (*models.Student, error) {
	if !validation.ValidEmail(req.Email) {
		return nil, apperrors.NewBadRequestError("invalid email address")
	}
	if !validation.ValidMobile(req.Mobile) {
		return nil, apperrors.NewBadRequestError("invalid mobile number")
	}

	birthDate, err := helpers.ParseDate(req.BirthDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("birthDate must be YYYY-MM-DD")
	}
	joinDate, err := helpers.ParseDate(req.JoinDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("joinDate must be YYYY-MM-DD")
	}

	return &models.Student{
		FirstName:    req.FirstName,
		MiddleName:   req.MiddleName,
		LastName:     req.LastName,
		FatherName:   req.FatherName,
		MotherName:   req.MotherName,
		FatherMobile: req.FatherMobile,
		MotherMobile: req.MotherMobile,
		Mobile:       req.Mobile,
		Email:        req.Email,
		Address:      req.Address,
		State:        req.State,
		City:         req.City,
		School:       req.School,
		Gender:       req.Gender,
		Standard:     req.Standard,
		CourseType:   req.CourseType,
		RollNumber:   req.RollNumber,
		BirthDate:    birthDate,
		JoinDate:     joinDate,
	}, nil
}

// Register creates a new student record
func (s *StudentService) Register(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	student, err := studentFromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	logger.Info().Int64("studentId", student.ID).Str("standard", student.Standard).Msg("Student registered")

	return student, nil
}

// Get retrieves a student with its batch relation populated when assigned
func (s *StudentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if student.ClassBatchID != nil {
		batch, err := s.batchRepo.GetByID(ctx, *student.ClassBatchID)
		if err == nil {
			student.ClassBatch = batch
		}
	}

	return student, nil
}

// GetByUser retrieves the student profile linked to a login account
func (s *StudentService) GetByUser(ctx context.Context, userID int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if student.ClassBatchID != nil {
		batch, err := s.batchRepo.GetByID(ctx, *student.ClassBatchID)
		if err == nil {
			student.ClassBatch = batch
		}
	}

	return student, nil
}

// List retrieves one page of students matching the filter along with the
// total match count
func (s *StudentService) List(ctx context.Context, filter repositories.StudentFilter, offset uint64, limit int) ([]*models.Student, int64, error) {
	return s.studentRepo.ListPage(ctx, filter, offset, limit)
}

// Update replaces a student's profile fields
func (s *StudentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	existing, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	student, err := studentFromRequest(req)
	if err != nil {
		return nil, err
	}
	student.ID = existing.ID
	student.UserID = existing.UserID
	student.ClassBatchID = existing.ClassBatchID
	student.CreatedAt = existing.CreatedAt

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// Delete removes a student record
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}

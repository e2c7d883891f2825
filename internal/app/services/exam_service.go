package services

import (
	"context"

	"github.com/digiclass/backend/internal/app/models"
	"github.com/digiclass/backend/internal/app/models/dto"
	"github.com/digiclass/backend/internal/app/repositories"
	"github.com/digiclass/backend/internal/pkg/apperrors"
	"github.com/digiclass/backend/internal/pkg/helpers"
)

// ExamService handles exam scheduling
type ExamService struct {
	examRepo  *repositories.ExamRepository
	batchRepo *repositories.ClassBatchRepository
}

// NewExamService creates a new exam service
func NewExamService(examRepo *repositories.ExamRepository, batchRepo *repositories.ClassBatchRepository) *ExamService {
	return &ExamService{examRepo: examRepo, batchRepo: batchRepo}
}

func (s *ExamService) examFromRequest(ctx context.Context, req *dto.CreateExamRequest) (*models.Exam, error) {
	examDate, err := helpers.ParseDate(req.ExamDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("examDate must be YYYY-MM-DD")
	}

	if req.ClassBatchID != nil {
		if _, err := s.batchRepo.GetByID(ctx, *req.ClassBatchID); err != nil {
			return nil, err
		}
	}

	return &models.Exam{
		Name:         req.Name,
		Standard:     req.Standard,
		Subject:      req.Subject,
		ExamDate:     examDate,
		TotalMarks:   req.TotalMarks,
		ClassBatchID: req.ClassBatchID,
	}, nil
}

// Create schedules a new exam
func (s *ExamService) Create(ctx context.Context, req *dto.CreateExamRequest) (*models.Exam, error) {
	exam, err := s.examFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.examRepo.Create(ctx, exam); err != nil {
		return nil, err
	}

	return exam, nil
}

// Get retrieves an exam by ID
func (s *ExamService) Get(ctx context.Context, id int64) (*models.Exam, error) {
	return s.examRepo.GetByID(ctx, id)
}

// List retrieves exams matching the filter
func (s *ExamService) List(ctx context.Context, filter repositories.ExamFilter) ([]*models.Exam, error) {
	return s.examRepo.List(ctx, filter)
}

// Update replaces an exam's fields
func (s *ExamService) Update(ctx context.Context, id int64, req *dto.UpdateExamRequest) (*models.Exam, error) {
	existing, err := s.examRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exam, err := s.examFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	exam.ID = existing.ID
	exam.CreatedAt = existing.CreatedAt

	if err := s.examRepo.Update(ctx, exam); err != nil {
		return nil, err
	}

	return exam, nil
}

// Delete removes an exam
func (s *ExamService) Delete(ctx context.Context, id int64) error {
	return s.examRepo.Delete(ctx, id)
}

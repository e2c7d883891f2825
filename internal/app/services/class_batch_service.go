package services

import (
	"context"

	"github.com/digiclass/backend/internal/app/models"
	"github.com/digiclass/backend/internal/app/models/dto"
	"github.com/digiclass/backend/internal/app/repositories"
	"github.com/digiclass/backend/internal/pkg/apperrors"
	"github.com/digiclass/backend/internal/pkg/helpers"
	"github.com/digiclass/backend/internal/pkg/logger"
)

// ClassBatchService handles class batch and roster operations
type ClassBatchService struct {
	batchRepo   *repositories.ClassBatchRepository
	studentRepo *repositories.StudentRepository
}

// NewClassBatchService creates a new class batch service
func NewClassBatchService(
	batchRepo *repositories.ClassBatchRepository,
	studentRepo *repositories.StudentRepository,
) *ClassBatchService {
	return &ClassBatchService{batchRepo: batchRepo, studentRepo: studentRepo}
}

func validateBatchTimes(fromTime, toTime string) error {
	if !helpers.ValidTimeOfDay(fromTime) || !helpers.ValidTimeOfDay(toTime) {
		return apperrors.NewBadRequestError("fromTime and toTime must be HH:MM")
	}
	if toTime <= fromTime {
		return apperrors.NewBadRequestError("toTime must be after fromTime")
	}
	return nil
}

// Create adds a new class batch
func (s *ClassBatchService) Create(ctx context.Context, req *dto.CreateClassBatchRequest) (*models.ClassBatch, error) {
	if err := validateBatchTimes(req.FromTime, req.ToTime); err != nil {
		return nil, err
	}

	batch := &models.ClassBatch{
		Name:     req.Name,
		Strength: req.Strength,
		FromTime: req.FromTime,
		ToTime:   req.ToTime,
	}

	if err := s.batchRepo.Create(ctx, batch); err != nil {
		return nil, err
	}

	logger.Info().Int64("batchId", batch.ID).Str("name", batch.Name).Int("strength", batch.Strength).Msg("Class batch created")

	return batch, nil
}

// Get retrieves a class batch with its member count
func (s *ClassBatchService) Get(ctx context.Context, id int64) (*models.ClassBatch, error) {
	return s.batchRepo.GetByID(ctx, id)
}

// List retrieves all class batches
func (s *ClassBatchService) List(ctx context.Context) ([]*models.ClassBatch, error) {
	return s.batchRepo.List(ctx)
}

// Update changes a batch's name, capacity or timing. Capacity may be
// lowered below the current roster size; existing members keep their
// seats and only new assignments are blocked.
func (s *ClassBatchService) Update(ctx context.Context, id int64, req *dto.UpdateClassBatchRequest) (*models.ClassBatch, error) {
	if err := validateBatchTimes(req.FromTime, req.ToTime); err != nil {
		return nil, err
	}

	batch, err := s.batchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	batch.Name = req.Name
	batch.Strength = req.Strength
	batch.FromTime = req.FromTime
	batch.ToTime = req.ToTime

	if err := s.batchRepo.Update(ctx, batch); err != nil {
		return nil, err
	}

	return batch, nil
}

// Delete removes a class batch, detaching its members
func (s *ClassBatchService) Delete(ctx context.Context, id int64) error {
	return s.batchRepo.Delete(ctx, id)
}

// Roster retrieves the students currently assigned to a batch
func (s *ClassBatchService) Roster(ctx context.Context, batchID int64) ([]*models.Student, error) {
	if _, err := s.batchRepo.GetByID(ctx, batchID); err != nil {
		return nil, err
	}

	return s.studentRepo.List(ctx, repositories.StudentFilter{ClassBatchID: &batchID})
}

// AssignStudent enrolls a student into a batch, respecting seat capacity
func (s *ClassBatchService) AssignStudent(ctx context.Context, batchID, studentID int64) error {
	if err := s.batchRepo.AssignStudent(ctx, batchID, studentID); err != nil {
		return err
	}

	logger.Info().Int64("batchId", batchID).Int64("studentId", studentID).Msg("Student assigned to class batch")

	return nil
}

// RemoveStudent detaches a student from a batch
func (s *ClassBatchService) RemoveStudent(ctx context.Context, batchID, studentID int64) error {
	if err := s.batchRepo.RemoveStudent(ctx, batchID, studentID); err != nil {
		return err
	}

	logger.Info().Int64("batchId", batchID).Int64("studentId", studentID).Msg("Student removed from class batch")

	return nil
}

package services

import (
	"context"
	"strings"

	"github.com/digiclass/backend/internal/app/models"
	"github.com/digiclass/backend/internal/app/models/dto"
	"github.com/digiclass/backend/internal/app/repositories"
	"github.com/digiclass/backend/internal/pkg/apperrors"
	"github.com/digiclass/backend/internal/pkg/helpers"
)

var weekdays = map[string]bool{
	"MONDAY": true, "TUESDAY": true, "WEDNESDAY": true,
	"THURSDAY": true, "FRIDAY": true, "SATURDAY": true, "SUNDAY": true,
}

// TimetableService handles weekly lecture grids for class batches
type TimetableService struct {
	timetableRepo *repositories.TimetableRepository
	batchRepo     *repositories.ClassBatchRepository
}

// NewTimetableService creates a new timetable service
func NewTimetableService(
	timetableRepo *repositories.TimetableRepository,
	batchRepo *repositories.ClassBatchRepository,
) *TimetableService {
	return &TimetableService{timetableRepo: timetableRepo, batchRepo: batchRepo}
}

// Get retrieves the timetable for a class batch
func (s *TimetableService) Get(ctx context.Context, classBatchID int64) (*models.Timetable, error) {
	if _, err := s.batchRepo.GetByID(ctx, classBatchID); err != nil {
		return nil, err
	}
	return s.timetableRepo.Get(ctx, classBatchID)
}

// Upsert replaces a batch's weekly grid. Day names are normalized to upper
// case and slots with a blank subject are dropped.
func (s *TimetableService) Upsert(ctx context.Context, classBatchID int64, req *dto.UpsertTimetableRequest) (*models.Timetable, error) {
	if _, err := s.batchRepo.GetByID(ctx, classBatchID); err != nil {
		return nil, err
	}

	days := make([]models.TimetableDay, 0, len(req.Days))
	seenDays := make(map[string]bool, len(req.Days))
	for _, day := range req.Days {
		name := strings.ToUpper(strings.TrimSpace(day.Day))
		if !weekdays[name] {
			return nil, apperrors.NewBadRequestError("day must be a weekday name")
		}
		if seenDays[name] {
			return nil, apperrors.NewBadRequestError("duplicate day: " + name)
		}
		seenDays[name] = true

		lectures := make([]models.TimetableSlot, 0, len(day.Lectures))
		for _, slot := range day.Lectures {
			if strings.TrimSpace(slot.Subject) == "" {
				continue
			}
			if !helpers.ValidTimeOfDay(slot.FromTime) || !helpers.ValidTimeOfDay(slot.ToTime) {
				return nil, apperrors.NewBadRequestError("slot times must be HH:MM")
			}
			if slot.ToTime <= slot.FromTime {
				return nil, apperrors.NewBadRequestError("slot toTime must be after fromTime")
			}
			lectures = append(lectures, models.TimetableSlot{
				Subject:  strings.TrimSpace(slot.Subject),
				FromTime: slot.FromTime,
				ToTime:   slot.ToTime,
			})
		}

		days = append(days, models.TimetableDay{Day: name, Lectures: lectures})
	}

	tt := &models.Timetable{ClassBatchID: classBatchID, Days: days}
	if err := s.timetableRepo.Upsert(ctx, tt); err != nil {
		return nil, err
	}

	return tt, nil
}

// Delete removes a batch's timetable
func (s *TimetableService) Delete(ctx context.Context, classBatchID int64) error {
	return s.timetableRepo.Delete(ctx, classBatchID)
}

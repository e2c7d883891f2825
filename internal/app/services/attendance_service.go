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

// AttendanceService handles attendance marking and queries
type AttendanceService struct {
	attendanceRepo *repositories.AttendanceRepository
	batchRepo      *repositories.ClassBatchRepository
	studentRepo    *repositories.StudentRepository
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(
	attendanceRepo *repositories.AttendanceRepository,
	batchRepo *repositories.ClassBatchRepository,
	studentRepo *repositories.StudentRepository,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		batchRepo:      batchRepo,
		studentRepo:    studentRepo,
	}
}

// Record marks attendance for a batch on a date. Every entry's student must
// currently belong to the batch. Re-marking a student/date pair overwrites
// the earlier status.
func (s *AttendanceService) Record(ctx context.Context, req *dto.RecordAttendanceRequest) ([]*models.AttendanceRecord, error) {
	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewBadRequestError("date must be YYYY-MM-DD")
	}

	if _, err := s.batchRepo.GetByID(ctx, req.ClassBatchID); err != nil {
		return nil, err
	}

	members, err := s.studentRepo.List(ctx, repositories.StudentFilter{ClassBatchID: &req.ClassBatchID})
	if err != nil {
		return nil, err
	}
	memberIDs := make(map[int64]bool, len(members))
	for _, m := range members {
		memberIDs[m.ID] = true
	}

	records := make([]*models.AttendanceRecord, 0, len(req.Entries))
	for _, entry := range req.Entries {
		if !models.ValidAttendanceStatus(entry.Status) {
			return nil, apperrors.NewBadRequestError("status must be PRESENT, ABSENT or LATE")
		}
		if !memberIDs[entry.StudentID] {
			return nil, apperrors.ErrStudentNotAssigned
		}
		records = append(records, &models.AttendanceRecord{
			StudentID:    entry.StudentID,
			ClassBatchID: req.ClassBatchID,
			Date:         date,
			Status:       entry.Status,
		})
	}

	if err := s.attendanceRepo.RecordBatch(ctx, records); err != nil {
		return nil, err
	}

	logger.Info().Int64("batchId", req.ClassBatchID).Str("date", req.Date).Int("entries", len(records)).Msg("Attendance recorded")

	return records, nil
}

// List retrieves attendance records matching the filter
func (s *AttendanceService) List(ctx context.Context, filter repositories.AttendanceFilter) ([]*models.AttendanceRecord, error) {
	return s.attendanceRepo.List(ctx, filter)
}

// UpdateStatus corrects an existing attendance record
func (s *AttendanceService) UpdateStatus(ctx context.Context, id int64, status models.AttendanceStatus) error {
	if !models.ValidAttendanceStatus(status) {
		return apperrors.NewBadRequestError("status must be PRESENT, ABSENT or LATE")
	}
	return s.attendanceRepo.UpdateStatus(ctx, id, status)
}

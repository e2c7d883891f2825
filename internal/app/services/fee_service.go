package services

import (
	"context"
	"errors"

	"github.com/digiclass/backend/internal/app/models"
	"github.com/digiclass/backend/internal/app/models/dto"
	"github.com/digiclass/backend/internal/app/repositories"
	"github.com/digiclass/backend/internal/pkg/apperrors"
	"github.com/digiclass/backend/internal/pkg/helpers"
	"github.com/digiclass/backend/internal/pkg/logger"
)

// StudentFeeStatus summarizes a student's dues against the applicable
// fee structure
type StudentFeeStatus struct {
	StudentID  int64   `json:"studentId"`
	TotalFee   float64 `json:"totalFee"`
	TotalPaid  float64 `json:"totalPaid"`
	Balance    float64 `json:"balance"`
	Structured bool    `json:"structured"` // false when no fee structure matches
}

// FeeService handles fee structures, payments and dues
type FeeService struct {
	feeRepo     *repositories.FeeRepository
	studentRepo *repositories.StudentRepository
}

// NewFeeService creates a new fee service
func NewFeeService(feeRepo *repositories.FeeRepository, studentRepo *repositories.StudentRepository) *FeeService {
	return &FeeService{feeRepo: feeRepo, studentRepo: studentRepo}
}

// CreateStructure defines the fee for a standard/course-type pair
func (s *FeeService) CreateStructure(ctx context.Context, req *dto.CreateFeeStructureRequest) (*models.FeeStructure, error) {
	fs := &models.FeeStructure{
		Standard:   req.Standard,
		CourseType: req.CourseType,
		Amount:     req.Amount,
	}

	if err := s.feeRepo.CreateStructure(ctx, fs); err != nil {
		return nil, err
	}

	return fs, nil
}

// ListStructures retrieves all fee structures
func (s *FeeService) ListStructures(ctx context.Context) ([]*models.FeeStructure, error) {
	return s.feeRepo.ListStructures(ctx)
}

// UpdateStructure changes the amount of an existing structure
func (s *FeeService) UpdateStructure(ctx context.Context, id int64, amount float64) (*models.FeeStructure, error) {
	if amount <= 0 {
		return nil, apperrors.NewBadRequestError("amount must be positive")
	}

	fs := &models.FeeStructure{ID: id, Amount: amount}
	if err := s.feeRepo.UpdateStructure(ctx, fs); err != nil {
		return nil, err
	}

	return fs, nil
}

// DeleteStructure removes a fee structure
func (s *FeeService) DeleteStructure(ctx context.Context, id int64) error {
	return s.feeRepo.DeleteStructure(ctx, id)
}

// RecordPayment records a fee collection entry for a student
func (s *FeeService) RecordPayment(ctx context.Context, req *dto.RecordFeePaymentRequest) (*models.FeePayment, error) {
	if !models.ValidPaymentMode(req.Mode) {
		return nil, apperrors.NewBadRequestError("mode must be CASH, CHEQUE or ONLINE")
	}

	paidOn, err := helpers.ParseDate(req.PaidOn)
	if err != nil {
		return nil, apperrors.NewBadRequestError("paidOn must be YYYY-MM-DD")
	}

	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	payment := &models.FeePayment{
		StudentID: req.StudentID,
		Amount:    req.Amount,
		PaidOn:    paidOn,
		Mode:      req.Mode,
		Note:      req.Note,
	}

	if err := s.feeRepo.RecordPayment(ctx, payment); err != nil {
		return nil, err
	}

	logger.Info().Int64("studentId", payment.StudentID).Float64("amount", payment.Amount).Msg("Fee payment recorded")

	return payment, nil
}

// ListPayments retrieves payments matching the filter
func (s *FeeService) ListPayments(ctx context.Context, filter repositories.FeePaymentFilter) ([]*models.FeePayment, error) {
	return s.feeRepo.ListPayments(ctx, filter)
}

// DeletePayment removes a payment record
func (s *FeeService) DeletePayment(ctx context.Context, id int64) error {
	return s.feeRepo.DeletePayment(ctx, id)
}

// StudentStatus computes a student's fee balance from the structure that
// matches the student's standard and course type
func (s *FeeService) StudentStatus(ctx context.Context, studentID int64) (*StudentFeeStatus, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	paid, err := s.feeRepo.SumPayments(ctx, studentID)
	if err != nil {
		return nil, err
	}

	status := &StudentFeeStatus{StudentID: studentID, TotalPaid: paid}

	fs, err := s.feeRepo.GetStructure(ctx, student.Standard, student.CourseType)
	if err != nil {
		if errors.Is(err, apperrors.ErrFeeStructureNotFound) {
			return status, nil
		}
		return nil, err
	}

	status.Structured = true
	status.TotalFee = fs.Amount
	status.Balance = fs.Amount - paid

	return status, nil
}

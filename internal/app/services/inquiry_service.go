package services

import (
	"context"
	"time"

	"github.com/digiclass/backend/internal/app/models"
	"github.com/digiclass/backend/internal/app/models/dto"
	"github.com/digiclass/backend/internal/app/repositories"
	"github.com/digiclass/backend/internal/pkg/apperrors"
	"github.com/digiclass/backend/internal/pkg/helpers"
	"github.com/digiclass/backend/internal/pkg/validation"
)

// InquiryService handles admission inquiries
type InquiryService struct {
	inquiryRepo *repositories.InquiryRepository
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(inquiryRepo *repositories.InquiryRepository) *InquiryService {
	return &InquiryService{inquiryRepo: inquiryRepo}
}

func parseFollowUpDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := helpers.ParseDate(*value)
	if err != nil {
		return nil, apperrors.NewBadRequestError("followUpDate must be YYYY-MM-DD")
	}
	return &t, nil
}

// Create records a new inquiry in OPEN status
func (s *InquiryService) Create(ctx context.Context, req *dto.CreateInquiryRequest) (*models.Inquiry, error) {
	if !validation.ValidMobile(req.Mobile) {
		return nil, apperrors.NewBadRequestError("invalid mobile number")
	}

	followUp, err := parseFollowUpDate(req.FollowUpDate)
	if err != nil {
		return nil, err
	}

	inquiry := &models.Inquiry{
		Name:         req.Name,
		Mobile:       req.Mobile,
		Standard:     req.Standard,
		CourseType:   req.CourseType,
		Status:       models.InquiryOpen,
		FollowUpDate: followUp,
		Note:         req.Note,
	}

	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	return inquiry, nil
}

// Get retrieves an inquiry by ID
func (s *InquiryService) Get(ctx context.Context, id int64) (*models.Inquiry, error) {
	return s.inquiryRepo.GetByID(ctx, id)
}

// List retrieves inquiries, optionally filtered by status
func (s *InquiryService) List(ctx context.Context, status models.InquiryStatus) ([]*models.Inquiry, error) {
	if status != "" && !models.ValidInquiryStatus(status) {
		return nil, apperrors.NewBadRequestError("status must be OPEN, FOLLOW_UP or CLOSED")
	}
	return s.inquiryRepo.List(ctx, status)
}

// Update replaces an inquiry's fields, including its status
func (s *InquiryService) Update(ctx context.Context, id int64, req *dto.UpdateInquiryRequest) (*models.Inquiry, error) {
	if !models.ValidInquiryStatus(req.Status) {
		return nil, apperrors.NewBadRequestError("status must be OPEN, FOLLOW_UP or CLOSED")
	}
	if !validation.ValidMobile(req.Mobile) {
		return nil, apperrors.NewBadRequestError("invalid mobile number")
	}

	existing, err := s.inquiryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	followUp, err := parseFollowUpDate(req.FollowUpDate)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Mobile = req.Mobile
	existing.Standard = req.Standard
	existing.CourseType = req.CourseType
	existing.Status = req.Status
	existing.FollowUpDate = followUp
	existing.Note = req.Note

	if err := s.inquiryRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// Delete removes an inquiry
func (s *InquiryService) Delete(ctx context.Context, id int64) error {
	return s.inquiryRepo.Delete(ctx, id)
}

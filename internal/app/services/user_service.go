package services

import (
	"context"

	"github.com/digiclass/backend/internal/app/models"
	"github.com/digiclass/backend/internal/app/models/dto"
	"github.com/digiclass/backend/internal/app/repositories"
	"github.com/digiclass/backend/internal/pkg/apperrors"
	"github.com/digiclass/backend/internal/pkg/validation"
)

// UserService handles user profile operations
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo *repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile retrieves the profile of the given user
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile updates the caller's own profile. The role is read from the
// stored record and never taken from the request.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	if !validation.ValidMobile(req.Mobile) {
		return nil, apperrors.NewBadRequestError("invalid mobile number")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.InstituteName = req.InstituteName
	user.Country = req.Country
	user.City = req.City
	user.FullName = req.FullName
	user.Mobile = req.Mobile
	user.Branch = req.Branch
	user.Year = req.Year

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ListTeachers retrieves all teacher accounts
func (s *UserService) ListTeachers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.ListByRole(ctx, models.RoleTeacher)
}

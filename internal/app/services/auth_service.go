package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/digiclass/backend/internal/app/models"
	"github.com/digiclass/backend/internal/app/models/dto"
	"github.com/digiclass/backend/internal/app/repositories"
	"github.com/digiclass/backend/internal/pkg/apperrors"
	"github.com/digiclass/backend/internal/pkg/auth"
	"github.com/digiclass/backend/internal/pkg/email"
	"github.com/digiclass/backend/internal/pkg/logger"
	"github.com/digiclass/backend/internal/pkg/validation"
)

// PasswordResetTokenTTL is how long a reset token stays valid
const PasswordResetTokenTTL = time.Hour

// AuthService handles registration, login and token lifecycle
type AuthService struct {
	userRepo       *repositories.UserRepository
	tokenRepo      *repositories.TokenRepository
	resetTokenRepo *repositories.PasswordResetTokenRepository
	jwtService     *auth.JWTService
	emailService   email.Service
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	resetTokenRepo *repositories.PasswordResetTokenRepository,
	jwtService *auth.JWTService,
	emailService email.Service,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		tokenRepo:      tokenRepo,
		resetTokenRepo: resetTokenRepo,
		jwtService:     jwtService,
		emailService:   emailService,
	}
}

// Register creates a new user account
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if !models.ValidRole(req.Role) {
		return nil, apperrors.NewBadRequestError("role must be one of Admin, Teacher, Student")
	}
	if !validation.ValidName(req.FullName) {
		return nil, apperrors.NewBadRequestError("invalid full name")
	}
	if !validation.ValidEmail(req.Email) {
		return nil, apperrors.NewBadRequestError("invalid email address")
	}
	if !validation.ValidMobile(req.Mobile) {
		return nil, apperrors.NewBadRequestError("invalid mobile number")
	}
	if ok, reason := validation.CheckPassword(req.Password); !ok {
		return nil, apperrors.NewBadRequestError(reason)
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		InstituteName: req.InstituteName,
		Country:       req.Country,
		City:          req.City,
		FullName:      req.FullName,
		Mobile:        req.Mobile,
		Email:         req.Email,
		Password:      hash,
		Role:          req.Role,
		Branch:        req.Branch,
		Year:          req.Year,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Int64("userId", user.ID).Str("role", string(user.Role)).Msg("User registered")

	return user, nil
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// RefreshToken exchanges a valid refresh token for a new token pair.
// The presented token is revoked so each refresh value is single use.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	stored, err := s.tokenRepo.Get(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, err
	}

	if stored.Revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.Revoke(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes a refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	err := s.tokenRepo.Revoke(ctx, refreshToken)
	if err != nil && errors.Is(err, apperrors.ErrTokenNotFound) {
		return apperrors.ErrTokenInvalid
	}
	return err
}

// ForgotPassword starts a password reset for the given email. To avoid
// account enumeration an unknown email is treated as success.
func (s *AuthService) ForgotPassword(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Debug().Str("email", emailAddr).Msg("Password reset requested for unknown email")
			return nil
		}
		return err
	}

	token := &models.PasswordResetToken{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(PasswordResetTokenTTL),
	}

	if err := s.resetTokenRepo.Store(ctx, token); err != nil {
		return err
	}

	if err := s.emailService.SendPasswordResetEmail(user.Email, user.FullName, token.Token); err != nil {
		logger.Error().Err(err).Int64("userId", user.ID).Msg("Failed to send password reset email")
		return err
	}

	return nil
}

// ResetPassword completes a password reset using a mailed token. All
// refresh tokens of the user are revoked afterwards.
func (s *AuthService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	if ok, reason := validation.CheckPassword(req.Password); !ok {
		return apperrors.NewBadRequestError(reason)
	}

	token, err := s.resetTokenRepo.Get(ctx, req.Token)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) {
			return apperrors.ErrTokenInvalid
		}
		return err
	}

	if token.Used {
		return apperrors.ErrTokenUsed
	}
	if time.Now().After(token.ExpiresAt) {
		return apperrors.ErrTokenExpired
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, token.UserID, hash); err != nil {
		return err
	}

	if err := s.resetTokenRepo.MarkUsed(ctx, token.ID); err != nil {
		return err
	}

	if err := s.tokenRepo.RevokeAllForUser(ctx, token.UserID); err != nil {
		logger.Error().Err(err).Int64("userId", token.UserID).Msg("Failed to revoke sessions after password reset")
	}

	logger.Info().Int64("userId", token.UserID).Msg("Password reset completed")

	return nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.LoginResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	stored := &models.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: s.jwtService.GetRefreshTokenExpiry(),
	}
	if err := s.tokenRepo.Store(ctx, stored); err != nil {
		return nil, err
	}

	branch := ""
	if user.Branch != nil {
		branch = *user.Branch
	}
	year := ""
	if user.Year != nil {
		year = *user.Year
	}

	return &dto.LoginResponse{
		Token: dto.TokenResponse{
			AccessToken:           accessToken,
			TokenType:             "Bearer",
			ExpiresIn:             expiresIn,
			RefreshToken:          refreshToken,
			RefreshTokenExpiresIn: refreshExpiresIn,
		},
		UserData: dto.UserData{
			ID:       user.ID,
			FullName: user.FullName,
			Branch:   branch,
			Year:     year,
			Role:     string(user.Role),
		},
	}, nil
}

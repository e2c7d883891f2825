package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/digiclass/backend/internal/app/models"
	"github.com/digiclass/backend/internal/app/repositories"
	"github.com/digiclass/backend/internal/pkg/apperrors"
	"github.com/digiclass/backend/internal/pkg/auth"
)

// Default admin credentials for a fresh install. The password must be
// changed after first login.
const (
	DefaultAdminEmail    = "admin@digiclass.local"
	defaultAdminPassword = "ChangeMe123"
)

// CreateDefaultData ensures a default admin account and the starter catalog
// exist. Safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)
	catalogRepo := repositories.NewCatalogRepository(dbPool)

	var finalErr error

	exists, err := userRepo.EmailExists(ctx, DefaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking default admin account")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		hash, err := auth.HashPassword(defaultAdminPassword)
		if err != nil {
			return errors.Join(finalErr, err)
		}

		admin := &models.User{
			InstituteName: "Default Institute",
			Country:       "India",
			City:          "Default",
			FullName:      "Administrator",
			Mobile:        "0000000000",
			Email:         DefaultAdminEmail,
			Password:      hash,
			Role:          models.RoleAdmin,
		}

		if err := userRepo.Create(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Error().Err(err).Msg("Error creating default admin account")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Str("email", DefaultAdminEmail).Msg("Default admin account created; change the password after first login")
		}
	}

	starterStandards := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}
	if err := catalogRepo.Merge(ctx, repositories.CatalogStandards, starterStandards); err != nil {
		lgr.Error().Err(err).Msg("Error seeding starter standards")
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

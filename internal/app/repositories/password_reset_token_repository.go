package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/digiclass/backend/internal/app/models"
	"github.com/digiclass/backend/internal/pkg/apperrors"
)

// PasswordResetTokenRepository handles database operations for password reset tokens
type PasswordResetTokenRepository struct {
	db *pgxpool.Pool
}

// NewPasswordResetTokenRepository creates a new password reset token repository
func NewPasswordResetTokenRepository(db *pgxpool.Pool) *PasswordResetTokenRepository {
	return &PasswordResetTokenRepository{db: db}
}

// Store persists a reset token, invalidating any earlier unused tokens for the user
func (r *PasswordResetTokenRepository) Store(ctx context.Context, token *models.PasswordResetToken) error {
	if _, err := r.db.Exec(ctx,
		`UPDATE password_reset_tokens SET used = TRUE WHERE user_id = $1 AND used = FALSE`,
		token.UserID); err != nil {
		return fmt.Errorf("error invalidating previous reset tokens: %w", err)
	}

	query := `
		INSERT INTO password_reset_tokens (token, user_id, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	if err := r.db.QueryRow(ctx, query, token.Token, token.UserID, token.ExpiresAt).
		Scan(&token.ID, &token.CreatedAt); err != nil {
		return fmt.Errorf("error storing reset token: %w", err)
	}

	return nil
}

// Get retrieves a reset token by its value
func (r *PasswordResetTokenRepository) Get(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	query := `
		SELECT id, token, user_id, expires_at, used, created_at
		FROM password_reset_tokens
		WHERE token = $1
	`

	var rt models.PasswordResetToken
	err := r.db.QueryRow(ctx, query, token).Scan(
		&rt.ID,
		&rt.Token,
		&rt.UserID,
		&rt.ExpiresAt,
		&rt.Used,
		&rt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, fmt.Errorf("error retrieving reset token: %w", err)
	}

	return &rt, nil
}

// MarkUsed flags a reset token as consumed
func (r *PasswordResetTokenRepository) MarkUsed(ctx context.Context, tokenID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE password_reset_tokens SET used = TRUE WHERE id = $1`, tokenID)
	if err != nil {
		return fmt.Errorf("error marking reset token used: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTokenNotFound
	}

	return nil
}

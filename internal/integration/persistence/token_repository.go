// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/korven/backend/internal/integration/persistence/model"
)

// TokenRepository defines the interface for password reset token persistence.
// Tokens are stored as SHA-256 digests; callers always pass the raw token.
type TokenRepository interface {
	// SavePasswordResetToken saves a password reset token.
	SavePasswordResetToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error

	// GetPasswordResetToken retrieves an unused, unexpired token. It returns nil when none matches.
	GetPasswordResetToken(ctx context.Context, token string, now time.Time) (*model.PasswordResetTokenModel, error)

	// InvalidatePasswordResetToken marks a password reset token as used.
	InvalidatePasswordResetToken(ctx context.Context, token string, now time.Time) error
}

// tokenRepository implements the TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token repository instance.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// SavePasswordResetToken saves a password reset token to the database.
func (r *tokenRepository) SavePasswordResetToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	resetToken := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     digest(token),
		UserID:    userID,
		ExpiresAt: expiresAt.UTC(),
		CreatedAt: time.Now().UTC(),
	}
	return conn(ctx, r.db).Create(resetToken).Error
}

// GetPasswordResetToken retrieves a usable password reset token.
func (r *tokenRepository) GetPasswordResetToken(ctx context.Context, token string, now time.Time) (*model.PasswordResetTokenModel, error) {
	var resetToken model.PasswordResetTokenModel
	result := conn(ctx, r.db).
		Where("token = ? AND used = ? AND expires_at > ?", digest(token), false, now.UTC()).
		First(&resetToken)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &resetToken, nil
}

// InvalidatePasswordResetToken marks a password reset token as used.
func (r *tokenRepository) InvalidatePasswordResetToken(ctx context.Context, token string, now time.Time) error {
	usedAt := now.UTC()
	return conn(ctx, r.db).
		Model(&model.PasswordResetTokenModel{}).
		Where("token = ?", digest(token)).
		Updates(map[string]any{
			"used":    true,
			"used_at": &usedAt,
		}).Error
}

func digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

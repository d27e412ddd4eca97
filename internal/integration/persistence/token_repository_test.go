package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/korven/backend/internal/integration/persistence/model"
)

func TestTokenRepository_PasswordResetLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	require.NoError(t, repo.SavePasswordResetToken(ctx, "raw-token", userID, now.Add(time.Hour)))

	var stored model.PasswordResetTokenModel
	require.NoError(t, db.First(&stored).Error)
	assert.NotEqual(t, "raw-token", stored.Token)

	found, err := repo.GetPasswordResetToken(ctx, "raw-token", now)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, userID, found.UserID)

	expired, err := repo.GetPasswordResetToken(ctx, "raw-token", now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Nil(t, expired)

	require.NoError(t, repo.InvalidatePasswordResetToken(ctx, "raw-token", now))
	used, err := repo.GetPasswordResetToken(ctx, "raw-token", now)
	require.NoError(t, err)
	assert.Nil(t, used)
}

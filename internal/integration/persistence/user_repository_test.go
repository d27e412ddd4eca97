package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
)

func TestUserRepository_UpdateProfile(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	ana := entity.NewUser("ana@korven.test", "Ana", "hash")
	require.NoError(t, repo.Create(ctx, ana))
	bruno := entity.NewUser("bruno@korven.test", "Bruno", "hash")
	require.NoError(t, repo.Create(ctx, bruno))

	ana.Name = "Ana Maria"
	ana.Email = "ana.maria@korven.test"
	require.NoError(t, repo.Update(ctx, ana))

	found, err := repo.FindByEmail(ctx, "ANA.MARIA@korven.test")
	require.NoError(t, err)
	assert.Equal(t, ana.ID, found.ID)
	assert.Equal(t, "Ana Maria", found.Name)

	bruno.Email = "ana.maria@korven.test"
	assert.ErrorIs(t, repo.Update(ctx, bruno), domainerror.ErrEmailAlreadyExists)
}

package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avelichko/garagevault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CreateAssignsMonotonicIDs(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	u1, err := repo.Create(ctx, &User{Email: "a@test.com", PasswordHash: "h", CreatedAt: time.Now()})
	require.NoError(t, err)
	u2, err := repo.Create(ctx, &User{Email: "b@test.com", PasswordHash: "h", CreatedAt: time.Now()})
	require.NoError(t, err)

	assert.Equal(t, "1", u1.ID)
	assert.Equal(t, "2", u2.ID)
}

func TestMemoryRepository_DuplicateEmail(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &User{Email: "a@b.com", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &User{Email: "a@b.com", PasswordHash: "h"})
	assert.True(t, errors.Is(err, common.ErrorEmailExists))
}

func TestMemoryRepository_Lookups(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &User{Email: "a@b.com", PasswordHash: "h"})
	require.NoError(t, err)

	byEmail, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", byID.Email)

	_, err = repo.GetByEmail(ctx, "ghost@b.com")
	assert.True(t, errors.Is(err, common.ErrorNotFound))

	_, err = repo.GetByID(ctx, "999")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

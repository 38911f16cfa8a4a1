package postgres

import (
	"context"
	"testing"

	"geekstore/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "ana@example.com")
	assert.NotZero(t, user.ID)

	found, err := repo.FindUserByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "Ana", found.FirstName)
	assert.True(t, found.Enabled)

	exists, err := repo.ExistsByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.FindUserByID(ctx, 9999)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "dup@example.com")

	dup := seedUserEntity("dup@example.com")
	err := NewUserRepository(db).CreateUser(context.Background(), dup)

	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrUserConflict))
}

func TestUserRepository_DuplicateDNI(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	dni := "12345678"
	first := seedUser(t, db, "first@example.com")
	first.DNI = &dni
	require.NoError(t, repo.UpdateUser(ctx, first))

	second := seedUser(t, db, "second@example.com")
	second.DNI = &dni
	err := repo.UpdateUser(ctx, second)

	assert.ErrorIs(t, err, repository.ErrUserConflict)
}

func TestUserRepository_ListUsersSortedByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	seedUser(t, db, "carla@example.com")
	seedUser(t, db, "ana@example.com")
	seedUser(t, db, "bruno@example.com")

	page, err := repo.ListUsers(context.Background(), repository.PageRequest{Page: 0, Size: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.TotalPages())
	require.Len(t, page.Items, 2)
	assert.Equal(t, "ana@example.com", page.Items[0].Email)
	assert.Equal(t, "bruno@example.com", page.Items[1].Email)

	page, err = repo.ListUsers(context.Background(), repository.PageRequest{Page: 1, Size: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "carla@example.com", page.Items[0].Email)
}

func TestUserRepository_DeleteUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "gone@example.com")
	require.NoError(t, repo.DeleteUser(ctx, user.ID))

	assert.ErrorIs(t, repo.DeleteUser(ctx, user.ID), repository.ErrUserNotFound)
}

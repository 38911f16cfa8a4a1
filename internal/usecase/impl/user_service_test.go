package impl

import (
	"context"
	"testing"
	"time"

	"geekstore/internal/domain/entity"
	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/domain/repository"
	mockRepo "geekstore/internal/mocks/repository"
	"geekstore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserService(t *testing.T) (usecase.UserUsecase, *testStore) {
	store := newTestStore(t)

	srv := NewUserService(UserServiceParams{
		TxManager: store.txManager,
		UserRepo:  store.users,
		Hasher:    newFakeHasher(t),
		Logger:    newDiscardLogger(),
	})

	return srv, store
}

func ptr[T any](v T) *T {
	return &v
}

func TestUserService_UpdateProfile_PartialUpdate(t *testing.T) {
	srv, store := createTestUserService(t)
	ctx := context.Background()
	user := store.seedUser(t, "ana@example.com", true)

	birthDate := time.Date(1995, time.July, 28, 0, 0, 0, 0, time.UTC)
	updated, err := srv.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{
		Phone:     ptr("987654321"),
		DNI:       ptr(" 12345678 "),
		BirthDate: &birthDate,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana", updated.FirstName)
	assert.Equal(t, "987654321", updated.Phone)
	require.NotNil(t, updated.DNI)
	assert.Equal(t, "12345678", *updated.DNI)

	cleared, err := srv.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{DNI: ptr("")})
	require.NoError(t, err)
	assert.Nil(t, cleared.DNI)
	assert.Equal(t, "987654321", cleared.Phone)
}

func TestUserService_UpdateProfile_DuplicateDNI(t *testing.T) {
	srv, store := createTestUserService(t)
	ctx := context.Background()
	first := store.seedUser(t, "ana@example.com", true)
	second := store.seedUser(t, "luis@example.com", true)

	_, err := srv.UpdateProfile(ctx, first.ID, &usecase.UpdateProfileInput{DNI: ptr("12345678")})
	require.NoError(t, err)

	_, err = srv.UpdateProfile(ctx, second.ID, &usecase.UpdateProfileInput{DNI: ptr("12345678")})
	assert.ErrorIs(t, err, domainerrors.ErrDNIAlreadyExists)
}

func TestUserService_ChangePassword(t *testing.T) {
	srv, store := createTestUserService(t)
	ctx := context.Background()
	user := store.seedUser(t, "ana@example.com", true)

	err := srv.ChangePassword(ctx, user.ID, &usecase.ChangePasswordInput{OldPassword: "wrong", NewPassword: "newpass1"})
	assert.ErrorIs(t, err, domainerrors.ErrOldPasswordIncorrect)

	require.NoError(t, srv.ChangePassword(ctx, user.ID, &usecase.ChangePasswordInput{OldPassword: "secret1", NewPassword: "newpass1"}))

	stored, err := store.users.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashed:newpass1", stored.PasswordHash)
}

func TestUserService_CreateUser(t *testing.T) {
	srv, store := createTestUserService(t)
	ctx := context.Background()
	store.seedUser(t, "taken@example.com", true)

	admin, err := srv.CreateUser(ctx, &usecase.AdminUserInput{
		FirstName: "Carla",
		LastName:  "Soto",
		Email:     "carla@example.com",
		Password:  "secret1",
		Role:      "ADMIN",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.True(t, admin.Enabled)

	_, err = srv.CreateUser(ctx, &usecase.AdminUserInput{Email: "short@example.com", Password: "123"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordRequired)

	_, err = srv.CreateUser(ctx, &usecase.AdminUserInput{Email: "taken@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestUserService_UpdateUser(t *testing.T) {
	srv, store := createTestUserService(t)
	ctx := context.Background()
	user := store.seedUser(t, "ana@example.com", true)
	store.seedUser(t, "taken@example.com", true)

	_, err := srv.UpdateUser(ctx, user.ID, &usecase.AdminUserInput{FirstName: "Ana", Email: "taken@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailInUse)

	updated, err := srv.UpdateUser(ctx, user.ID, &usecase.AdminUserInput{
		FirstName: "Ana María",
		LastName:  "Quispe",
		Email:     "ana.maria@example.com",
		Role:      "ROLE_ADMIN",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana.maria@example.com", updated.Email)
	assert.Equal(t, entity.RoleAdmin, updated.Role)
	assert.Equal(t, "hashed:secret1", updated.PasswordHash)

	_, err = srv.UpdateUser(ctx, 9999, &usecase.AdminUserInput{FirstName: "X"})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ListUsers_NormalizesPage(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockUserRepo.EXPECT().ListUsers(mock.Anything, repository.PageRequest{Page: 0, Size: repository.DefaultUserPageSize}).
		Return(&repository.Page[*entity.User]{Items: []*entity.User{{ID: 1}}, Size: repository.DefaultUserPageSize, Total: 1}, nil)

	srv := NewUserService(UserServiceParams{UserRepo: mockUserRepo, Logger: newDiscardLogger()})

	page, err := srv.ListUsers(context.Background(), repository.PageRequest{Page: -3})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.TotalPages())
}

func TestUserService_DeleteUser(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{"deleted", nil, nil},
		{"missing user", repository.ErrUserNotFound, domainerrors.ErrUserNotFound},
		{"user with orders", repository.ErrStillReferenced, domainerrors.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTxManager := mockRepo.NewMockTransactionManager(t)
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockTxManager.EXPECT().Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
				RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
					return fn(mockFactory)
				})
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().DeleteUser(mock.Anything, uint64(7)).Return(tt.repoErr)

			srv := NewUserService(UserServiceParams{TxManager: mockTxManager, Logger: newDiscardLogger()})

			err := srv.DeleteUser(context.Background(), 7)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

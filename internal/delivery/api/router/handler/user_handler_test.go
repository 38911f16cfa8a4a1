package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"geekstore/internal/domain/entity"
	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/domain/repository"
	mocks "geekstore/internal/mocks/usecase"
	"geekstore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserHandler(t *testing.T) (*UserHandler, *mocks.MockUserUsecase) {
	userUC := mocks.NewMockUserUsecase(t)

	return NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()}), userUC
}

func TestUserHandler_GetProfile(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		h, userUC := createTestUserHandler(t)
		birthDate := time.Date(1995, time.March, 14, 0, 0, 0, 0, time.UTC)
		userUC.EXPECT().GetProfile(mock.Anything, uint64(7)).Return(&entity.User{
			ID:        7,
			Email:     "ana@example.com",
			Role:      entity.RoleUser,
			Enabled:   true,
			BirthDate: &birthDate,
		}, nil)

		c, rec := newJSONContext(t, http.MethodGet, "/api/v1/users/me", nil, 7)

		require.NoError(t, h.GetProfile(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := decode[UserResponse](t, rec)
		require.NotNil(t, body.Data.BirthDate)
		assert.Equal(t, "1995-03-14", *body.Data.BirthDate)
	})

	t.Run("anonymous", func(t *testing.T) {
		h, _ := createTestUserHandler(t)

		c, rec := newJSONContext(t, http.MethodGet, "/api/v1/users/me", nil, 0)

		require.NoError(t, h.GetProfile(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUserHandler_UpdateProfile_ParsesBirthDate(t *testing.T) {
	h, userUC := createTestUserHandler(t)

	userUC.EXPECT().UpdateProfile(mock.Anything, uint64(7), mock.Anything).
		Run(func(_ context.Context, _ uint64, input *usecase.UpdateProfileInput) {
			require.NotNil(t, input.BirthDate)
			assert.Equal(t, time.Date(2000, time.January, 2, 0, 0, 0, 0, time.UTC), *input.BirthDate)
			require.NotNil(t, input.Phone)
			assert.Equal(t, "999888777", *input.Phone)
			assert.Nil(t, input.FirstName)
		}).
		Return(&entity.User{ID: 7, Role: entity.RoleUser}, nil)

	c, rec := newJSONContext(t, http.MethodPut, "/api/v1/users/me", map[string]string{
		"telefono":        "999888777",
		"fechaNacimiento": "2000-01-02",
	}, 7)

	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_UpdateProfile_BadBirthDate(t *testing.T) {
	h, _ := createTestUserHandler(t)

	c, rec := newJSONContext(t, http.MethodPut, "/api/v1/users/me", map[string]string{
		"fechaNacimiento": "02/01/2000",
	}, 7)

	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[any](t, rec).Error.Details, "fechaNacimiento")
}

func TestUserHandler_ChangePassword_WrongOldPassword(t *testing.T) {
	h, userUC := createTestUserHandler(t)

	userUC.EXPECT().ChangePassword(mock.Anything, uint64(7), &usecase.ChangePasswordInput{
		OldPassword: "wrong",
		NewPassword: "brandnew123",
	}).Return(domainerrors.ErrOldPasswordIncorrect)

	c, rec := newJSONContext(t, http.MethodPut, "/api/v1/users/me/password", map[string]string{
		"oldPassword": "wrong",
		"newPassword": "brandnew123",
	}, 7)

	require.NoError(t, h.ChangePassword(c))
	assert.Equal(t, domainerrors.ErrOldPasswordIncorrect.HTTPCode(), rec.Code)
	assert.Equal(t, domainerrors.ErrOldPasswordIncorrect.Message(), decode[any](t, rec).Error.Message)
}

func TestUserHandler_ListUsers(t *testing.T) {
	h, userUC := createTestUserHandler(t)

	userUC.EXPECT().ListUsers(mock.Anything, repository.PageRequest{Page: 2, Size: 15}).
		Return(&repository.Page[*entity.User]{
			Items: []*entity.User{{ID: 31, Role: entity.RoleAdmin}},
			Page:  2,
			Size:  15,
			Total: 31,
		}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/admin/users?page=2&size=15", nil, 1)

	require.NoError(t, h.ListUsers(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decode[PageResponse[UserResponse]](t, rec)
	assert.Equal(t, 3, body.Data.TotalPages)
	require.Len(t, body.Data.Content, 1)
	assert.Equal(t, "ROLE_ADMIN", body.Data.Content[0].Role)
}

func TestUserHandler_CreateUser(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]string
		setup      func(userUC *mocks.MockUserUsecase)
		wantStatus int
	}{
		{
			name: "created",
			body: map[string]string{
				"nombre":   "Luis",
				"apellido": "Ramos",
				"email":    "luis@example.com",
				"password": "secret123",
				"rol":      "admin",
			},
			setup: func(userUC *mocks.MockUserUsecase) {
				userUC.EXPECT().CreateUser(mock.Anything, &usecase.AdminUserInput{
					FirstName: "Luis",
					LastName:  "Ramos",
					Email:     "luis@example.com",
					Password:  "secret123",
					Role:      "admin",
				}).Return(&entity.User{ID: 40, Role: entity.RoleAdmin, Enabled: true}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "unknown role",
			body: map[string]string{
				"nombre":   "Luis",
				"apellido": "Ramos",
				"email":    "luis@example.com",
				"rol":      "ROOT",
			},
			setup:      func(*mocks.MockUserUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "email in use",
			body: map[string]string{
				"nombre":   "Luis",
				"apellido": "Ramos",
				"email":    "luis@example.com",
				"password": "secret123",
			},
			setup: func(userUC *mocks.MockUserUsecase) {
				userUC.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmailAlreadyExists)
			},
			wantStatus: domainerrors.ErrEmailAlreadyExists.HTTPCode(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, userUC := createTestUserHandler(t)
			tt.setup(userUC)

			c, rec := newJSONContext(t, http.MethodPost, "/api/v1/admin/users", tt.body, 1)

			require.NoError(t, h.CreateUser(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestUserHandler_DeleteUser(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		h, userUC := createTestUserHandler(t)
		userUC.EXPECT().DeleteUser(mock.Anything, uint64(40)).Return(nil)

		c, rec := newJSONContext(t, http.MethodDelete, "/api/v1/admin/users/40", nil, 1)
		c.SetParamNames("id")
		c.SetParamValues("40")

		require.NoError(t, h.DeleteUser(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		h, userUC := createTestUserHandler(t)
		userUC.EXPECT().DeleteUser(mock.Anything, uint64(41)).Return(domainerrors.ErrUserNotFound)

		c, rec := newJSONContext(t, http.MethodDelete, "/api/v1/admin/users/41", nil, 1)
		c.SetParamNames("id")
		c.SetParamValues("41")

		require.NoError(t, h.DeleteUser(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

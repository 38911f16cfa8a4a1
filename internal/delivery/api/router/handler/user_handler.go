package handler

import (
	"log/slog"
	"net/http"
	"time"

	"geekstore/internal/delivery/api/middleware"
	"geekstore/internal/delivery/api/response"
	"geekstore/internal/domain/repository"
	"geekstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves the caller's profile and the admin user back office.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// UpdateProfileRequest is a partial profile update; absent fields are kept
type UpdateProfileRequest struct {
	FirstName *string `json:"nombre" validate:"omitempty,notblank,max=100"`
	LastName  *string `json:"apellido" validate:"omitempty,notblank,max=100"`
	DNI       *string `json:"dni" validate:"omitempty,max=20"`
	Phone     *string `json:"telefono" validate:"omitempty,max=20"`
	Gender    *string `json:"genero" validate:"omitempty,max=20"`
	// BirthDate uses the YYYY-MM-DD layout
	BirthDate *string `json:"fechaNacimiento" validate:"omitempty,datetime=2006-01-02"`
}

// ChangePasswordRequest represents the request body for changing one's password
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=32"`
}

// AdminUserRequest is what an administrator sends to create or edit an account
type AdminUserRequest struct {
	FirstName string `json:"nombre" validate:"required,notblank"`
	LastName  string `json:"apellido" validate:"required,notblank"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"omitempty,max=32"`
	Role      string `json:"rol" validate:"omitempty,rol"`
}

// ListUsersQuery holds the paging parameters of the user listing
type ListUsersQuery struct {
	Page int `query:"page"`
	Size int `query:"size"`
}

// GetProfile returns the authenticated user's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// UpdateProfile applies a partial update to the authenticated user's profile
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	input := &usecase.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		DNI:       req.DNI,
		Phone:     req.Phone,
		Gender:    req.Gender,
	}
	if req.BirthDate != nil {
		birthDate, err := time.Parse(dateLayout, *req.BirthDate)
		if err != nil {
			return response.InvalidField(c, "fechaNacimiento", "formato inválido")
		}
		input.BirthDate = &birthDate
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// ChangePassword changes the authenticated user's password
func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	err := h.userUC.ChangePassword(c.Request().Context(), userID, &usecase.ChangePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Contraseña actualizada correctamente"})
}

// ListUsers returns a page of accounts sorted by email
func (h *UserHandler) ListUsers(c echo.Context) error {
	var query ListUsersQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return invalidInput(c)
	}

	page, err := h.userUC.ListUsers(c.Request().Context(), repository.PageRequest{Page: query.Page, Size: query.Size})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPageResponse(page, toUserResponse))
}

// GetUser returns one account
func (h *UserHandler) GetUser(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c)
	}

	user, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// CreateUser creates an enabled local account
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req AdminUserRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user))
}

// UpdateUser edits an account; an empty password keeps the current one
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req AdminUserRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// DeleteUser removes an account
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c)
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (r *AdminUserRequest) toInput() *usecase.AdminUserInput {
	return &usecase.AdminUserInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
		Role:      r.Role,
	}
}

package handler

import (
	"log/slog"
	"net/http"

	"geekstore/internal/delivery/api/response"
	"geekstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves registration, login and password recovery.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for opening an account
type RegisterRequest struct {
	FirstName string `json:"nombre" validate:"required,notblank,max=100"`
	LastName  string `json:"apellido" validate:"required,notblank,max=100"`
	Email     string `json:"email" validate:"required,email,max=100"`
	Password  string `json:"password" validate:"required,min=8,max=32"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginRequest carries the ID token obtained by the frontend
type GoogleLoginRequest struct {
	Token string `json:"token" validate:"required,notblank"`
}

// RecoverPasswordRequest starts a password recovery
type RecoverPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyRecoveryCodeRequest checks a recovery code without consuming it
type VerifyRecoveryCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,notblank"`
}

// ResetPasswordRequest sets a new password with a recovery code
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required,notblank"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// TokenResponse carries a signed access token
type TokenResponse struct {
	Token string `json:"token"`
}

// Register handles account registration
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	user, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user))
}

// ConfirmAccount handles the link mailed after registration
func (h *AuthHandler) ConfirmAccount(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.InvalidField(c, "token", "es obligatorio")
	}

	if err := h.authUC.ConfirmAccount(c.Request().Context(), token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Cuenta confirmada exitosamente"})
}

// Login handles email and password login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	token, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TokenResponse{Token: token})
}

// GoogleLogin handles Google Sign-In with an ID token
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req GoogleLoginRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	token, err := h.authUC.LoginWithGoogle(c.Request().Context(), req.Token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TokenResponse{Token: token})
}

// RecoverPassword mails a recovery code
func (h *AuthHandler) RecoverPassword(c echo.Context) error {
	var req RecoverPasswordRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	if err := h.authUC.RequestPasswordRecovery(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Código enviado al correo"})
}

// VerifyRecoveryCode checks a recovery code
func (h *AuthHandler) VerifyRecoveryCode(c echo.Context) error {
	var req VerifyRecoveryCodeRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	err := h.authUC.VerifyRecoveryCode(c.Request().Context(), &usecase.RecoveryCodeInput{
		Email: req.Email,
		Code:  req.Code,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Código válido"})
}

// ResetPassword sets a new password using a recovery code
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	err := h.authUC.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Email:       req.Email,
		Code:        req.Code,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Contraseña actualizada correctamente"})
}

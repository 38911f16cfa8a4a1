package errors

import (
	"net/http"

	"geekstore/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	origin    *BaseError
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is reports whether target is e or the predefined error e was derived from.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t == e || t == e.origin
}

func (e *BaseError) root() *BaseError {
	if e.origin != nil {
		return e.origin
	}

	return e
}

// WithMessage returns a copy of the error carrying a more specific user-facing message
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
		origin:    e.root(),
	}
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		origin:    e.root(),
	}
}

// Predefined error types
var (
	// User and account errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Usuario no encontrado",
		"",
	)

	ErrEmailAlreadyConfirmed = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_EXISTS",
		"El email ya está en uso y confirmado.",
		"",
	)

	ErrEmailAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_ALREADY_EXISTS",
		"El email ya existe",
		"",
	)

	ErrEmailInUse = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_IN_USE",
		"El email está en uso.",
		"",
	)

	ErrDNIAlreadyExists = NewBaseError(
		http.StatusConflict,
		"DNI_ALREADY_EXISTS",
		"El DNI ya está registrado",
		"",
	)

	ErrPasswordRequired = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_REQUIRED",
		"La contraseña es obligatoria y debe tener al menos 6 caracteres",
		"",
	)

	ErrOldPasswordIncorrect = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PASSWORD",
		"La contraseña antigua es incorrecta",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Error al procesar la contraseña",
		"",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Credenciales inválidas",
		"",
	)

	ErrWrongPassword = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email o contraseña incorrectos",
		"",
	)

	ErrAccountDisabled = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_DISABLED",
		"Tu cuenta no ha sido verificada. Revisa tu correo.",
		"",
	)

	ErrOAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_FAILED",
		"Error al autenticar con Google",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"No autorizado",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"No tienes permisos para realizar esta acción.",
		"",
	)

	// Confirmation and recovery errors
	ErrConfirmationTokenInvalid = NewBaseError(
		http.StatusConflict,
		"TOKEN_INVALID",
		"Token inválido",
		"",
	)

	ErrConfirmationTokenUsed = NewBaseError(
		http.StatusConflict,
		"TOKEN_ALREADY_CONFIRMED",
		"El email ya fue confirmado",
		"",
	)

	ErrConfirmationTokenExpired = NewBaseError(
		http.StatusConflict,
		"TOKEN_EXPIRED",
		"El token ha expirado",
		"",
	)

	ErrGoogleAccountRecovery = NewBaseError(
		http.StatusBadRequest,
		"GOOGLE_ACCOUNT",
		"Tu cuenta está vinculada con Google. Inicia sesión con el botón de Google.",
		"",
	)

	ErrNoPendingRecovery = NewBaseError(
		http.StatusBadRequest,
		"NO_PENDING_RECOVERY",
		"No hay solicitud pendiente",
		"",
	)

	ErrRecoveryCodeMismatch = NewBaseError(
		http.StatusBadRequest,
		"RECOVERY_CODE_INVALID",
		"Código incorrecto",
		"",
	)

	ErrRecoveryCodeExpired = NewBaseError(
		http.StatusBadRequest,
		"RECOVERY_CODE_EXPIRED",
		"El código ha expirado",
		"",
	)

	// Catalog errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Producto no encontrado",
		"",
	)

	ErrVariantNotFound = NewBaseError(
		http.StatusNotFound,
		"VARIANT_NOT_FOUND",
		"Variante no encontrada",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Categoria no encontrada",
		"",
	)

	ErrBrandNotFound = NewBaseError(
		http.StatusNotFound,
		"BRAND_NOT_FOUND",
		"Marca no encontrada",
		"",
	)

	ErrCategoryAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CATEGORY_ALREADY_EXISTS",
		"Ya existe una categoría con ese nombre",
		"",
	)

	ErrBrandAlreadyExists = NewBaseError(
		http.StatusConflict,
		"BRAND_ALREADY_EXISTS",
		"Ya existe una marca con ese nombre",
		"",
	)

	ErrBrandNameTaken = NewBaseError(
		http.StatusBadRequest,
		"BRAND_NAME_TAKEN",
		"Ya existe una marca con el nombre",
		"",
	)

	ErrCategoryInUse = NewBaseError(
		http.StatusConflict,
		"CATEGORY_IN_USE",
		"No se puede eliminar la categoría porque contiene productos asignados.",
		"",
	)

	ErrBrandInUse = NewBaseError(
		http.StatusConflict,
		"BRAND_IN_USE",
		"No se puede eliminar la marca porque tiene productos asociados.",
		"",
	)

	// Order and payment errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Pedido no encontrado",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_STOCK",
		"Stock insuficiente",
		"",
	)

	ErrPaymentRejected = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_REJECTED",
		"El pago fue rechazado por la procesadora. Verifique los datos de su tarjeta.",
		"",
	)

	ErrPaymentGatewayUnavailable = NewBaseError(
		http.StatusBadGateway,
		"PAYMENT_GATEWAY_UNAVAILABLE",
		"Hubo un problema de comunicación con el banco. Intente nuevamente.",
		"",
	)

	// File errors
	ErrEmptyFile = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_FILE",
		"El archivo no puede estar vacío",
		"",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"Error al subir el archivo",
		"",
	)

	// Address errors
	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"Dirección no encontrada",
		"",
	)

	ErrAddressLimitReached = NewBaseError(
		http.StatusBadRequest,
		"ADDRESS_LIMIT_REACHED",
		"Has alcanzado el límite máximo de direcciones permitidas.",
		"",
	)

	ErrAddressOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"ADDRESS_OWNERSHIP_VIOLATION",
		"No tienes permiso para modificar esta dirección",
		"",
	)

	// Complaint errors
	ErrComplaintNotFound = NewBaseError(
		http.StatusNotFound,
		"COMPLAINT_NOT_FOUND",
		"Reclamo no encontrado",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos enviados no son válidos",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso no encontrado",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflicto con el estado actual del recurso",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Ocurrió un error interno en el servidor. Por favor contacte a soporte.",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Ocurrió un error interno en el servidor. Por favor contacte a soporte.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Ocurrió un error interno en el servidor. Por favor contacte a soporte."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Package response renders the storefront's JSON envelope:
// {"data": ..., "meta": {"request_id": ...}} on success and
// {"error": {"code", "message", "details"}, "meta": ...} on failure.
package response

import (
	"net/http"

	"geekstore/internal/delivery/api/validator"
	deliverycontext "geekstore/internal/delivery/context"
	domainerrors "geekstore/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Error codes produced by the delivery layer itself. Domain failures carry their own.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeInvalidID          = "INVALID_ID"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeInternal           = "INTERNAL_ERROR"
	CodeHTTP               = "HTTP_ERROR"
	CodePaymentNotApproved = "PAYMENT_NOT_APPROVED"
)

const (
	// GenericErrorMessage is shown for every unexpected server failure.
	GenericErrorMessage = "Ocurrió un error interno en el servidor. Por favor contacte a soporte."

	msgUnauthorized = "No autorizado"
	msgForbidden    = "Acceso Denegado"
)

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Details is dropped for 401, 403 and 5xx.
	Details any `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestIDFromContext(c.Request().Context())}
}

// Success writes data inside the envelope.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error writes an error envelope. Details never leak on auth or server failures.
func Error(c echo.Context, statusCode int, code string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: code, Message: message, Details: details},
		Meta:  meta(c),
	})
}

// InvalidField rejects a single request field, e.g. "fechaNacimiento: formato inválido".
func InvalidField(c echo.Context, field, msg string) error {
	return Error(c, http.StatusBadRequest, CodeValidation, field+": "+msg, map[string]string{field: msg})
}

// InvalidInput rejects a body or multipart form that could not be read at all.
func InvalidInput(c echo.Context, msg string) error {
	return Error(c, http.StatusBadRequest, CodeInvalidInput, msg, nil)
}

// InvalidID rejects a path parameter that is not a positive integer.
func InvalidID(c echo.Context) error {
	return Error(c, http.StatusBadRequest, CodeInvalidID, "Identificador inválido", nil)
}

// ValidationFailed returns a 400 whose details map each invalid field to its message.
func ValidationFailed(c echo.Context, err error) error {
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		return Error(c, http.StatusBadRequest, CodeValidation, verr.Error(), verr.Fields)
	}

	return Error(c, http.StatusBadRequest, CodeValidation, err.Error(), nil)
}

// PaymentNotApproved is a 400 that still returns the gateway outcome in details.
func PaymentNotApproved(c echo.Context, outcome any) error {
	return Error(c, http.StatusBadRequest, CodePaymentNotApproved, "El pago no pudo ser procesado.", outcome)
}

func Unauthenticated(c echo.Context) error {
	return Error(c, http.StatusUnauthorized, CodeUnauthorized, msgUnauthorized, nil)
}

func Forbidden(c echo.Context) error {
	return Error(c, http.StatusForbidden, CodeForbidden, msgForbidden, nil)
}

func Internal(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, CodeInternal, GenericErrorMessage, nil)
}

// HandleAppError renders domain errors. Anything else is returned for the error middleware.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)
	}

	return errors.WithStack(err)
}

package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"geekstore/internal/delivery/api/response"
	"geekstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ComplaintHandlerParams holds dependencies for ComplaintHandler, injected by Fx.
type ComplaintHandlerParams struct {
	fx.In

	ComplaintUC usecase.ComplaintUsecase
	Logger      *slog.Logger
}

// ComplaintHandler serves the complaints book.
type ComplaintHandler struct {
	complaintUC usecase.ComplaintUsecase
	logger      *slog.Logger
}

// NewComplaintHandler is the constructor for ComplaintHandler
func NewComplaintHandler(params ComplaintHandlerParams) *ComplaintHandler {
	return &ComplaintHandler{
		complaintUC: params.ComplaintUC,
		logger:      params.Logger,
	}
}

// ComplaintRequest is the public complaint form
type ComplaintRequest struct {
	FullName        string           `json:"nombreCompleto" validate:"required,notblank"`
	DNI             string           `json:"dni" validate:"required,notblank"`
	Phone           string           `json:"telefono" validate:"required,notblank"`
	Email           string           `json:"email" validate:"required,email"`
	Address         string           `json:"direccion" validate:"required,notblank"`
	GoodType        string           `json:"tipoBien" validate:"required,oneof=PRODUCTO SERVICIO"`
	ClaimedAmount   *decimal.Decimal `json:"montoReclamado" validate:"required,gte=0"`
	GoodDescription string           `json:"descripcionBien"`
	Type            string           `json:"tipoReclamo" validate:"required,oneof=RECLAMO QUEJA"`
	ProblemDetail   string           `json:"detalleProblema" validate:"required,notblank"`
	ConsumerRequest string           `json:"pedidoConsumidor" validate:"required,notblank"`
}

// FileComplaint registers a complaint and returns it with its tracking code
func (h *ComplaintHandler) FileComplaint(c echo.Context) error {
	var req ComplaintRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	complaint, err := h.complaintUC.FileComplaint(c.Request().Context(), &usecase.ComplaintInput{
		FullName:        req.FullName,
		DNI:             req.DNI,
		Phone:           req.Phone,
		Email:           req.Email,
		Address:         req.Address,
		GoodType:        req.GoodType,
		ClaimedAmount:   *req.ClaimedAmount,
		GoodDescription: req.GoodDescription,
		Type:            req.Type,
		ProblemDetail:   req.ProblemDetail,
		ConsumerRequest: req.ConsumerRequest,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toComplaintResponse(complaint))
}

// ListComplaints returns every complaint, newest first
func (h *ComplaintHandler) ListComplaints(c echo.Context) error {
	complaints, err := h.complaintUC.ListComplaints(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(complaints, toComplaintResponse))
}

// SetResolved marks a complaint as resolved or reopens it
func (h *ComplaintHandler) SetResolved(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c)
	}

	resolved, err := strconv.ParseBool(c.QueryParam("resuelto"))
	if err != nil {
		return response.InvalidField(c, "resuelto", "debe ser true o false")
	}

	complaint, err := h.complaintUC.SetResolved(c.Request().Context(), id, resolved)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toComplaintResponse(complaint))
}

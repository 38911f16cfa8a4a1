package handler

import (
	"net/http"
	"testing"
	"time"

	"geekstore/internal/domain/entity"
	domainerrors "geekstore/internal/domain/errors"
	mocks "geekstore/internal/mocks/usecase"
	"geekstore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func addressBody() map[string]string {
	return map[string]string{
		"alias":        "Casa",
		"departamento": "Lima",
		"provincia":    "Lima",
		"distrito":     "Miraflores",
		"direccion":    "Calle Los Pinos 456",
		"codigoPostal": "15074",
	}
}

func TestAddressHandler_CreateAddress(t *testing.T) {
	addressUC := mocks.NewMockAddressUsecase(t)
	h := NewAddressHandler(AddressHandlerParams{AddressUC: addressUC, Logger: newDiscardLogger()})

	addressUC.EXPECT().CreateAddress(mock.Anything, uint64(7), &usecase.AddressInput{
		Alias:      "Casa",
		Department: "Lima",
		Province:   "Lima",
		District:   "Miraflores",
		Street:     "Calle Los Pinos 456",
		PostalCode: "15074",
	}).Return(&entity.Address{ID: 3, UserID: 7, Alias: "Casa", District: "Miraflores"}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/users/me/addresses", addressBody(), 7)

	require.NoError(t, h.CreateAddress(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Miraflores", decode[AddressResponse](t, rec).Data.District)
}

func TestAddressHandler_CreateAddress_LimitReached(t *testing.T) {
	addressUC := mocks.NewMockAddressUsecase(t)
	h := NewAddressHandler(AddressHandlerParams{AddressUC: addressUC, Logger: newDiscardLogger()})

	addressUC.EXPECT().CreateAddress(mock.Anything, uint64(7), mock.Anything).Return(nil, domainerrors.ErrAddressLimitReached)

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/users/me/addresses", addressBody(), 7)

	require.NoError(t, h.CreateAddress(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ADDRESS_LIMIT_REACHED", decode[any](t, rec).Error.Code)
}

func TestAddressHandler_UpdateAddress_OtherUsersAddress(t *testing.T) {
	addressUC := mocks.NewMockAddressUsecase(t)
	h := NewAddressHandler(AddressHandlerParams{AddressUC: addressUC, Logger: newDiscardLogger()})

	addressUC.EXPECT().UpdateAddress(mock.Anything, uint64(7), uint64(99), mock.Anything).
		Return(nil, domainerrors.ErrAddressOwnershipViolation)

	c, rec := newJSONContext(t, http.MethodPut, "/api/v1/users/me/addresses/99", addressBody(), 7)
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, h.UpdateAddress(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, decode[any](t, rec).Error.Details)
}

func TestAddressHandler_DeleteAddress(t *testing.T) {
	addressUC := mocks.NewMockAddressUsecase(t)
	h := NewAddressHandler(AddressHandlerParams{AddressUC: addressUC, Logger: newDiscardLogger()})

	addressUC.EXPECT().DeleteAddress(mock.Anything, uint64(7), uint64(3)).Return(nil)

	c, rec := newJSONContext(t, http.MethodDelete, "/api/v1/users/me/addresses/3", nil, 7)
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, h.DeleteAddress(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestWishlistHandler_ToggleProduct(t *testing.T) {
	tests := []struct {
		name        string
		added       bool
		wantMessage string
	}{
		{name: "added", added: true, wantMessage: "Producto agregado a favoritos"},
		{name: "removed", added: false, wantMessage: "Producto eliminado de favoritos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wishlistUC := mocks.NewMockWishlistUsecase(t)
			h := NewWishlistHandler(WishlistHandlerParams{WishlistUC: wishlistUC, Logger: newDiscardLogger()})
			wishlistUC.EXPECT().ToggleProduct(mock.Anything, uint64(7), uint64(11)).Return(tt.added, nil)

			c, rec := newJSONContext(t, http.MethodPost, "/api/v1/wishlist/11", nil, 7)
			c.SetParamNames("productId")
			c.SetParamValues("11")

			require.NoError(t, h.ToggleProduct(c))
			assert.Equal(t, http.StatusOK, rec.Code)

			body := decode[ToggleResponse](t, rec)
			assert.Equal(t, tt.wantMessage, body.Data.Message)
			assert.Equal(t, tt.added, body.Data.Added)
		})
	}
}

func TestWishlistHandler_ToggleProduct_UnknownProduct(t *testing.T) {
	wishlistUC := mocks.NewMockWishlistUsecase(t)
	h := NewWishlistHandler(WishlistHandlerParams{WishlistUC: wishlistUC, Logger: newDiscardLogger()})
	wishlistUC.EXPECT().ToggleProduct(mock.Anything, uint64(7), uint64(12)).Return(false, domainerrors.ErrProductNotFound)

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/wishlist/12", nil, 7)
	c.SetParamNames("productId")
	c.SetParamValues("12")

	require.NoError(t, h.ToggleProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWishlistHandler_ListWishlist(t *testing.T) {
	wishlistUC := mocks.NewMockWishlistUsecase(t)
	h := NewWishlistHandler(WishlistHandlerParams{WishlistUC: wishlistUC, Logger: newDiscardLogger()})
	wishlistUC.EXPECT().ListWishlist(mock.Anything, uint64(7)).Return([]*entity.Product{sampleProduct()}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/wishlist", nil, 7)

	require.NoError(t, h.ListWishlist(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]ProductResponse](t, rec).Data, 1)
}

func complaintBody() map[string]any {
	return map[string]any{
		"nombreCompleto":   "Ana Quispe",
		"dni":              "45678912",
		"telefono":         "999888777",
		"email":            "ana@example.com",
		"direccion":        "Av. Arequipa 123",
		"tipoBien":         "PRODUCTO",
		"montoReclamado":   0,
		"descripcionBien":  "Figura Link",
		"tipoReclamo":      "RECLAMO",
		"detalleProblema":  "Llegó rota",
		"pedidoConsumidor": "Cambio del producto",
	}
}

func TestComplaintHandler_FileComplaint(t *testing.T) {
	complaintUC := mocks.NewMockComplaintUsecase(t)
	h := NewComplaintHandler(ComplaintHandlerParams{ComplaintUC: complaintUC, Logger: newDiscardLogger()})

	complaintUC.EXPECT().FileComplaint(mock.Anything, mock.MatchedBy(func(input *usecase.ComplaintInput) bool {
		return input.ClaimedAmount.IsZero() && input.GoodType == "PRODUCTO" && input.Type == "RECLAMO"
	})).Return(&entity.Complaint{
		ID:       17,
		Code:     "REC-2026-17",
		GoodType: entity.GoodTypeProduct,
		Type:     entity.ComplaintTypeClaim,
	}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/complaints", complaintBody(), 0)

	require.NoError(t, h.FileComplaint(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "REC-2026-17", decode[ComplaintResponse](t, rec).Data.Code)
}

func TestComplaintHandler_FileComplaint_Validation(t *testing.T) {
	complaintUC := mocks.NewMockComplaintUsecase(t)
	h := NewComplaintHandler(ComplaintHandlerParams{ComplaintUC: complaintUC, Logger: newDiscardLogger()})

	body := complaintBody()
	body["tipoReclamo"] = "SUGERENCIA"
	delete(body, "montoReclamado")

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/complaints", body, 0)

	require.NoError(t, h.FileComplaint(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	details := decode[any](t, rec).Error.Details
	assert.Equal(t, "debe ser uno de: RECLAMO QUEJA", details["tipoReclamo"])
	assert.Contains(t, details, "montoReclamado")
}

func TestComplaintHandler_SetResolved(t *testing.T) {
	t.Run("resolved", func(t *testing.T) {
		complaintUC := mocks.NewMockComplaintUsecase(t)
		h := NewComplaintHandler(ComplaintHandlerParams{ComplaintUC: complaintUC, Logger: newDiscardLogger()})
		resolvedAt := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
		complaintUC.EXPECT().SetResolved(mock.Anything, uint64(17), true).
			Return(&entity.Complaint{ID: 17, Resolved: true, ResolvedAt: &resolvedAt}, nil)

		c, rec := newJSONContext(t, http.MethodPatch, "/api/v1/complaints/17/resolver?resuelto=true", nil, 1)
		c.SetParamNames("id")
		c.SetParamValues("17")

		require.NoError(t, h.SetResolved(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := decode[ComplaintResponse](t, rec)
		assert.True(t, body.Data.Resolved)
		require.NotNil(t, body.Data.ResolvedAt)
		assert.True(t, resolvedAt.Equal(*body.Data.ResolvedAt))
	})

	t.Run("not a boolean", func(t *testing.T) {
		complaintUC := mocks.NewMockComplaintUsecase(t)
		h := NewComplaintHandler(ComplaintHandlerParams{ComplaintUC: complaintUC, Logger: newDiscardLogger()})

		c, rec := newJSONContext(t, http.MethodPatch, "/api/v1/complaints/17/resolver?resuelto=maybe", nil, 1)
		c.SetParamNames("id")
		c.SetParamValues("17")

		require.NoError(t, h.SetResolved(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMediaHandler_UploadImage(t *testing.T) {
	t.Run("uploaded", func(t *testing.T) {
		mediaUC := mocks.NewMockMediaUsecase(t)
		h := NewMediaHandler(MediaHandlerParams{MediaUC: mediaUC, Logger: newDiscardLogger()})
		mediaUC.EXPECT().UploadProductImage(mock.Anything, mock.Anything).
			Return("https://cdn.example/products/abc.png", nil)

		c, rec := newMultipartContext(t, "/api/v1/media/upload", nil,
			[]formFile{{field: fileFormField, filename: "abc.png", content: []byte("img")}}, 1)

		require.NoError(t, h.UploadImage(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://cdn.example/products/abc.png", decode[UploadResponse](t, rec).Data.URL)
	})

	t.Run("missing file", func(t *testing.T) {
		mediaUC := mocks.NewMockMediaUsecase(t)
		h := NewMediaHandler(MediaHandlerParams{MediaUC: mediaUC, Logger: newDiscardLogger()})

		c, rec := newMultipartContext(t, "/api/v1/media/upload", map[string]string{"note": "x"}, nil, 1)

		require.NoError(t, h.UploadImage(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "EMPTY_FILE", decode[any](t, rec).Error.Code)
	})
}

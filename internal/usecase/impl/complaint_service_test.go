package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"geekstore/internal/domain/entity"
	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplaintService_FileAndResolve(t *testing.T) {
	store := newTestStore(t)
	srv := NewComplaintService(ComplaintServiceParams{
		TxManager:     store.txManager,
		ComplaintRepo: store.complaints,
		Logger:        newDiscardLogger(),
	}).(*complaintService)
	fixed := time.Date(2025, time.May, 4, 9, 30, 0, 0, time.UTC)
	srv.now = func() time.Time { return fixed }
	ctx := context.Background()

	complaint, err := srv.FileComplaint(ctx, &usecase.ComplaintInput{
		FullName:        "Luis Rojas",
		DNI:             "87654321",
		Phone:           "999888777",
		Email:           "luis@example.com",
		Address:         "Jr. Puno 100",
		GoodType:        "PRODUCTO",
		ClaimedAmount:   decimal.RequireFromString("89.904"),
		GoodDescription: "Polo talla M",
		Type:            "RECLAMO",
		ProblemDetail:   "Llegó con la talla equivocada",
		ConsumerRequest: "Cambio de talla",
	})
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("REC-2025-%04d", complaint.ID), complaint.Code)
	assert.Equal(t, "89.90", complaint.ClaimedAmount.StringFixed(2))
	assert.False(t, complaint.Resolved)

	resolved, err := srv.SetResolved(ctx, complaint.ID, true)
	require.NoError(t, err)
	assert.True(t, resolved.Resolved)
	require.NotNil(t, resolved.ResolvedAt)

	reopened, err := srv.SetResolved(ctx, complaint.ID, false)
	require.NoError(t, err)
	assert.Nil(t, reopened.ResolvedAt)

	complaints, err := srv.ListComplaints(ctx)
	require.NoError(t, err)
	require.Len(t, complaints, 1)
	assert.Equal(t, complaint.Code, complaints[0].Code)
	assert.Equal(t, entity.ComplaintTypeClaim, complaints[0].Type)

	_, err = srv.SetResolved(ctx, 999, true)
	require.ErrorIs(t, err, domainerrors.ErrComplaintNotFound)
	assert.Equal(t, "Reclamo no encontrado con id: 999", appErrorMessage(t, err))
}

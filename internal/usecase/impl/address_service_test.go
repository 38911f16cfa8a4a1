package impl

import (
	"context"
	"testing"

	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAddressService(t *testing.T) (usecase.AddressUsecase, *testStore) {
	store := newTestStore(t)

	srv := NewAddressService(AddressServiceParams{
		TxManager:   store.txManager,
		AddressRepo: store.addresses,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return srv, store
}

func addressInput(alias string) *usecase.AddressInput {
	return &usecase.AddressInput{
		Alias:      alias,
		Department: "Lima",
		Province:   "Lima",
		District:   "Surco",
		Street:     "Av. Primavera 1020",
		PostalCode: "15038",
	}
}

func TestAddressService_CreateUpToLimit(t *testing.T) {
	srv, store := createTestAddressService(t)
	ctx := context.Background()
	user := store.seedUser(t, "ana@example.com", true)

	_, err := srv.CreateAddress(ctx, user.ID, addressInput("Casa"))
	require.NoError(t, err)
	_, err = srv.CreateAddress(ctx, user.ID, addressInput("Oficina"))
	require.NoError(t, err)

	_, err = srv.CreateAddress(ctx, user.ID, addressInput("Playa"))
	require.ErrorIs(t, err, domainerrors.ErrAddressLimitReached)
	assert.Equal(t, "Has alcanzado el límite máximo de 2 direcciones permitidas.", appErrorMessage(t, err))

	addresses, err := srv.ListAddresses(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, addresses, 2)
}

func TestAddressService_OwnershipEnforced(t *testing.T) {
	srv, store := createTestAddressService(t)
	ctx := context.Background()
	owner := store.seedUser(t, "owner@example.com", true)
	intruder := store.seedUser(t, "intruder@example.com", true)

	address, err := srv.CreateAddress(ctx, owner.ID, addressInput("Casa"))
	require.NoError(t, err)

	_, err = srv.UpdateAddress(ctx, intruder.ID, address.ID, addressInput("Mía"))
	assert.ErrorIs(t, err, domainerrors.ErrAddressOwnershipViolation)

	err = srv.DeleteAddress(ctx, intruder.ID, address.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAddressOwnershipViolation)

	updated, err := srv.UpdateAddress(ctx, owner.ID, address.ID, addressInput("Depa"))
	require.NoError(t, err)
	assert.Equal(t, "Depa", updated.Alias)

	require.NoError(t, srv.DeleteAddress(ctx, owner.ID, address.ID))

	err = srv.DeleteAddress(ctx, owner.ID, address.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

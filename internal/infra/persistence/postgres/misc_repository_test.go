package postgres

import (
	"context"
	"testing"

	"geekstore/internal/domain/entity"
	"geekstore/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewAddressRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "home@example.com")
	address := &entity.Address{
		UserID:     user.ID,
		Alias:      "Casa",
		Department: "Lima",
		Province:   "Lima",
		District:   "Miraflores",
		Street:     "Av. Larco 456",
		PostalCode: "15074",
	}
	require.NoError(t, repo.CreateAddress(ctx, address))

	count, err := repo.CountAddressesByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	address.Alias = "Trabajo"
	require.NoError(t, repo.UpdateAddress(ctx, address))

	addresses, err := repo.FindAddressesByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.Equal(t, "Trabajo", addresses[0].Alias)
	assert.True(t, addresses[0].IsOwnedBy(user.ID))

	require.NoError(t, repo.DeleteAddress(ctx, address.ID))
	_, err = repo.FindAddressByID(ctx, address.ID)
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)
}

func TestWishlistRepository_Toggle(t *testing.T) {
	db := newTestDB(t)
	repo := NewWishlistRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "fan@example.com")
	category := seedCategory(t, db, "Figuras")
	first := seedProduct(t, db, "Figura Goku", category.ID, 1)
	second := seedProduct(t, db, "Figura Luffy", category.ID, 1)

	require.NoError(t, repo.CreateWishlistItem(ctx, &entity.WishlistItem{UserID: user.ID, ProductID: second.ID}))
	require.NoError(t, repo.CreateWishlistItem(ctx, &entity.WishlistItem{UserID: user.ID, ProductID: first.ID}))

	ids, err := repo.ListWishlistProductIDs(ctx, user.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{first.ID, second.ID}, ids)

	item, err := repo.FindWishlistItem(ctx, user.ID, first.ID)
	require.NoError(t, err)
	require.NoError(t, repo.DeleteWishlistItem(ctx, item.ID))

	_, err = repo.FindWishlistItem(ctx, user.ID, first.ID)
	assert.ErrorIs(t, err, repository.ErrWishlistItemNotFound)
}

func TestComplaintRepository_CreateUpdateList(t *testing.T) {
	db := newTestDB(t)
	repo := NewComplaintRepository(db)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		complaint := &entity.Complaint{
			Code:            entity.ComplaintCodePlaceholder,
			FullName:        "Luis Rojas",
			DNI:             "87654321",
			Phone:           "999888777",
			Email:           "luis@example.com",
			Address:         "Jr. Puno 100",
			GoodType:        entity.GoodTypeProduct,
			ClaimedAmount:   decimal.RequireFromString("89.9"),
			Type:            entity.ComplaintTypeClaim,
			ProblemDetail:   "Llegó dañado",
			ConsumerRequest: "Cambio",
		}
		require.NoError(t, repo.CreateComplaint(ctx, complaint))

		complaint.Code = entity.ComplaintCode(2025, complaint.ID)
		require.NoError(t, repo.UpdateComplaint(ctx, complaint))
	}

	complaints, err := repo.ListComplaints(ctx)
	require.NoError(t, err)
	require.Len(t, complaints, 2)
	assert.Greater(t, complaints[0].ID, complaints[1].ID)
	assert.Equal(t, entity.ComplaintCode(2025, complaints[0].ID), complaints[0].Code)
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()
	errBoom := errors.New("boom")

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewUserRepository().CreateUser(ctx, seedUserEntity("tx@example.com")); err != nil {
			return err
		}

		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	exists, err := NewUserRepository(db).ExistsByEmail(ctx, "tx@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			if err := factory.NewUserRepository().CreateUser(ctx, seedUserEntity("tx@example.com")); err != nil {
				return err
			}
			panic("nil product variant")
		})
	})

	exists, err := NewUserRepository(db).ExistsByEmail(ctx, "tx@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTransactionManager_Commit(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewUserRepository().CreateUser(ctx, seedUserEntity("tx@example.com"))
	})
	require.NoError(t, err)

	exists, err := NewUserRepository(db).ExistsByEmail(ctx, "tx@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

package impl

import (
	"context"
	"testing"

	domainerrors "geekstore/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistService_Toggle(t *testing.T) {
	store := newTestStore(t)
	srv := NewWishlistService(WishlistServiceParams{
		TxManager:    store.txManager,
		WishlistRepo: store.wishlist,
		ProductRepo:  store.products,
		Logger:       newDiscardLogger(),
	})
	ctx := context.Background()

	user := store.seedUser(t, "fan@example.com", true)
	category := store.seedCategory(t, "Figuras")
	goku := store.seedProduct(t, "Figura Goku", category.ID, 150, 1)
	luffy := store.seedProduct(t, "Figura Luffy", category.ID, 150, 1)

	empty, err := srv.ListWishlist(ctx, user.ID)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	added, err := srv.ToggleProduct(ctx, user.ID, luffy.ID)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = srv.ToggleProduct(ctx, user.ID, goku.ID)
	require.NoError(t, err)
	assert.True(t, added)

	products, err := srv.ListWishlist(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	// insertion order, not product id order
	assert.Equal(t, []uint64{luffy.ID, goku.ID}, []uint64{products[0].ID, products[1].ID})

	added, err = srv.ToggleProduct(ctx, user.ID, luffy.ID)
	require.NoError(t, err)
	assert.False(t, added)

	products, err = srv.ListWishlist(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, goku.ID, products[0].ID)

	_, err = srv.ToggleProduct(ctx, user.ID, 999)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

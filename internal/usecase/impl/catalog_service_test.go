package impl

import (
	"context"
	"testing"

	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Lifecycle(t *testing.T) {
	store := newTestStore(t)
	srv := NewCategoryService(CategoryServiceParams{
		TxManager:    store.txManager,
		CategoryRepo: store.categories,
		Logger:       newDiscardLogger(),
	})
	ctx := context.Background()

	category, err := srv.CreateCategory(ctx, &usecase.CategoryInput{Name: " Polos ", Description: "Polos geek"})
	require.NoError(t, err)
	assert.Equal(t, "Polos", category.Name)

	_, err = srv.CreateCategory(ctx, &usecase.CategoryInput{Name: "Polos"})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExists)

	updated, err := srv.UpdateCategory(ctx, category.ID, &usecase.CategoryInput{Name: "Poleras", Description: "Nuevas"})
	require.NoError(t, err)
	assert.Equal(t, "Poleras", updated.Name)

	_, err = srv.GetCategory(ctx, 999)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)

	store.seedProduct(t, "Polera Zelda", category.ID, 80, 3)
	err = srv.DeleteCategory(ctx, category.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryInUse)

	empty, err := srv.CreateCategory(ctx, &usecase.CategoryInput{Name: "Vacía"})
	require.NoError(t, err)
	require.NoError(t, srv.DeleteCategory(ctx, empty.ID))

	err = srv.DeleteCategory(ctx, empty.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)

	categories, err := srv.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}

func TestBrandService_Lifecycle(t *testing.T) {
	store := newTestStore(t)
	srv := NewBrandService(BrandServiceParams{
		TxManager: store.txManager,
		BrandRepo: store.brands,
		Logger:    newDiscardLogger(),
	})
	ctx := context.Background()

	marvel, err := srv.CreateBrand(ctx, &usecase.BrandInput{Name: "Marvel"})
	require.NoError(t, err)
	dc, err := srv.CreateBrand(ctx, &usecase.BrandInput{Name: "DC"})
	require.NoError(t, err)

	_, err = srv.CreateBrand(ctx, &usecase.BrandInput{Name: "marvel"})
	assert.ErrorIs(t, err, domainerrors.ErrBrandAlreadyExists)

	_, err = srv.UpdateBrand(ctx, dc.ID, &usecase.BrandInput{Name: "MARVEL"})
	assert.ErrorIs(t, err, domainerrors.ErrBrandNameTaken)

	renamed, err := srv.UpdateBrand(ctx, marvel.ID, &usecase.BrandInput{Name: "MARVEL"})
	require.NoError(t, err)
	assert.Equal(t, "MARVEL", renamed.Name)

	category := store.seedCategory(t, "Comics")
	product := store.seedProduct(t, "Comic Batman", category.ID, 40, 2)
	product.BrandID = &dc.ID
	require.NoError(t, store.products.UpdateProduct(ctx, product))

	err = srv.DeleteBrand(ctx, dc.ID)
	assert.ErrorIs(t, err, domainerrors.ErrBrandInUse)

	require.NoError(t, srv.DeleteBrand(ctx, marvel.ID))
	_, err = srv.GetBrand(ctx, marvel.ID)
	assert.ErrorIs(t, err, domainerrors.ErrBrandNotFound)
}

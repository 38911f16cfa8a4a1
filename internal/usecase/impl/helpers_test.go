package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"geekstore/config"
	"geekstore/internal/domain/entity"
	"geekstore/internal/domain/repository"
	"geekstore/internal/infra/persistence/postgres"
	mockSvc "geekstore/internal/mocks/service"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testStore is an in-memory database with the production repositories on top.
type testStore struct {
	txManager  repository.TransactionManager
	users      repository.UserRepository
	tokens     repository.TokenRepository
	products   repository.ProductRepository
	categories repository.CategoryRepository
	brands     repository.BrandRepository
	orders     repository.OrderRepository
	addresses  repository.AddressRepository
	wishlist   repository.WishlistRepository
	complaints repository.ComplaintRepository
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres.Migrate(context.Background(), db))

	return &testStore{
		txManager:  postgres.NewTransactionManager(db),
		users:      postgres.NewUserRepository(db),
		tokens:     postgres.NewTokenRepository(db),
		products:   postgres.NewProductRepository(db),
		categories: postgres.NewCategoryRepository(db),
		brands:     postgres.NewBrandRepository(db),
		orders:     postgres.NewOrderRepository(db),
		addresses:  postgres.NewAddressRepository(db),
		wishlist:   postgres.NewWishlistRepository(db),
		complaints: postgres.NewComplaintRepository(db),
	}
}

func (s *testStore) seedUser(t *testing.T, email string, enabled bool) *entity.User {
	t.Helper()

	user := &entity.User{
		FirstName:    "Ana",
		LastName:     "Quispe",
		Email:        email,
		PasswordHash: "hashed:secret1",
		Role:         entity.RoleUser,
		Enabled:      enabled,
		AuthProvider: entity.AuthProviderLocal,
	}
	require.NoError(t, s.users.CreateUser(context.Background(), user))

	return user
}

func (s *testStore) seedCategory(t *testing.T, name string) *entity.Category {
	t.Helper()

	category := &entity.Category{Name: name, Description: name}
	require.NoError(t, s.categories.CreateCategory(context.Background(), category))

	return category
}

func (s *testStore) seedBrand(t *testing.T, name string) *entity.Brand {
	t.Helper()

	brand := &entity.Brand{Name: name}
	require.NoError(t, s.brands.CreateBrand(context.Background(), brand))

	return brand
}

func (s *testStore) seedProduct(t *testing.T, name string, categoryID uint64, price int64, stock int) *entity.Product {
	t.Helper()

	return s.seedPricedProduct(t, name, categoryID, decimal.NewFromInt(price), stock)
}

func (s *testStore) seedPricedProduct(t *testing.T, name string, categoryID uint64, price decimal.Decimal, stock int) *entity.Product {
	t.Helper()

	product := &entity.Product{
		Name:       name,
		Price:      price,
		Gender:     entity.GenderUnisex,
		CategoryID: categoryID,
		Images:     []entity.ProductImage{{URL: "https://cdn.example.com/" + strings.ReplaceAll(name, " ", "-") + ".png"}},
		Variants:   []entity.ProductVariant{{Color: "NEGRO", ColorHex: "#000000", Size: "M", Stock: stock}},
	}
	require.NoError(t, s.products.CreateProduct(context.Background(), product))

	return product
}

func (s *testStore) variantStock(t *testing.T, productID uint64) int {
	t.Helper()

	product, err := s.products.FindProductByID(context.Background(), productID)
	require.NoError(t, err)

	return product.Variants[0].Stock
}

// newFakeHasher returns a hasher mock that prefixes passwords with "hashed:".
func newFakeHasher(t *testing.T) *mockSvc.MockPasswordHasher {
	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash(mock.Anything).RunAndReturn(func(password string) (string, error) {
		return "hashed:" + password, nil
	}).Maybe()
	hasher.EXPECT().Matches(mock.Anything, mock.Anything).RunAndReturn(func(password, hash string) bool {
		return hash == "hashed:"+password
	}).Maybe()
	hasher.EXPECT().NeedsRehash(mock.Anything).Return(false).Maybe()

	return hasher
}

// recordingPublisher returns a publisher mock that keeps every published event.
func recordingPublisher(t *testing.T) (*mockSvc.MockEventPublisher, *[]*entity.MailEvent) {
	events := &[]*entity.MailEvent{}
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishMailEvent(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, event *entity.MailEvent) error {
		*events = append(*events, event)

		return nil
	}).Maybe()

	return publisher, events
}

func newTestConfig() *config.Config {
	return &config.Config{
		Store: &config.StoreConfig{
			MaxAddressesPerUser: 2,
			ManualShippingFee:   20,
		},
	}
}

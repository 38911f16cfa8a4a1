package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"geekstore/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
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

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func seedUserEntity(email string) *entity.User {
	return &entity.User{
		FirstName:    "Ana",
		LastName:     "Quispe",
		Email:        email,
		PasswordHash: "hash",
		Role:         entity.RoleUser,
		Enabled:      true,
		AuthProvider: entity.AuthProviderLocal,
	}
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := seedUserEntity(email)
	require.NoError(t, NewUserRepository(db).CreateUser(context.Background(), user))

	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *entity.Category {
	t.Helper()

	category := &entity.Category{Name: name, Description: name + " description"}
	require.NoError(t, NewCategoryRepository(db).CreateCategory(context.Background(), category))

	return category
}

func seedProduct(t *testing.T, db *gorm.DB, name string, categoryID uint64, stock int) *entity.Product {
	t.Helper()

	product := &entity.Product{
		Name:       name,
		Price:      decimal.NewFromInt(100),
		Gender:     entity.GenderUnisex,
		CategoryID: categoryID,
		Images:     []entity.ProductImage{{URL: "https://cdn.example.com/" + name + ".png"}},
		Variants: []entity.ProductVariant{
			{Color: "NEGRO", ColorHex: "#000000", Size: "M", Stock: stock},
		},
	}
	require.NoError(t, NewProductRepository(db).CreateProduct(context.Background(), product))

	return product
}

func fixedTime() time.Time {
	return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
}

// Package postgres implements the repositories on GORM. Production runs on PostgreSQL,
// the tests on an in-memory SQLite database.
package postgres

import (
	"context"

	"geekstore/internal/domain/repository"
	"geekstore/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in one transaction. It commits when fn returns nil and rolls back on an
// error or a panic, which is re-raised. fn's error is returned unwrapped so domain
// sentinels such as ErrOutOfStock keep their identity.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}

	return errors.Wrap(err, "transaction failed")
}

// txRepositories hands out repositories bound to one transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (f txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f txRepositories) NewTokenRepository() repository.TokenRepository {
	return NewTokenRepository(f.tx)
}

func (f txRepositories) NewProductRepository() repository.ProductRepository {
	return NewProductRepository(f.tx)
}

func (f txRepositories) NewCategoryRepository() repository.CategoryRepository {
	return NewCategoryRepository(f.tx)
}

func (f txRepositories) NewBrandRepository() repository.BrandRepository {
	return NewBrandRepository(f.tx)
}

func (f txRepositories) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

func (f txRepositories) NewAddressRepository() repository.AddressRepository {
	return NewAddressRepository(f.tx)
}

func (f txRepositories) NewWishlistRepository() repository.WishlistRepository {
	return NewWishlistRepository(f.tx)
}

func (f txRepositories) NewComplaintRepository() repository.ComplaintRepository {
	return NewComplaintRepository(f.tx)
}

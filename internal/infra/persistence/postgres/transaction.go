// Package postgres contains the gorm repositories. The same code runs on
// PostgreSQL in production and on SQLite locally and in tests.
package postgres

import (
	"context"

	"blog/internal/domain/repository"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// txRepositories hands out repositories bound to one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (f *txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *txRepositories) NewBlogRepository() repository.BlogRepository {
	return NewBlogRepository(f.tx)
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute commits when fn returns nil and rolls back otherwise. gorm also
// rolls back on panic and re-panics, so the recover middleware still sees it.
// fn's error is returned unwrapped so callers can match domain errors.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&txRepositories{tx: tx})
	})
}

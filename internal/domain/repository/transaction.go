package repository

import "context"

// TransactionManager runs a unit of work atomically. Usecases reach the store
// only through the factory they are handed, so everything fn does shares the
// transaction.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory builds repositories bound to the current transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewBlogRepository() BlogRepository
}

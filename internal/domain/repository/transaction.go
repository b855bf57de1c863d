package repository

import "context"

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	NewRouteRepository() RouteRepository
}

// TransactionManager runs fn inside a single database transaction.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}

package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs fn within a database transaction.
	// If fn returns an error or panics, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations obtained from the factory use the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to a single unit of work.
// Outside a transaction the factory is bound to the process-wide connection pool.
type RepositoryFactory interface {
	UserRepo() UserRepository
	InstituteRepo() InstituteRepository
	StudentRepo() StudentRepository
}

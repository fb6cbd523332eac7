package repository

import (
	"context"

	"redcolabora/internal/domain/entity"
)

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs fn within a database transaction on behalf of identity.
	// A nil identity runs as the anonymous role. The store evaluates its
	// row-level policies against the identity forwarded here.
	Execute(ctx context.Context, identity *entity.Identity, fn func(txRepoFactory RepositoryFactory) error) error

	// ExecuteReadOnly is Execute for pure reads; it may be served by a read replica.
	ExecuteReadOnly(ctx context.Context, identity *entity.Identity, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
type RepositoryFactory interface {
	BusinessRepo() BusinessRepository
	ReviewRepo() ReviewRepository
	RecommendationRepo() RecommendationRepository
	ProfileRepo() ProfileRepository
}

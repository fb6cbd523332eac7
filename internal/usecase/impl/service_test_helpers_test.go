package impl

import (
	"context"
	"io"
	"log/slog"

	"redcolabora/config"
	"redcolabora/internal/domain/entity"
	"redcolabora/internal/domain/repository"
	mockRepo "redcolabora/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Supabase: &config.SupabaseConfig{RedirectURL: "https://redcolabora.cl/auth/callback"},
	}
}

func newTestIdentity() *entity.Identity {
	return &entity.Identity{ID: uuid.New(), Email: "vecina@example.com"}
}

func strPtr(s string) *string {
	return &s
}

// runInTx makes Execute run the callback against factory and return its result.
func runInTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, _ *entity.Identity, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// runInReadOnlyTx is runInTx for ExecuteReadOnly.
func runInReadOnlyTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		ExecuteReadOnly(mock.Anything, mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, _ *entity.Identity, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

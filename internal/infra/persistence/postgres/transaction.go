// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"redcolabora/config"
	"redcolabora/internal/domain/entity"
	"redcolabora/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	roleAuthenticated = "authenticated"
	roleAnonymous     = "anon"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db  *gorm.DB
	rls bool
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) BusinessRepo() repository.BusinessRepository {
	return NewBusinessRepository(f.tx)
}

func (f *gormRepositoryFactory) ReviewRepo() repository.ReviewRepository {
	return NewReviewRepository(f.tx)
}

func (f *gormRepositoryFactory) RecommendationRepo() repository.RecommendationRepository {
	return NewRecommendationRepository(f.tx)
}

func (f *gormRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	return NewProfileRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB, cfg *config.Config) repository.TransactionManager {
	return &gormTransactionManager{
		db:  db,
		rls: cfg.Postgres != nil && cfg.Postgres.RowLevelSecurity,
	}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, identity *entity.Identity, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.run(tm.db.WithContext(ctx), identity, fn)
}

// ExecuteReadOnly runs fn in a transaction opened on a read replica when one is configured.
func (tm *gormTransactionManager) ExecuteReadOnly(ctx context.Context, identity *entity.Identity, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.run(tm.db.WithContext(ctx).Clauses(dbresolver.Read), identity, fn)
}

func (tm *gormTransactionManager) run(db *gorm.DB, identity *entity.Identity, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if tm.rls {
		if err := applyRequestClaims(tx, identity); err != nil {
			tx.Rollback()

			return err
		}
	}

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// applyRequestClaims scopes the transaction to the caller the same way the
// project's REST gateway does, so auth.uid() and the policies see the identity.
func applyRequestClaims(tx *gorm.DB, identity *entity.Identity) error {
	role, claims, err := requestClaims(identity)
	if err != nil {
		return err
	}

	if err := tx.Exec("SELECT set_config('request.jwt.claims', ?, true)", claims).Error; err != nil {
		return fmt.Errorf("failed to set request claims: %w", err)
	}

	if err := tx.Exec("SELECT set_config('role', ?, true)", role).Error; err != nil {
		return fmt.Errorf("failed to set request role: %w", err)
	}

	return nil
}

func requestClaims(identity *entity.Identity) (role string, claims string, err error) {
	payload := map[string]string{"role": roleAnonymous}
	role = roleAnonymous

	if identity != nil {
		role = roleAuthenticated
		payload = map[string]string{
			"sub":   identity.ID.String(),
			"email": identity.Email,
			"role":  roleAuthenticated,
		}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode request claims: %w", err)
	}

	return role, string(raw), nil
}

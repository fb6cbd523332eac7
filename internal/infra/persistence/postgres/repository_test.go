package postgres

import (
	"context"
	"slices"
	"testing"
	"time"

	"redcolabora/internal/domain/entity"
	"redcolabora/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type capturedStatement struct {
	sql  string
	vars []any
}

// newDryRunDB returns a postgres-dialect DB that builds statements without a server.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]capturedStatement) {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost port=5432 user=test password=test dbname=test sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)

	statements := make([]capturedStatement, 0)
	capture := func(tx *gorm.DB) {
		statements = append(statements, capturedStatement{
			sql:  tx.Statement.SQL.String(),
			vars: slices.Clone(tx.Statement.Vars),
		})
	}

	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture_query", capture))
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:capture_create", capture))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:capture_update", capture))
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("test:capture_delete", capture))
	require.NoError(t, db.Callback().Raw().After("gorm:raw").Register("test:capture_raw", capture))

	return db, &statements
}

func lastStatement(t *testing.T, statements *[]capturedStatement) capturedStatement {
	t.Helper()
	require.NotEmpty(t, *statements)

	return (*statements)[len(*statements)-1]
}

func TestBusinessRepository_Search_NoFilters(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewBusinessRepository(db)

	businesses, err := repo.Search(context.Background(), entity.BusinessFilter{Comuna: "   ", Category: ""})
	require.NoError(t, err)
	assert.Empty(t, businesses)

	stmt := lastStatement(t, statements)
	assert.Contains(t, stmt.sql, `FROM "businesses"`)
	assert.NotContains(t, stmt.sql, "ILIKE")
	assert.Contains(t, stmt.sql, "ORDER BY created_at DESC")
	assert.Empty(t, stmt.vars)
}

func TestBusinessRepository_Search_BothFilters(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewBusinessRepository(db)

	_, err := repo.Search(context.Background(), entity.BusinessFilter{Comuna: " Ñuñoa ", Category: "Panadería"})
	require.NoError(t, err)

	stmt := lastStatement(t, statements)
	assert.Contains(t, stmt.sql, "comuna ILIKE $1")
	assert.Contains(t, stmt.sql, "category ILIKE $2")
	assert.Contains(t, stmt.sql, "ORDER BY created_at DESC")
	assert.Equal(t, []any{"%Ñuñoa%", "%Panadería%"}, stmt.vars)
}

func TestBusinessRepository_Search_EscapesWildcards(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewBusinessRepository(db)

	_, err := repo.Search(context.Background(), entity.BusinessFilter{Category: "100%_real"})
	require.NoError(t, err)

	stmt := lastStatement(t, statements)
	assert.Equal(t, []any{`%100\%\_real%`}, stmt.vars)
}

func TestBusinessRepository_FindByID_BuildsPrimaryKeyLookup(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewBusinessRepository(db)
	id := uuid.New()

	_, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)

	stmt := lastStatement(t, statements)
	assert.Contains(t, stmt.sql, "id = $1")
	assert.Contains(t, stmt.sql, "LIMIT")
	assert.Contains(t, stmt.vars, id)
}

func TestBusinessRepository_UpdateProfile_SingleStatement(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewBusinessRepository(db)
	id := uuid.New()
	phone := "+56 9 1234 5678"
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	err := repo.UpdateProfile(context.Background(), id, &entity.BusinessProfile{
		Name:  "Almacén La Esquina",
		Phone: &phone,
	}, now)

	// Dry runs affect no rows, which is reported like a hidden row.
	assert.True(t, errors.Is(err, repository.ErrBusinessNotFound))

	require.Len(t, *statements, 1)
	stmt := lastStatement(t, statements)
	assert.Contains(t, stmt.sql, `UPDATE "businesses" SET`)
	for _, column := range []string{"name", "description", "comuna", "category", "phone", "email", "website", "updated_at"} {
		assert.Contains(t, stmt.sql, `"`+column+`"=`)
	}
	assert.Contains(t, stmt.sql, "WHERE id =")
	assert.Contains(t, stmt.vars, "Almacén La Esquina")
	assert.Contains(t, stmt.vars, now)
}

func TestReviewRepository_FindByBusiness_NewestFirst(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewReviewRepository(db)
	businessID := uuid.New()

	reviews, err := repo.FindByBusiness(context.Background(), businessID)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	stmt := lastStatement(t, statements)
	assert.Contains(t, stmt.sql, `FROM "reviews"`)
	assert.Contains(t, stmt.sql, "business_id = $1")
	assert.Contains(t, stmt.sql, "ORDER BY created_at DESC")
	assert.Equal(t, []any{businessID}, stmt.vars)
}

func TestReviewRepository_Create(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewReviewRepository(db)

	review := &entity.Review{
		BusinessID: uuid.New(),
		UserID:     uuid.New(),
		Rating:     5,
		Comment:    "Excelente atención y productos frescos",
	}

	require.NoError(t, repo.Create(context.Background(), review))

	stmt := lastStatement(t, statements)
	assert.Contains(t, stmt.sql, `INSERT INTO "reviews"`)
	assert.Contains(t, stmt.vars, "Excelente atención y productos frescos")
	assert.Contains(t, stmt.vars, 5)
}

func TestRecommendationRepository_CountByBusiness(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewRecommendationRepository(db)
	businessID := uuid.New()

	count, err := repo.CountByBusiness(context.Background(), businessID)
	require.NoError(t, err)
	assert.Zero(t, count)

	stmt := lastStatement(t, statements)
	assert.Contains(t, stmt.sql, "count(*)")
	assert.Contains(t, stmt.sql, `FROM "recommendations"`)
	assert.Equal(t, []any{businessID}, stmt.vars)
}

func TestRecommendationRepository_Exists(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewRecommendationRepository(db)
	businessID, userID := uuid.New(), uuid.New()

	exists, err := repo.Exists(context.Background(), businessID, userID)
	require.NoError(t, err)
	assert.False(t, exists)

	stmt := lastStatement(t, statements)
	assert.Contains(t, stmt.sql, "business_id = $1 AND user_id = $2")
	assert.Equal(t, []any{businessID, userID}, stmt.vars)
}

func TestRecommendationRepository_Create_SkipsConflicts(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewRecommendationRepository(db)

	err := repo.Create(context.Background(), uuid.New(), uuid.New())

	// Nothing is inserted in a dry run, the same outcome as an existing row.
	assert.True(t, errors.Is(err, repository.ErrDuplicateRecommendation))

	stmt := lastStatement(t, statements)
	assert.Contains(t, stmt.sql, `INSERT INTO "recommendations"`)
	assert.Contains(t, stmt.sql, "ON CONFLICT DO NOTHING")
}

func TestRecommendationRepository_Delete(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewRecommendationRepository(db)
	businessID, userID := uuid.New(), uuid.New()

	removed, err := repo.Delete(context.Background(), businessID, userID)
	require.NoError(t, err)
	assert.Zero(t, removed)

	stmt := lastStatement(t, statements)
	assert.Contains(t, stmt.sql, `DELETE FROM "recommendations"`)
	assert.Contains(t, stmt.sql, "business_id = $1 AND user_id = $2")
}

func TestProfileRepository_FindByID(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewProfileRepository(db)
	id := uuid.New()

	_, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)

	stmt := lastStatement(t, statements)
	assert.Contains(t, stmt.sql, `FROM "users"`)
	assert.Contains(t, stmt.vars, id)
}

package postgres

import (
	"context"

	domainerrors "redcolabora/internal/domain/errors"
	"redcolabora/internal/domain/repository"
	"redcolabora/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// recommendationRepository implements the repository.RecommendationRepository interface.
type recommendationRepository struct {
	db *gorm.DB
}

// NewRecommendationRepository is the constructor for recommendationRepository.
func NewRecommendationRepository(db *gorm.DB) repository.RecommendationRepository {
	return &recommendationRepository{
		db: db,
	}
}

// CountByBusiness returns the exact recommendation count for a business.
func (repo *recommendationRepository) CountByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RecommendationModel{}).
		Where("business_id = ?", businessID).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count recommendations")
	}

	return count, nil
}

// Exists reports whether the user recommends the business.
func (repo *recommendationRepository) Exists(ctx context.Context, businessID, userID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RecommendationModel{}).
		Where("business_id = ? AND user_id = ?", businessID, userID).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check recommendation")
	}

	return count > 0, nil
}

// Create inserts a recommendation for the pair. A conflicting row is skipped
// rather than raised so the surrounding transaction stays usable.
func (repo *recommendationRepository) Create(ctx context.Context, businessID, userID uuid.UUID) error {
	recommendationM := &model.RecommendationModel{
		ID:         uuid.New(),
		BusinessID: businessID,
		UserID:     userID,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(recommendationM)

	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRecommendation
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBusinessNotFound
		}
		if isRowLevelSecurityViolation(err) {
			return domainerrors.ErrForbidden.WrapMessage("recommendation rejected by policy")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recommendation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDuplicateRecommendation
	}

	return nil
}

// Delete removes every row for the pair.
func (repo *recommendationRepository) Delete(ctx context.Context, businessID, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("business_id = ? AND user_id = ?", businessID, userID).
		Delete(&model.RecommendationModel{})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete recommendation")
	}

	return result.RowsAffected, nil
}

package postgres

import (
	"context"
	"strings"
	"time"

	"redcolabora/internal/domain/entity"
	domainerrors "redcolabora/internal/domain/errors"
	"redcolabora/internal/domain/repository"
	"redcolabora/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// businessRepository implements the repository.BusinessRepository interface.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{
		db: db,
	}
}

// Search lists businesses matching the filter, newest first.
func (repo *businessRepository) Search(ctx context.Context, filter entity.BusinessFilter) ([]*entity.Business, error) {
	query := repo.db.WithContext(ctx).Model(&model.BusinessModel{})

	if comuna := strings.TrimSpace(filter.Comuna); comuna != "" {
		query = query.Where("comuna ILIKE ?", containsPattern(comuna))
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("category ILIKE ?", containsPattern(category))
	}

	var businessModels []*model.BusinessModel
	if err := query.Order("created_at DESC").Find(&businessModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to search businesses")
	}

	businesses := make([]*entity.Business, 0, len(businessModels))
	for _, businessM := range businessModels {
		businesses = append(businesses, toBusinessDomain(businessM))
	}

	return businesses, nil
}

// FindByID retrieves a business by its unique ID.
func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find business by ID")
	}

	return toBusinessDomain(&businessM), nil
}

// UpdateProfile overwrites the editable fields. Nil values are stored as NULL.
func (repo *businessRepository) UpdateProfile(ctx context.Context, id uuid.UUID, profile *entity.BusinessProfile, updatedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":        profile.Name,
			"description": profile.Description,
			"comuna":      profile.Comuna,
			"category":    profile.Category,
			"phone":       profile.Phone,
			"email":       profile.Email,
			"website":     profile.Website,
			"updated_at":  updatedAt,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("business violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business")
	}

	// Policies hide rows the caller may not touch, so a denied update looks like a miss.
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBusinessDomain converts a GORM BusinessModel to a domain Business entity.
func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	return &entity.Business{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Comuna:      data.Comuna,
		Category:    data.Category,
		Phone:       data.Phone,
		Email:       data.Email,
		Website:     data.Website,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "redcolabora/internal/delivery/context"
	"redcolabora/internal/domain/entity"
	domainerrors "redcolabora/internal/domain/errors"
	"redcolabora/internal/domain/repository"
	"redcolabora/internal/usecase"
	"redcolabora/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// businessProfileRules holds the trimmed editor values checked before any store call.
type businessProfileRules struct {
	Name        string `form:"name" validate:"required,max=120"`
	Description string `form:"description" validate:"max=2000"`
	Comuna      string `form:"comuna" validate:"max=120"`
	Category    string `form:"category" validate:"max=120"`
	Phone       string `form:"phone" validate:"max=32"`
	Email       string `form:"email" validate:"omitempty,email,max=254"`
	Website     string `form:"website" validate:"omitempty,url,max=2048"`
}

// businessService implements the BusinessUsecase interface.
type businessService struct {
	txManager repository.TransactionManager
	validate  *validator.Validate
	logger    *slog.Logger
	now       func() time.Time
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.BusinessUsecase {
	return &businessService{
		txManager: txManager,
		validate:  validation.New(),
		logger:    logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search lists businesses matching the trimmed filter, newest first.
// Any store failure is reported as a single backend error; no matches is an empty slice.
func (srv *businessService) Search(ctx context.Context, identity *entity.Identity, filter entity.BusinessFilter) ([]*entity.Business, error) {
	filter = entity.BusinessFilter{
		Comuna:   strings.TrimSpace(filter.Comuna),
		Category: strings.TrimSpace(filter.Category),
	}

	var businesses []*entity.Business
	err := srv.txManager.ExecuteReadOnly(ctx, identity, func(repoFactory repository.RepositoryFactory) error {
		var err error
		businesses, err = repoFactory.BusinessRepo().Search(ctx, filter)

		return errors.Wrap(err, "failed to search businesses")
	})

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, errors.WithStack(err)
		}
		srv.log(ctx).Error("Business search failed",
			slog.Any("error", err),
			slog.String("comuna", filter.Comuna),
			slog.String("category", filter.Category),
		)

		return nil, errors.Wrap(domainerrors.ErrBackend.WithDetails(err.Error()), "failed to search businesses")
	}

	if businesses == nil {
		businesses = []*entity.Business{}
	}
	srv.log(ctx).Debug("Business search finished", slog.Int("count", len(businesses)))

	return businesses, nil
}

// GetDetail loads the business page. It reads from the primary so a page
// fetched right after a mutation reflects it.
func (srv *businessService) GetDetail(ctx context.Context, identity *entity.Identity, businessID uuid.UUID) (*usecase.BusinessDetail, error) {
	detail := &usecase.BusinessDetail{}

	err := srv.txManager.Execute(ctx, identity, func(repoFactory repository.RepositoryFactory) error {
		business, err := repoFactory.BusinessRepo().FindByID(ctx, businessID)
		if err != nil {
			return errors.Wrap(err, "failed to find business")
		}

		reviews, err := repoFactory.ReviewRepo().FindByBusiness(ctx, businessID)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}

		recommendationRepo := repoFactory.RecommendationRepo()
		count, err := recommendationRepo.CountByBusiness(ctx, businessID)
		if err != nil {
			return errors.Wrap(err, "failed to count recommendations")
		}

		recommended := false
		if identity != nil {
			if recommended, err = recommendationRepo.Exists(ctx, businessID, identity.ID); err != nil {
				return errors.Wrap(err, "failed to check recommendation")
			}
		}

		detail.Business = business
		detail.Reviews = reviews
		detail.Rating = entity.SummarizeRatings(reviews)
		detail.Recommendation = entity.RecommendationState{Recommended: recommended, Count: count}
		detail.CanEdit = business.CanBeEditedBy(identity)

		return nil
	})

	if err != nil {
		if !errors.Is(err, repository.ErrBusinessNotFound) {
			srv.log(ctx).Error("Failed to load business detail", slog.Any("error", err), slog.Any("business_id", businessID))
		}

		return nil, storeError(err, "failed to load business detail")
	}

	return detail, nil
}

// UpdateProfile writes the editor form. Only the owner may edit; blank optional
// fields are stored as NULL.
func (srv *businessService) UpdateProfile(ctx context.Context, identity *entity.Identity, input usecase.BusinessProfileInput) (*entity.Business, error) {
	if identity == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	rules := businessProfileRules{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Comuna:      strings.TrimSpace(input.Comuna),
		Category:    strings.TrimSpace(input.Category),
		Phone:       strings.TrimSpace(input.Phone),
		Email:       strings.TrimSpace(input.Email),
		Website:     strings.TrimSpace(input.Website),
	}
	if err := srv.validate.Struct(rules); err != nil {
		return nil, validation.ToError(err)
	}

	profile := &entity.BusinessProfile{
		Name:        rules.Name,
		Description: optionalString(rules.Description),
		Comuna:      optionalString(rules.Comuna),
		Category:    optionalString(rules.Category),
		Phone:       optionalString(rules.Phone),
		Email:       optionalString(rules.Email),
		Website:     optionalString(rules.Website),
	}

	var updated *entity.Business
	err := srv.txManager.Execute(ctx, identity, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.BusinessRepo()

		business, err := businessRepo.FindByID(ctx, input.BusinessID)
		if err != nil {
			return errors.Wrap(err, "failed to find business")
		}

		if !business.CanBeEditedBy(identity) {
			return errors.Wrap(domainerrors.ErrForbidden, "business belongs to another owner")
		}

		updatedAt := srv.now().UTC()
		if err := businessRepo.UpdateProfile(ctx, business.ID, profile, updatedAt); err != nil {
			return errors.Wrap(err, "failed to update business profile")
		}

		business.Name = profile.Name
		business.Description = profile.Description
		business.Comuna = profile.Comuna
		business.Category = profile.Category
		business.Phone = profile.Phone
		business.Email = profile.Email
		business.Website = profile.Website
		business.UpdatedAt = updatedAt
		updated = business

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Business profile update failed",
			slog.Any("error", err),
			slog.Any("business_id", input.BusinessID),
			slog.Any("user_id", identity.ID),
		)

		return nil, storeError(err, "failed to update business profile")
	}
	srv.log(ctx).Info("Business profile updated", slog.Any("business_id", updated.ID))

	return updated, nil
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

package impl

import (
	"context"
	"log/slog"

	deliverycontext "redcolabora/internal/delivery/context"
	"redcolabora/internal/domain/entity"
	domainerrors "redcolabora/internal/domain/errors"
	"redcolabora/internal/domain/repository"
	"redcolabora/internal/domain/service"
	"redcolabora/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// recommendationService implements the RecommendationUsecase interface.
type recommendationService struct {
	txManager repository.TransactionManager
	guard     service.ToggleGuard
	logger    *slog.Logger
}

// NewRecommendationService is the constructor for recommendationService.
func NewRecommendationService(
	txManager repository.TransactionManager,
	guard service.ToggleGuard,
	logger *slog.Logger,
) usecase.RecommendationUsecase {
	return &recommendationService{
		txManager: txManager,
		guard:     guard,
		logger:    logger,
	}
}

func (srv *recommendationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Toggle flips the recommendation of identity for the business. Only one toggle per
// pair runs at a time; a concurrent one fails with ErrToggleInProgress.
func (srv *recommendationService) Toggle(ctx context.Context, identity *entity.Identity, businessID uuid.UUID, currentlyRecommended bool) (*entity.RecommendationState, error) {
	if identity == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	release, err := srv.guard.Acquire(ctx, toggleKey(businessID, identity.ID))
	if err != nil {
		if errors.Is(err, service.ErrGuardBusy) {
			return nil, errors.WithStack(domainerrors.ErrToggleInProgress)
		}

		return nil, errors.Wrap(domainerrors.ErrBackend.WithDetails(err.Error()), "failed to acquire toggle guard")
	}
	defer release()

	state := &entity.RecommendationState{}
	err = srv.txManager.Execute(ctx, identity, func(repoFactory repository.RepositoryFactory) error {
		recommendationRepo := repoFactory.RecommendationRepo()

		if currentlyRecommended {
			removed, err := recommendationRepo.Delete(ctx, businessID, identity.ID)
			if err != nil {
				return errors.Wrap(err, "failed to delete recommendation")
			}
			if removed == 0 {
				srv.log(ctx).Debug("Recommendation was already removed", slog.Any("business_id", businessID))
			}
		} else {
			err := recommendationRepo.Create(ctx, businessID, identity.ID)
			switch {
			case errors.Is(err, repository.ErrDuplicateRecommendation):
				srv.log(ctx).Debug("Recommendation already present", slog.Any("business_id", businessID))
			case err != nil:
				return errors.Wrap(err, "failed to create recommendation")
			}
		}

		count, err := recommendationRepo.CountByBusiness(ctx, businessID)
		if err != nil {
			return errors.Wrap(err, "failed to count recommendations")
		}

		state.Recommended = !currentlyRecommended
		state.Count = count

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to toggle recommendation",
			slog.Any("error", err),
			slog.Any("business_id", businessID),
			slog.Any("user_id", identity.ID),
		)

		return nil, storeError(err, "failed to toggle recommendation")
	}

	return state, nil
}

func toggleKey(businessID, userID uuid.UUID) string {
	return "recommendation:" + businessID.String() + ":" + userID.String()
}

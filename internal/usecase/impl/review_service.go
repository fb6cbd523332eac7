package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "redcolabora/internal/delivery/context"
	"redcolabora/internal/domain/entity"
	domainerrors "redcolabora/internal/domain/errors"
	"redcolabora/internal/domain/repository"
	"redcolabora/internal/usecase"

	"github.com/pkg/errors"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit validates the form and inserts the review with its trimmed comment.
func (srv *reviewService) Submit(ctx context.Context, identity *entity.Identity, input usecase.ReviewInput) (*entity.Review, error) {
	if identity == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	comment := strings.TrimSpace(input.Comment)
	if err := validateReview(input.Rating, comment); err != nil {
		return nil, err
	}

	review := &entity.Review{
		BusinessID: input.BusinessID,
		UserID:     identity.ID,
		Rating:     input.Rating,
		Comment:    comment,
	}

	err := srv.txManager.Execute(ctx, identity, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.ReviewRepo().Create(ctx, review), "failed to create review")
	})

	if err != nil {
		srv.log(ctx).Error("Failed to submit review",
			slog.Any("error", err),
			slog.Any("business_id", input.BusinessID),
			slog.Any("user_id", identity.ID),
		)

		return nil, storeError(err, "failed to submit review")
	}
	srv.log(ctx).Info("Review submitted", slog.Any("review_id", review.ID), slog.Any("business_id", review.BusinessID))

	return review, nil
}

func validateReview(rating int, trimmedComment string) error {
	if rating == 0 {
		return domainerrors.NewValidationError("rating", domainerrors.MsgRatingRequired)
	}
	if rating < entity.MinRating || rating > entity.MaxRating {
		return domainerrors.NewValidationError("rating", domainerrors.MsgRatingOutOfRange)
	}
	if utf8.RuneCountInString(trimmedComment) < entity.MinCommentLength {
		return domainerrors.NewValidationError("comment", domainerrors.MsgCommentTooShort)
	}

	return nil
}

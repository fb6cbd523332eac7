package impl

import (
	"context"
	"strings"
	"testing"

	"redcolabora/internal/domain/entity"
	domainerrors "redcolabora/internal/domain/errors"
	"redcolabora/internal/domain/repository"
	mockRepo "redcolabora/internal/mocks/repository"
	"redcolabora/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewService_Submit_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	service := NewReviewService(txManager, newDiscardLogger())

	ctx := context.Background()
	identity := newTestIdentity()
	businessID := uuid.New()
	reviewID := uuid.New()

	runInTx(txManager, factory)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)
	reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		RunAndReturn(func(_ context.Context, review *entity.Review) error {
			review.ID = reviewID

			return nil
		})

	review, err := service.Submit(ctx, identity, usecase.ReviewInput{
		BusinessID: businessID,
		Rating:     4,
		Comment:    "   Muy buena atención   ",
	})

	require.NoError(t, err)
	assert.Equal(t, reviewID, review.ID)
	assert.Equal(t, "Muy buena atención", review.Comment)
	assert.Equal(t, identity.ID, review.UserID)
	assert.Equal(t, businessID, review.BusinessID)
	assert.Equal(t, 4, review.Rating)
}

func TestReviewService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name    string
		rating  int
		comment string
		field   string
		message string
	}{
		{"no rating selected", 0, "Comentario suficientemente largo", "rating", domainerrors.MsgRatingRequired},
		{"rating above range", 6, "Comentario suficientemente largo", "rating", domainerrors.MsgRatingOutOfRange},
		{"negative rating", -1, "Comentario suficientemente largo", "rating", domainerrors.MsgRatingOutOfRange},
		{"short comment", 5, "corto", "comment", domainerrors.MsgCommentTooShort},
		{"padding does not count", 5, "   nueve ch   ", "comment", domainerrors.MsgCommentTooShort},
		{"multibyte counted as characters", 3, strings.Repeat("ñ", 9), "comment", domainerrors.MsgCommentTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txManager := mockRepo.NewMockTransactionManager(t)
			service := NewReviewService(txManager, newDiscardLogger())

			_, err := service.Submit(context.Background(), newTestIdentity(), usecase.ReviewInput{
				BusinessID: uuid.New(),
				Rating:     tt.rating,
				Comment:    tt.comment,
			})

			var validationErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
			assert.Equal(t, tt.message, validationErr.Message())
		})
	}
}

func TestReviewService_Submit_TenMultibyteCharactersAccepted(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	service := NewReviewService(txManager, newDiscardLogger())

	runInTx(txManager, factory)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)
	reviewRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	_, err := service.Submit(context.Background(), newTestIdentity(), usecase.ReviewInput{
		BusinessID: uuid.New(),
		Rating:     1,
		Comment:    strings.Repeat("ñ", 10),
	})

	require.NoError(t, err)
}

func TestReviewService_Submit_Unauthenticated(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewReviewService(txManager, newDiscardLogger())

	_, err := service.Submit(context.Background(), nil, usecase.ReviewInput{
		BusinessID: uuid.New(),
		Rating:     5,
		Comment:    "Comentario suficientemente largo",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestReviewService_Submit_UnknownBusiness(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	service := NewReviewService(txManager, newDiscardLogger())

	runInTx(txManager, factory)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)
	reviewRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrBusinessNotFound)

	_, err := service.Submit(context.Background(), newTestIdentity(), usecase.ReviewInput{
		BusinessID: uuid.New(),
		Rating:     5,
		Comment:    "Comentario suficientemente largo",
	})

	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

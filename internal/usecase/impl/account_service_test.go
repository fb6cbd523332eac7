package impl

import (
	"context"
	"testing"
	"time"

	"redcolabora/config"
	"redcolabora/internal/domain/entity"
	domainerrors "redcolabora/internal/domain/errors"
	"redcolabora/internal/domain/repository"
	mockRepo "redcolabora/internal/mocks/repository"
	mockService "redcolabora/internal/mocks/service"
	"redcolabora/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validSignUpInput() usecase.SignUpInput {
	return usecase.SignUpInput{
		Email:           " vecina@example.com ",
		Password:        "secreto1",
		ConfirmPassword: "secreto1",
		Type:            entity.AccountTypeConsumer,
		Comuna:          "  La Florida ",
		Consent:         true,
	}
}

func TestAccountService_SignUp_Success(t *testing.T) {
	provider := mockService.NewMockIdentityProvider(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewAccountService(provider, txManager, newTestConfig(), newDiscardLogger())

	ctx := context.Background()
	expectedMetadata := entity.SignUpMetadata{
		Type:        entity.AccountTypeConsumer,
		Comuna:      "La Florida",
		ConsentRGPD: true,
	}

	provider.EXPECT().
		SignUp(ctx, "vecina@example.com", "secreto1", expectedMetadata, "https://redcolabora.cl/auth/callback").
		Return(newTestIdentity(), nil)

	require.NoError(t, svc.SignUp(ctx, validSignUpInput()))
}

func TestAccountService_SignUp_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*usecase.SignUpInput)
		field   string
		message string
	}{
		{"missing type", func(in *usecase.SignUpInput) { in.Type = "" }, "type", domainerrors.MsgAccountType},
		{"unknown type", func(in *usecase.SignUpInput) { in.Type = "admin" }, "type", domainerrors.MsgAccountType},
		{"blank comuna", func(in *usecase.SignUpInput) { in.Comuna = "   " }, "comuna", domainerrors.MsgComunaRequired},
		{"no consent", func(in *usecase.SignUpInput) { in.Consent = false }, "consent", domainerrors.MsgConsentRequired},
		{"passwords differ", func(in *usecase.SignUpInput) { in.ConfirmPassword = "otro1234" }, "confirm_password", domainerrors.MsgPasswordsMismatch},
		{"short password", func(in *usecase.SignUpInput) { in.Password, in.ConfirmPassword = "abc12", "abc12" }, "password", domainerrors.MsgPasswordTooShort},
		{"blank email", func(in *usecase.SignUpInput) { in.Email = " " }, "email", domainerrors.MsgEmailRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := mockService.NewMockIdentityProvider(t)
			svc := NewAccountService(provider, mockRepo.NewMockTransactionManager(t), newTestConfig(), newDiscardLogger())

			input := validSignUpInput()
			tt.mutate(&input)

			err := svc.SignUp(context.Background(), input)

			var validationErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
			assert.Equal(t, tt.message, validationErr.Message())
		})
	}
}

func TestAccountService_SignUp_AlreadyRegistered(t *testing.T) {
	provider := mockService.NewMockIdentityProvider(t)
	svc := NewAccountService(provider, mockRepo.NewMockTransactionManager(t), newTestConfig(), newDiscardLogger())

	provider.EXPECT().
		SignUp(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrAlreadyRegistered)

	err := svc.SignUp(context.Background(), validSignUpInput())

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyRegistered)
}

func TestAccountService_RedirectFallsBackToPublicURL(t *testing.T) {
	provider := mockService.NewMockIdentityProvider(t)
	cfg := &config.Config{QRCode: &config.QRCodeConfig{BaseURL: "https://redcolabora.cl/"}}
	svc := NewAccountService(provider, mockRepo.NewMockTransactionManager(t), cfg, newDiscardLogger())

	provider.EXPECT().
		SignUp(mock.Anything, mock.Anything, mock.Anything, mock.Anything, "https://redcolabora.cl/dashboard").
		Return(newTestIdentity(), nil)
	provider.EXPECT().
		ResendConfirmation(mock.Anything, "vecina@example.com", "https://redcolabora.cl/search").
		Return(nil)

	require.NoError(t, svc.SignUp(context.Background(), validSignUpInput()))
	require.NoError(t, svc.ResendConfirmation(context.Background(), "vecina@example.com"))
}

func TestAccountService_SignIn(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		provider := mockService.NewMockIdentityProvider(t)
		svc := NewAccountService(provider, mockRepo.NewMockTransactionManager(t), newTestConfig(), newDiscardLogger())

		session := &entity.Session{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresAt:    time.Now().Add(time.Hour),
			Identity:     newTestIdentity(),
		}
		provider.EXPECT().SignIn(mock.Anything, "vecina@example.com", "secreto1").Return(session, nil)

		got, err := svc.SignIn(context.Background(), usecase.SignInInput{Email: " vecina@example.com", Password: "secreto1"})

		require.NoError(t, err)
		assert.Equal(t, session, got)
	})

	t.Run("email not confirmed", func(t *testing.T) {
		provider := mockService.NewMockIdentityProvider(t)
		svc := NewAccountService(provider, mockRepo.NewMockTransactionManager(t), newTestConfig(), newDiscardLogger())

		provider.EXPECT().SignIn(mock.Anything, mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmailNotConfirmed)

		_, err := svc.SignIn(context.Background(), usecase.SignInInput{Email: "vecina@example.com", Password: "secreto1"})

		assert.ErrorIs(t, err, domainerrors.ErrEmailNotConfirmed)
	})

	t.Run("missing password", func(t *testing.T) {
		provider := mockService.NewMockIdentityProvider(t)
		svc := NewAccountService(provider, mockRepo.NewMockTransactionManager(t), newTestConfig(), newDiscardLogger())

		_, err := svc.SignIn(context.Background(), usecase.SignInInput{Email: "vecina@example.com"})

		var validationErr *domainerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "password", validationErr.Field)
	})
}

func TestAccountService_SignOut(t *testing.T) {
	provider := mockService.NewMockIdentityProvider(t)
	svc := NewAccountService(provider, mockRepo.NewMockTransactionManager(t), newTestConfig(), newDiscardLogger())

	require.NoError(t, svc.SignOut(context.Background(), ""))

	provider.EXPECT().SignOut(mock.Anything, "stale").Return(domainerrors.ErrUnauthenticated).Once()
	require.NoError(t, svc.SignOut(context.Background(), "stale"))

	provider.EXPECT().SignOut(mock.Anything, "live").Return(domainerrors.ErrBackend).Once()
	assert.ErrorIs(t, svc.SignOut(context.Background(), "live"), domainerrors.ErrBackend)
}

func TestAccountService_GetProfile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		factory := mockRepo.NewMockRepositoryFactory(t)
		profileRepo := mockRepo.NewMockProfileRepository(t)
		svc := NewAccountService(mockService.NewMockIdentityProvider(t), txManager, newTestConfig(), newDiscardLogger())

		identity := newTestIdentity()
		profile := &entity.Profile{ID: identity.ID, Email: identity.Email, Type: entity.AccountTypePyme, Comuna: "Maipú"}

		runInReadOnlyTx(txManager, factory)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByID(mock.Anything, identity.ID).Return(profile, nil)

		got, err := svc.GetProfile(context.Background(), identity)

		require.NoError(t, err)
		assert.Equal(t, profile, got)
	})

	t.Run("missing row", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		factory := mockRepo.NewMockRepositoryFactory(t)
		profileRepo := mockRepo.NewMockProfileRepository(t)
		svc := NewAccountService(mockService.NewMockIdentityProvider(t), txManager, newTestConfig(), newDiscardLogger())

		runInReadOnlyTx(txManager, factory)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, repository.ErrProfileNotFound)

		_, err := svc.GetProfile(context.Background(), newTestIdentity())

		assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	})

	t.Run("anonymous", func(t *testing.T) {
		svc := NewAccountService(mockService.NewMockIdentityProvider(t), mockRepo.NewMockTransactionManager(t), newTestConfig(), newDiscardLogger())

		_, err := svc.GetProfile(context.Background(), nil)

		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})
}

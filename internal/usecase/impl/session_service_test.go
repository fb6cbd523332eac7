package impl

import (
	"context"
	"testing"
	"time"

	"redcolabora/internal/domain/entity"
	domainerrors "redcolabora/internal/domain/errors"
	"redcolabora/internal/domain/service"
	mockService "redcolabora/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Resolve_NoCookies(t *testing.T) {
	svc := NewSessionService(mockService.NewMockIdentityProvider(t), mockService.NewMockTokenVerifier(t), newDiscardLogger())

	resolution, err := svc.Resolve(context.Background(), "", "")

	require.NoError(t, err)
	assert.Nil(t, resolution.Identity)
	assert.False(t, resolution.Clear)
	assert.Nil(t, resolution.Refreshed)
}

func TestSessionService_Resolve_ValidAccessToken(t *testing.T) {
	provider := mockService.NewMockIdentityProvider(t)
	verifier := mockService.NewMockTokenVerifier(t)
	svc := NewSessionService(provider, verifier, newDiscardLogger())

	identity := newTestIdentity()
	verifier.EXPECT().Verify("access").Return(identity, nil)

	resolution, err := svc.Resolve(context.Background(), "access", "refresh")

	require.NoError(t, err)
	assert.Equal(t, identity, resolution.Identity)
	assert.Nil(t, resolution.Refreshed)
}

func TestSessionService_Resolve_ExpiredAccessTokenIsRefreshed(t *testing.T) {
	provider := mockService.NewMockIdentityProvider(t)
	verifier := mockService.NewMockTokenVerifier(t)
	svc := NewSessionService(provider, verifier, newDiscardLogger())

	session := &entity.Session{
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
		ExpiresAt:    time.Now().Add(time.Hour),
		Identity:     newTestIdentity(),
	}
	verifier.EXPECT().Verify("old-access").Return(nil, service.ErrTokenExpired)
	provider.EXPECT().Refresh(mock.Anything, "refresh").Return(session, nil)

	resolution, err := svc.Resolve(context.Background(), "old-access", "refresh")

	require.NoError(t, err)
	assert.Equal(t, session.Identity, resolution.Identity)
	assert.Equal(t, session, resolution.Refreshed)
}

func TestSessionService_Resolve_OnlyRefreshToken(t *testing.T) {
	provider := mockService.NewMockIdentityProvider(t)
	svc := NewSessionService(provider, mockService.NewMockTokenVerifier(t), newDiscardLogger())

	session := &entity.Session{AccessToken: "a", RefreshToken: "r", Identity: newTestIdentity()}
	provider.EXPECT().Refresh(mock.Anything, "refresh").Return(session, nil)

	resolution, err := svc.Resolve(context.Background(), "", "refresh")

	require.NoError(t, err)
	assert.Equal(t, session, resolution.Refreshed)
}

func TestSessionService_Resolve_InvalidTokenClearsCookies(t *testing.T) {
	verifier := mockService.NewMockTokenVerifier(t)
	svc := NewSessionService(mockService.NewMockIdentityProvider(t), verifier, newDiscardLogger())

	verifier.EXPECT().Verify("forged").Return(nil, service.ErrTokenInvalid)

	resolution, err := svc.Resolve(context.Background(), "forged", "refresh")

	require.NoError(t, err)
	assert.Nil(t, resolution.Identity)
	assert.True(t, resolution.Clear)
}

func TestSessionService_Resolve_RejectedRefreshClearsCookies(t *testing.T) {
	provider := mockService.NewMockIdentityProvider(t)
	verifier := mockService.NewMockTokenVerifier(t)
	svc := NewSessionService(provider, verifier, newDiscardLogger())

	verifier.EXPECT().Verify("old").Return(nil, service.ErrTokenExpired)
	provider.EXPECT().Refresh(mock.Anything, "revoked").Return(nil, domainerrors.ErrInvalidCredentials)

	resolution, err := svc.Resolve(context.Background(), "old", "revoked")

	require.NoError(t, err)
	assert.Nil(t, resolution.Identity)
	assert.True(t, resolution.Clear)
}

func TestSessionService_Resolve_WithoutVerifierAsksAuthService(t *testing.T) {
	provider := mockService.NewMockIdentityProvider(t)
	svc := NewSessionService(provider, nil, newDiscardLogger())

	identity := newTestIdentity()
	provider.EXPECT().GetUser(mock.Anything, "access").Return(identity, nil)

	resolution, err := svc.Resolve(context.Background(), "access", "")

	require.NoError(t, err)
	assert.Equal(t, identity, resolution.Identity)
}

func TestSessionService_Resolve_AuthServiceDownIsAnonymous(t *testing.T) {
	provider := mockService.NewMockIdentityProvider(t)
	svc := NewSessionService(provider, nil, newDiscardLogger())

	provider.EXPECT().GetUser(mock.Anything, "access").Return(nil, domainerrors.ErrBackend)

	resolution, err := svc.Resolve(context.Background(), "access", "refresh")

	require.NoError(t, err)
	assert.Nil(t, resolution.Identity)
	assert.False(t, resolution.Clear)
}

package supabase

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"redcolabora/config"
	"redcolabora/internal/domain/entity"
	domainerrors "redcolabora/internal/domain/errors"
	"redcolabora/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAnonKey = "anon-test-key"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *AuthClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return newAuthClient(&config.SupabaseConfig{
		URL:               server.URL,
		AnonKey:           testAnonKey,
		RequestsPerSecond: 1000,
		Burst:             100,
	}, server.Client(), newDiscardLogger())
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestAuthClient_SignIn(t *testing.T) {
	userID := uuid.New()
	expiresAt := time.Now().Add(time.Hour).Unix()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, testAnonKey, r.Header.Get("apikey"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "pyme@example.cl", body["email"])
		assert.Equal(t, "secreto123", body["password"])

		writeJSON(t, w, http.StatusOK, map[string]any{
			"access_token":  "access-1",
			"refresh_token": "refresh-1",
			"expires_in":    3600,
			"expires_at":    expiresAt,
			"user":          map[string]any{"id": userID.String(), "email": "pyme@example.cl"},
		})
	})

	session, err := client.SignIn(context.Background(), "pyme@example.cl", "secreto123")
	require.NoError(t, err)
	assert.Equal(t, "access-1", session.AccessToken)
	assert.Equal(t, "refresh-1", session.RefreshToken)
	assert.Equal(t, expiresAt, session.ExpiresAt.Unix())
	assert.Equal(t, userID, session.Identity.ID)
}

func TestAuthClient_SignIn_EmailNotConfirmed(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"error code", map[string]any{"code": 400, "error_code": "email_not_confirmed", "msg": "Email not confirmed"}},
		{"legacy shape", map[string]any{"error": "invalid_grant", "error_description": "Email not confirmed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, http.StatusBadRequest, tt.body)
			})

			_, err := client.SignIn(context.Background(), "nuevo@example.cl", "secreto123")
			assert.True(t, errors.Is(err, domainerrors.ErrEmailNotConfirmed))
		})
	}
}

func TestAuthClient_SignIn_InvalidCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]any{
			"code": 400, "error_code": "invalid_credentials", "msg": "Invalid login credentials",
		})
	})

	_, err := client.SignIn(context.Background(), "a@example.cl", "mala")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthClient_SignUp_SendsMetadataAndRedirect(t *testing.T) {
	userID := uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)
		assert.Equal(t, "https://redcolabora.cl/login", r.URL.Query().Get("redirect_to"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"type": "pyme", "comuna": "Valparaíso", "consent_rgpd": true}, body["data"])

		writeJSON(t, w, http.StatusOK, map[string]any{"id": userID.String(), "email": "pyme@example.cl"})
	})

	identity, err := client.SignUp(context.Background(), "pyme@example.cl", "secreto123", entity.SignUpMetadata{
		Type:        entity.AccountTypePyme,
		Comuna:      "Valparaíso",
		ConsentRGPD: true,
	}, "https://redcolabora.cl/login")
	require.NoError(t, err)
	assert.Equal(t, userID, identity.ID)
}

func TestAuthClient_SignUp_AutoConfirmedSession(t *testing.T) {
	userID := uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"access_token": "access",
			"user":         map[string]any{"id": userID.String(), "email": "c@example.cl"},
		})
	})

	identity, err := client.SignUp(context.Background(), "c@example.cl", "secreto123", entity.SignUpMetadata{Type: entity.AccountTypeConsumer}, "")
	require.NoError(t, err)
	assert.Equal(t, userID, identity.ID)
}

func TestAuthClient_SignUp_AlreadyRegistered(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnprocessableEntity, map[string]any{
			"code": 422, "error_code": "user_already_exists", "msg": "User already registered",
		})
	})

	_, err := client.SignUp(context.Background(), "dup@example.cl", "secreto123", entity.SignUpMetadata{}, "")
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyRegistered))
}

func TestAuthClient_GetUser_SendsBearer(t *testing.T) {
	userID := uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "Bearer token-xyz", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, map[string]any{"id": userID.String(), "email": "u@example.cl"})
	})

	identity, err := client.GetUser(context.Background(), "token-xyz")
	require.NoError(t, err)
	assert.Equal(t, "u@example.cl", identity.Email)
}

func TestAuthClient_GetUser_ExpiredToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]any{"code": 401, "error_code": "bad_jwt", "msg": "token is expired"})
	})

	_, err := client.GetUser(context.Background(), "stale")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthClient_Refresh(t *testing.T) {
	userID := uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "refresh_token", r.URL.Query().Get("grant_type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "refresh-old", body["refresh_token"])

		writeJSON(t, w, http.StatusOK, map[string]any{
			"access_token":  "access-new",
			"refresh_token": "refresh-new",
			"expires_in":    60,
			"user":          map[string]any{"id": userID.String()},
		})
	})

	before := time.Now()
	session, err := client.Refresh(context.Background(), "refresh-old")
	require.NoError(t, err)
	assert.Equal(t, "refresh-new", session.RefreshToken)
	assert.WithinDuration(t, before.Add(time.Minute), session.ExpiresAt, 5*time.Second)
}

func TestAuthClient_SignOutAndResend(t *testing.T) {
	var paths []string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/auth/v1/resend" {
			var body resendRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "signup", body.Type)
			assert.Equal(t, "nuevo@example.cl", body.Email)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.SignOut(context.Background(), "access"))
	require.NoError(t, client.ResendConfirmation(context.Background(), "nuevo@example.cl", ""))
	assert.Equal(t, []string{"/auth/v1/logout", "/auth/v1/resend"}, paths)
}

func TestAuthClient_UnreachableIsBackendError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := newAuthClient(&config.SupabaseConfig{URL: server.URL}, &http.Client{Timeout: time.Second}, newDiscardLogger())

	_, err := client.SignIn(context.Background(), "a@example.cl", "secreto123")
	assert.True(t, errors.Is(err, domainerrors.ErrBackend))
}

func TestAuthClient_ServerErrorIsBackendError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream exploded"))
	})

	_, err := client.GetUser(context.Background(), "token")
	require.True(t, errors.Is(err, domainerrors.ErrBackend))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "upstream exploded", appErr.Details())
}

func TestAuthClient_CanceledContextIsBackendError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the auth service")
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetUser(ctx, "token")
	assert.True(t, errors.Is(err, domainerrors.ErrBackend))
}

func TestRequestTransport_BindsContextAndRedirect(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "request")

	var seen *http.Request
	transport := &requestTransport{
		ctx: ctx,
		base: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			seen = r

			return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
		}),
		redirectTo: "https://redcolabora.cl/dashboard",
	}

	req, err := http.NewRequest(http.MethodPost, "https://abc.supabase.co/auth/v1/signup?foo=bar", nil)
	require.NoError(t, err)

	_, err = transport.RoundTrip(req)
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, "request", seen.Context().Value(ctxKey{}))
	assert.Equal(t, "https://redcolabora.cl/dashboard", seen.URL.Query().Get("redirect_to"))
	assert.Equal(t, "bar", seen.URL.Query().Get("foo"))
	assert.Empty(t, req.URL.Query().Get("redirect_to"))
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestParseClientError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantOK     bool
		wantStatus int
		wantCode   string
	}{
		{
			name:       "status with body",
			err:        errors.New(`response status code 400: {"error_code":"email_not_confirmed","msg":"Email not confirmed"}`),
			wantOK:     true,
			wantStatus: http.StatusBadRequest,
			wantCode:   "email_not_confirmed",
		},
		{
			name:       "status without body",
			err:        errors.New("response status code 401"),
			wantOK:     true,
			wantStatus: http.StatusUnauthorized,
		},
		{name: "transport failure", err: errors.New(`Post "http://x/token": connection refused`)},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr, ok := parseClientError(tt.err)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantStatus, apiErr.Status)
			assert.Equal(t, tt.wantCode, apiErr.code())
		})
	}
}

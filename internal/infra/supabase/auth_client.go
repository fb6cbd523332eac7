// Package supabase adapts the project's managed auth service to service.IdentityProvider.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"redcolabora/config"
	deliverycontext "redcolabora/internal/delivery/context"
	"redcolabora/internal/domain/entity"
	domainerrors "redcolabora/internal/domain/errors"
	"redcolabora/internal/domain/service"
	"redcolabora/internal/errors"

	"github.com/google/uuid"
	gotrue "github.com/supabase-community/auth-go"
	"github.com/supabase-community/auth-go/types"
	"golang.org/x/time/rate"
)

const (
	authPath = "/auth/v1"

	defaultRequestsPerSecond = 10
	defaultBurst             = 5
)

// AuthClient implements service.IdentityProvider on top of auth-go.
type AuthClient struct {
	api         gotrue.Client
	baseURL     string
	anonKey     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      *slog.Logger
}

// NewAuthClient builds the client from the supabase section of the config.
func NewAuthClient(cfg *config.Config, logger *slog.Logger) (service.IdentityProvider, error) {
	if cfg.Supabase == nil || cfg.Supabase.URL == "" {
		return nil, errors.New("supabase url must be provided")
	}

	return newAuthClient(cfg.Supabase, &http.Client{
		Timeout: cfg.Supabase.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}, logger), nil
}

func newAuthClient(cfg *config.SupabaseConfig, httpClient *http.Client, logger *slog.Logger) *AuthClient {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultBurst
	}

	baseURL := strings.TrimRight(cfg.URL, "/") + authPath

	return &AuthClient{
		api:         gotrue.New("", cfg.AnonKey).WithCustomAuthURL(baseURL),
		baseURL:     baseURL,
		anonKey:     cfg.AnonKey,
		httpClient:  httpClient,
		rateLimiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:      logger,
	}
}

func (c *AuthClient) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// client returns an auth-go client whose requests carry ctx and, when set,
// the confirmation redirect.
func (c *AuthClient) client(ctx context.Context, redirectTo string) gotrue.Client {
	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	return c.api.WithClient(http.Client{
		Timeout: c.httpClient.Timeout,
		Transport: &requestTransport{
			ctx:        ctx,
			base:       base,
			redirectTo: redirectTo,
		},
	})
}

// requestTransport binds auth-go's context-free calls to the caller's request.
type requestTransport struct {
	ctx        context.Context
	base       http.RoundTripper
	redirectTo string
}

func (t *requestTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(t.ctx)
	if t.redirectTo != "" {
		query := out.URL.Query()
		query.Set("redirect_to", t.redirectTo)
		out.URL.RawQuery = query.Encode()
	}

	return t.base.RoundTrip(out)
}

// SignIn exchanges email and password for a session.
func (c *AuthClient) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.client(ctx, "").SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, c.fail(ctx, "/token", err)
	}

	return toSession(&resp.Session, time.Now())
}

// SignUp registers a new identity with the profile metadata the store copies into users.
func (c *AuthClient) SignUp(ctx context.Context, email, password string, metadata entity.SignUpMetadata, redirectTo string) (*entity.Identity, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.client(ctx, redirectTo).Signup(types.SignupRequest{
		Email:    email,
		Password: password,
		Data: map[string]interface{}{
			"type":         string(metadata.Type),
			"comuna":       metadata.Comuna,
			"consent_rgpd": metadata.ConsentRGPD,
		},
	})
	if err != nil {
		return nil, c.fail(ctx, "/signup", err)
	}

	// A pending confirmation returns the bare user, an auto-confirmed project a session.
	user := resp.User
	if resp.Session.User.ID != uuid.Nil {
		user = resp.Session.User
	}

	return toIdentity(&user)
}

// SignOut revokes the session behind the access token.
func (c *AuthClient) SignOut(ctx context.Context, accessToken string) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	if err := c.client(ctx, "").WithToken(accessToken).Logout(); err != nil {
		return c.fail(ctx, "/logout", err)
	}

	return nil
}

type resendRequest struct {
	Type  string `json:"type"`
	Email string `json:"email"`
}

// ResendConfirmation asks the auth service to send the sign-up email again.
// auth-go has no binding for /resend, so this one call is made directly.
func (c *AuthClient) ResendConfirmation(ctx context.Context, email, redirectTo string) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	endpoint := c.baseURL + "/resend"
	if redirectTo != "" {
		endpoint += "?" + url.Values{"redirect_to": {redirectTo}}.Encode()
	}

	raw, err := json.Marshal(resendRequest{Type: "signup", Email: email})
	if err != nil {
		return errors.Wrap(err, "failed to encode resend request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(raw))
	if err != nil {
		return errors.Wrap(err, "failed to build resend request")
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail(ctx, "/resend", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return c.reject(ctx, "/resend", parseAPIError(resp.StatusCode, body))
	}

	return nil
}

// GetUser resolves the identity behind an access token.
func (c *AuthClient) GetUser(ctx context.Context, accessToken string) (*entity.Identity, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.client(ctx, "").WithToken(accessToken).GetUser()
	if err != nil {
		return nil, c.fail(ctx, "/user", err)
	}

	return toIdentity(&resp.User)
}

// Refresh exchanges a refresh token for a new session.
func (c *AuthClient) Refresh(ctx context.Context, refreshToken string) (*entity.Session, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.client(ctx, "").RefreshToken(refreshToken)
	if err != nil {
		return nil, c.fail(ctx, "/token", err)
	}

	return toSession(&resp.Session, time.Now())
}

func (c *AuthClient) wait(ctx context.Context) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return domainerrors.ErrBackend.WithDetails(err.Error())
	}

	return nil
}

// fail classifies an auth-go error. Rejections carry the service's status and
// body, anything else never got an answer.
func (c *AuthClient) fail(ctx context.Context, path string, err error) error {
	if apiErr, ok := parseClientError(err); ok {
		return c.reject(ctx, path, apiErr)
	}

	c.log(ctx).Warn("Auth service unreachable", slog.String("path", path), slog.Any("error", err))

	return domainerrors.ErrBackend.WithDetails(err.Error())
}

func (c *AuthClient) reject(ctx context.Context, path string, apiErr *apiError) error {
	c.log(ctx).Info("Auth service rejected request",
		slog.String("path", path),
		slog.Int("status", apiErr.Status),
		slog.String("error_code", apiErr.code()),
	)

	return classifyAPIError(apiErr)
}

func toIdentity(user *types.User) (*entity.Identity, error) {
	if user == nil || user.ID == uuid.Nil {
		return nil, domainerrors.ErrBackend.WithDetails("auth response without user")
	}

	return &entity.Identity{ID: user.ID, Email: user.Email}, nil
}

func toSession(session *types.Session, now time.Time) (*entity.Session, error) {
	if session.AccessToken == "" {
		return nil, domainerrors.ErrBackend.WithDetails("auth response without access token")
	}

	identity, err := toIdentity(&session.User)
	if err != nil {
		return nil, err
	}

	expiresAt := now.Add(time.Duration(session.ExpiresIn) * time.Second)
	if session.ExpiresAt > 0 {
		expiresAt = time.Unix(session.ExpiresAt, 0)
	}

	return &entity.Session{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresAt:    expiresAt,
		Identity:     identity,
	}, nil
}

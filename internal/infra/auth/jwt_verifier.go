// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"redcolabora/config"
	"redcolabora/internal/domain/entity"
	"redcolabora/internal/domain/service"
	"redcolabora/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const authenticatedAudience = "authenticated"

// accessClaims is the subset of the auth service's access token we rely on.
type accessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// jwtVerifier validates HS256 access tokens signed with the project's JWT secret.
type jwtVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier returns nil when no secret is configured, which makes the
// session layer fall back to asking the auth service.
func NewJWTVerifier(cfg *config.Config) service.TokenVerifier {
	if cfg.Supabase == nil || cfg.Supabase.JWTSecret == "" {
		return nil
	}

	return newJWTVerifier(cfg.Supabase.JWTSecret)
}

func newJWTVerifier(secret string) *jwtVerifier {
	return &jwtVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithAudience(authenticatedAudience),
			jwt.WithExpirationRequired(),
		),
	}
}

// Verify checks signature, audience and expiry and returns the identity in the token.
func (v *jwtVerifier) Verify(accessToken string) (*entity.Identity, error) {
	claims := &accessClaims{}

	_, err := v.parser.ParseWithClaims(accessToken, claims, func(_ *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}

		return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(service.ErrTokenInvalid, "subject is not a user id")
	}

	return &entity.Identity{ID: userID, Email: claims.Email}, nil
}

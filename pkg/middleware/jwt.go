package middleware

import (
	"context"
	"errors"
	baseHttp "net/http"
	"strings"

	"github.com/Samuel-Loga/Personal-Website/pkg/auth"
	"github.com/Samuel-Loga/Personal-Website/pkg/cache"
	"github.com/Samuel-Loga/Personal-Website/pkg/endpoint"
)

var ErrNoBearerToken = errors.New("missing bearer token")

type jwtContextKey string

const JWTClaimsKey jwtContextKey = "jwt.claims"

// AdminMiddleware validates Authorization Bearer tokens, rejects tokens the
// account has signed out of, and injects claims into the request context.
type AdminMiddleware struct {
	Handler auth.JWTHandler

	// Revoked holds tokens invalidated by sign-out until their natural expiry.
	Revoked *cache.TTLCache
}

func MakeAdminMiddleware(handler auth.JWTHandler, revoked *cache.TTLCache) AdminMiddleware {
	return AdminMiddleware{
		Handler: handler,
		Revoked: revoked,
	}
}

// Handle checks the Authorization header for a valid, non-revoked JWT token.
func (m AdminMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
		token, err := BearerToken(r)
		if err != nil {
			return &endpoint.ApiError{Message: "missing or invalid authorization header", Status: baseHttp.StatusUnauthorized}
		}

		if m.Revoked != nil && m.Revoked.Has(token) {
			return &endpoint.ApiError{Message: "session has been signed out", Status: baseHttp.StatusUnauthorized}
		}

		claims, err := m.Handler.Validate(token)
		if err != nil {
			return &endpoint.ApiError{Message: "invalid token", Status: baseHttp.StatusUnauthorized}
		}

		ctx := context.WithValue(r.Context(), JWTClaimsKey, claims)

		return next(w, r.WithContext(ctx))
	}
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(r *baseHttp.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))

	if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return "", ErrNoBearerToken
	}

	token := strings.TrimSpace(header[len("bearer "):])
	if token == "" {
		return "", ErrNoBearerToken
	}

	return token, nil
}

// GetJWTClaims extracts JWT claims from the context.
func GetJWTClaims(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(JWTClaimsKey).(*auth.Claims)

	return claims, ok
}

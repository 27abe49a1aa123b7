package handler

import (
	"log/slog"
	baseHttp "net/http"
	"time"

	"github.com/Samuel-Loga/Personal-Website/database/repository"
	"github.com/Samuel-Loga/Personal-Website/handler/payload"
	"github.com/Samuel-Loga/Personal-Website/pkg/auth"
	"github.com/Samuel-Loga/Personal-Website/pkg/cache"
	"github.com/Samuel-Loga/Personal-Website/pkg/endpoint"
	"github.com/Samuel-Loga/Personal-Website/pkg/middleware"
	"github.com/Samuel-Loga/Personal-Website/pkg/portal"
)

// AuthHandler signs the site owner in and out. Sign-in issues a JWT bearer
// token; sign-out parks the token in the revocation cache until it would
// have expired on its own.
type AuthHandler struct {
	Users     *repository.Users
	JWT       auth.JWTHandler
	Revoked   *cache.TTLCache
	Validator *portal.Validator
}

func MakeAuthHandler(users *repository.Users, jwt auth.JWTHandler, revoked *cache.TTLCache) AuthHandler {
	return AuthHandler{
		Users:     users,
		JWT:       jwt,
		Revoked:   revoked,
		Validator: portal.GetDefaultValidator(),
	}
}

// Login validates the owner's credentials and returns a signed JWT.
func (h *AuthHandler) Login(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	request, err := endpoint.ParseRequestBody[payload.LoginRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	if rejects, _ := h.Validator.Rejects(request); rejects {
		return endpoint.UnprocessableEntity("invalid credentials format", h.Validator.GetErrors())
	}

	user := h.Users.FindBy(request.Email)
	if user == nil || !user.IsAdmin || !auth.CheckPassword(user.PasswordHash, request.Password) {
		return &endpoint.ApiError{Message: "invalid credentials", Status: baseHttp.StatusUnauthorized}
	}

	token, err := h.JWT.Generate(user.Username)
	if err != nil {
		slog.Error("failed to generate token", "err", err)
		return endpoint.InternalError("could not generate token")
	}

	expires := time.Now().Add(h.JWT.TTL).UTC()

	data := payload.LoginResponse{
		Token:     token,
		ExpiresAt: expires.Format(portal.DatesLayout),
	}

	resp := endpoint.MakeNoCacheResponse(w, r)

	if err := resp.RespondOk(data); err != nil {
		return endpoint.LogInternalError("failed to encode response", err)
	}

	return nil
}

// Session reflects the signed-in account. The admin middleware has already
// validated the token by the time this runs.
func (h *AuthHandler) Session(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	claims, ok := middleware.GetJWTClaims(r.Context())
	if !ok {
		return &endpoint.ApiError{Message: "no active session", Status: baseHttp.StatusUnauthorized}
	}

	user := &payload.SessionResponse{Username: claims.Username}

	if account := h.Users.FindByUsername(claims.Username); account != nil {
		user.Email = account.Email
	}

	resp := endpoint.MakeNoCacheResponse(w, r)

	if err := resp.RespondOk(user); err != nil {
		return endpoint.LogInternalError("failed to encode response", err)
	}

	return nil
}

// Logout revokes the presented token.
func (h *AuthHandler) Logout(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	token, err := middleware.BearerToken(r)
	if err != nil {
		return endpoint.LogUnauthorisedError("missing bearer token", err)
	}

	if h.Revoked != nil {
		h.Revoked.Mark(token, h.JWT.TTL)
	}

	resp := endpoint.MakeNoCacheResponse(w, r)

	if err := resp.RespondOk(map[string]string{"message": "signed out"}); err != nil {
		return endpoint.LogInternalError("failed to encode response", err)
	}

	return nil
}

package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/dquintero/hr-records/internal/logger"
	"github.com/dquintero/hr-records/internal/service"
	"github.com/dquintero/hr-records/internal/utils"
	"github.com/dquintero/hr-records/models"
)

// bearerPrefix is the only accepted Authorization scheme. The match is
// case-sensitive, "bearer" or "BEARER" is rejected.
const bearerPrefix = "Bearer "

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.VerifyToken], and on success stores
// the authenticated user's ID and username in the request context before
// delegating to the next handler.
//
// Every rejection, missing header, wrong scheme, empty, expired, forged or
// orphaned token, answers with the same 401 envelope so the response does not
// reveal which check failed.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.VerifyToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token verification failed")
			writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
			return
		}

		// Store the authenticated identity in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.UsernameCtxKey, token.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuth performs the same extraction and verification as auth but
// swallows every failure: the request proceeds unauthenticated and the
// downstream handler simply finds no identity in the context.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.VerifyToken(ctx, tokenString)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.UsernameCtxKey, token.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole gates a route on role membership. Accounts do not carry a role
// field yet, so for now the check only requires an authenticated identity in
// the context; the roles argument is accepted for forward compatibility with
// the planned roles table.
func (h *Handler) requireRole(_ ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
				log.Error().Msg("role-gated route reached without identity")
				writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header must follow the standard format:
//
//	Authorization: Bearer <token>
//
// It returns the following sentinel errors:
//   - [ErrEmptyAuthorizationHeader] — if the header is absent.
//   - [ErrInvalidAuthorizationHeader] — if the header does not start with
//     the exact "Bearer " prefix.
//   - [ErrEmptyToken] — if the prefix is present but nothing follows it.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := authHeader[len(bearerPrefix):]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}

// identityFromContext rebuilds the public user view from the values the auth
// middleware stored in the context.
func identityFromContext(ctx context.Context) (models.User, bool) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return models.User{}, false
	}
	username, _ := utils.GetUsernameFromContext(ctx)

	return models.User{UserID: userID, Username: username}, true
}

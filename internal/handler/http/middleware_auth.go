package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/arenacast/backend/internal/logger"
	"github.com/arenacast/backend/internal/utils"
)

// auth is an HTTP middleware that attributes the request to a caller.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// decodes the caller identity via [utils.ExtractIdentity], and on success
// stores the subject id in the request context under [utils.SubjectCtxKey]
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized before any
// storage access in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token carries no decodable subject ([utils.ErrNoIdentity]).
//
// The token signature is not checked here: attribution is all this layer
// provides, and every storage statement is keyed by the subject id, so a
// forged subject can only ever reach rows of the forged subject.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		identity, err := utils.ExtractIdentity(tokenString)
		if err != nil {
			log.Err(err).Msg("request carries no usable identity")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the caller's subject id in the context so that downstream
		// handlers can retrieve it without re-decoding the token.
		ctx := context.WithValue(r.Context(), utils.SubjectCtxKey, identity.Subject)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns [ErrInvalidAuthorizationHeader] if the header contains fewer
// than two space-separated parts, and [ErrEmptyToken] if the second part
// exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}

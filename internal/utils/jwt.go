package utils

import (
	"errors"

	"github.com/arenacast/backend/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrNoIdentity is returned by ExtractIdentity when no caller identity can be
// attributed from the presented credential: malformed token, undecodable
// payload segment, or a missing/empty subject claim. Callers must treat it
// exactly like an absent credential.
var ErrNoIdentity = errors.New("no identity in credential")

// ExtractIdentity decodes the payload segment of a three-segment JWT and
// returns the caller identity embedded in it.
//
// The token signature is deliberately NOT verified here. The decode exists
// for fast identity attribution only, to scope storage queries and produce
// actionable errors, while cryptographic trust is enforced by the storage
// layer's row-level access policy at data-access time. Never treat a
// successful return as proof of authentication.
//
// Any decode failure yields ErrNoIdentity; this function never panics.
func ExtractIdentity(tokenString string) (models.Identity, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return models.Identity{}, ErrNoIdentity
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Identity{}, ErrNoIdentity
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return models.Identity{}, ErrNoIdentity
	}

	return models.Identity{Subject: subject, Claims: claims}, nil
}

// SPDX-License-Identifier: Apache-2.0

// Package adapter provides a typed HTTP client for the profile API, used by
// broadcast tooling and end-to-end tests.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/arenacast/backend/models"
)

// ProfileClient defines typed access to the profile HTTP surface.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ProfileClient interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// GetProfile fetches the caller's profile with its game sub-profiles
	// from GET /api/profile.
	GetProfile(ctx context.Context) (models.Profile, error)

	// UpdateProfile submits a profile mutation to PUT /api/profile. Returns
	// [ErrConflict] (wrapped) when the gamer tag is already claimed and
	// [ErrValidation] (wrapped) when the server rejects the body.
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error

	// ServerVersion fetches the build version from GET /api/version.
	ServerVersion(ctx context.Context) (string, error)
}

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/arenacast/backend/models"
)

// ProfileService is the profile synchronizer: the single implementation of
// the create-or-update semantics that both protocol surfaces (the stateless
// HTTP endpoint and the in-process action layer) translate into their own
// conventions. Every operation is scoped to the subject id of the caller
// whose identity was attributed upstream, never to an id supplied in a
// request body.
type ProfileService interface {
	// GetProfile returns the caller's profile with its game sub-profiles,
	// served from the view cache when fresh.
	GetProfile(ctx context.Context, subject string) (models.Profile, error)

	// UpdateProfile mutates the caller's primary profile. The gamer tag, if
	// supplied, is canonicalized before it reaches storage. Returns
	// ErrInvalidDataProvided for an empty name (before any storage access),
	// store.ErrGamerTagTaken when the storage layer rejects the tag as
	// already claimed, or a wrapped storage error otherwise. On success the
	// cached profile view is invalidated.
	UpdateProfile(ctx context.Context, subject string, update models.ProfileUpdate) error

	// UpsertGameProfile creates or wholesale-replaces the caller's
	// sub-profile for profile.Game. On success the cached profile view is
	// invalidated.
	UpsertGameProfile(ctx context.Context, subject string, profile models.GameProfile) error

	// DeleteGameProfile removes the caller's sub-profile for game,
	// idempotently. On success the cached profile view is invalidated.
	DeleteGameProfile(ctx context.Context, subject, game string) error
}

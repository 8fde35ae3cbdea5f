package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/arenacast/backend/models"
)

// ProfileRepository is the data-access contract for primary profiles. Every
// method is scoped by the caller's subject id; no method accepts a profile id
// from any other source.
type ProfileRepository interface {
	// GetProfile returns the profile owned by subject, or ErrProfileNotFound.
	GetProfile(ctx context.Context, subject string) (models.Profile, error)

	// UpdateProfile applies update to the profile owned by subject.
	// A storage-level uniqueness violation on the gamer tag column is
	// reported as ErrGamerTagTaken; a missing profile as ErrProfileNotFound.
	UpdateProfile(ctx context.Context, subject string, update models.ProfileUpdate) error
}

// GameProfileRepository is the data-access contract for per-game sub-profiles,
// keyed by the natural key (subject id, game).
type GameProfileRepository interface {
	// Upsert creates or wholesale-replaces the sub-profile for
	// (profile.UserID, profile.Game). All columns are overwritten.
	Upsert(ctx context.Context, profile models.GameProfile) error

	// Delete removes the sub-profile for (subject, game). Deleting a
	// non-existent key is not an error.
	Delete(ctx context.Context, subject, game string) error

	// ListByUser returns all sub-profiles owned by subject, ordered by game.
	ListByUser(ctx context.Context, subject string) ([]models.GameProfile, error)
}

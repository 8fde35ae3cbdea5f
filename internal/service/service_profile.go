package service

import (
	"context"
	"fmt"

	"github.com/arenacast/backend/internal/cache"
	"github.com/arenacast/backend/internal/logger"
	"github.com/arenacast/backend/internal/store"
	"github.com/arenacast/backend/models"
)

// profileService is the concrete implementation of ProfileService.
// It owns the create-or-update semantics for primary profiles and per-game
// sub-profiles, delegating persistence to the repositories and marking the
// cached profile view stale after every confirmed write.
//
// The service holds no per-request state; it is safe for concurrent use.
type profileService struct {
	// profiles is the data-access layer for primary profiles.
	profiles store.ProfileRepository

	// games is the data-access layer for per-game sub-profiles.
	games store.GameProfileRepository

	// views is the rendered view cache invalidated after successful writes.
	views *cache.ViewCache

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewProfileService constructs a ProfileService wired to the given
// repositories and view cache.
func NewProfileService(profiles store.ProfileRepository, games store.GameProfileRepository, views *cache.ViewCache, logger *logger.Logger) ProfileService {
	return &profileService{
		profiles: profiles,
		games:    games,
		views:    views,
		logger:   logger,
	}
}

// GetProfile returns the caller's profile with its game sub-profiles.
//
// The composed view is served from the cache when a fresh entry exists;
// otherwise it is loaded from storage and cached under the profile's logical
// path, which is the path every mutation invalidates.
func (s *profileService) GetProfile(ctx context.Context, subject string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	path := cache.ProfilePath(subject)
	if cached, ok := s.views.Get(path); ok {
		if profile, ok := cached.(models.Profile); ok {
			return profile, nil
		}
	}

	profile, err := s.profiles.GetProfile(ctx, subject)
	if err != nil {
		log.Err(err).Str("subject", subject).Msg("profile lookup failed")
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	games, err := s.games.ListByUser(ctx, subject)
	if err != nil {
		log.Err(err).Str("subject", subject).Msg("game profiles lookup failed")
		return models.Profile{}, fmt.Errorf("game profiles lookup failed: %w", err)
	}
	profile.Games = games

	s.views.Set(path, profile)

	return profile, nil
}

// UpdateProfile mutates the caller's primary profile.
//
// The name must be non-empty and a supplied privacy mode must be one of the
// recognised values, both enforced here before any storage access. A
// supplied gamer tag is canonicalized first, so the storage layer's
// uniqueness check always compares canonical forms. The storage verdict
// passes through untranslated: store.ErrGamerTagTaken for a claimed tag,
// a wrapped opaque error otherwise.
func (s *profileService) UpdateProfile(ctx context.Context, subject string, update models.ProfileUpdate) error {
	log := logger.FromContext(ctx)

	if update.Name == "" {
		log.Error().Str("subject", subject).Msg("invalid profile data provided")
		return ErrInvalidDataProvided
	}
	if update.PrivacyMode != nil && !update.PrivacyMode.Valid() {
		log.Error().Str("subject", subject).Str("mode", string(*update.PrivacyMode)).Msg("invalid privacy mode provided")
		return ErrInvalidDataProvided
	}

	if update.GamerTag != nil {
		canonical := CanonicalHandle(*update.GamerTag)
		update.GamerTag = &canonical
	}

	if err := s.profiles.UpdateProfile(ctx, subject, update); err != nil {
		log.Err(err).Str("subject", subject).Msg("profile update failed")
		return fmt.Errorf("profile update failed: %w", err)
	}

	s.views.Invalidate(cache.ProfilePath(subject))

	return nil
}

// UpsertGameProfile creates or wholesale-replaces the caller's sub-profile
// for profile.Game. The stored record always reflects exactly this call's
// fields; the repository fills empty collections for omitted stats and
// playstyle. The natural key (subject, game) makes the operation idempotent,
// so there is no domain conflict to report; any storage error is opaque.
func (s *profileService) UpsertGameProfile(ctx context.Context, subject string, profile models.GameProfile) error {
	log := logger.FromContext(ctx)

	if profile.Game == "" || profile.IGN == "" {
		log.Error().Str("subject", subject).Msg("invalid game profile data provided")
		return ErrInvalidDataProvided
	}

	profile.UserID = subject

	if err := s.games.Upsert(ctx, profile); err != nil {
		log.Err(err).Str("subject", subject).Str("game", profile.Game).Msg("game profile upsert failed")
		return fmt.Errorf("game profile upsert failed: %w", err)
	}

	s.views.Invalidate(cache.ProfilePath(subject))

	return nil
}

// DeleteGameProfile removes the caller's sub-profile for game. Deleting a
// key that does not exist succeeds.
func (s *profileService) DeleteGameProfile(ctx context.Context, subject, game string) error {
	log := logger.FromContext(ctx)

	if game == "" {
		log.Error().Str("subject", subject).Msg("invalid game name provided")
		return ErrInvalidDataProvided
	}

	if err := s.games.Delete(ctx, subject, game); err != nil {
		log.Err(err).Str("subject", subject).Str("game", game).Msg("game profile delete failed")
		return fmt.Errorf("game profile delete failed: %w", err)
	}

	s.views.Invalidate(cache.ProfilePath(subject))

	return nil
}

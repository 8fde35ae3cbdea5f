// Package actions is the in-process protocol surface consumed by the
// server-rendered views. It translates the synchronizer's outcomes into
// [models.ActionResult] values instead of HTTP statuses; the business rules
// themselves live in the service layer and are shared with the REST API.
package actions

import (
	"context"

	"github.com/arenacast/backend/internal/logger"
	"github.com/arenacast/backend/internal/service"
	"github.com/arenacast/backend/internal/utils"
	"github.com/arenacast/backend/internal/validators"
	"github.com/arenacast/backend/models"
)

type Actions struct {
	profiles service.ProfileService

	logger *logger.Logger
}

func NewActions(services *service.Services, logger *logger.Logger) *Actions {
	return &Actions{
		profiles: services.ProfileService,
		logger:   logger,
	}
}

// subject resolves the caller identity from the ambient context. An action
// invoked without an identity is a programming error in the calling view,
// not a domain outcome, so it surfaces as a hard error rather than an
// ActionResult.
func (a *Actions) subject(ctx context.Context) (string, error) {
	subject, ok := utils.GetSubjectFromContext(ctx)
	if !ok {
		return "", ErrNoCallerIdentity
	}
	return subject, nil
}

// GetProfile returns the caller's profile for rendering.
func (a *Actions) GetProfile(ctx context.Context) (models.Profile, error) {
	subject, err := a.subject(ctx)
	if err != nil {
		return models.Profile{}, err
	}

	return a.profiles.GetProfile(ctx, subject)
}

// UpdateProfile applies a profile form submission. Field-level violations
// and domain conflicts are reported through the ActionResult; only a missing
// caller identity is an error.
func (a *Actions) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.ActionResult, error) {
	subject, err := a.subject(ctx)
	if err != nil {
		return models.ActionResult{}, err
	}

	if issues := validators.ValidateUpdateProfile(req); len(issues) > 0 {
		return models.ActionResult{Error: "validation failed"}, nil
	}

	update := models.ProfileUpdate{
		Name:     req.Name,
		GamerTag: req.GamerTag,
	}
	if req.Bio != nil {
		update.Bio = *req.Bio
	}
	if req.PrivacySettings != nil {
		update.PrivacyMode = &req.PrivacySettings.Mode
	}

	if err := a.profiles.UpdateProfile(ctx, subject, update); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Actions.UpdateProfile").Msg("profile update failed")
		return models.ActionResult{Error: resultMessage(err)}, nil
	}

	return models.ActionResult{Success: true}, nil
}

// UpsertGameProfile creates or wholesale-replaces the caller's sub-profile
// for profile.Game.
func (a *Actions) UpsertGameProfile(ctx context.Context, profile models.GameProfile) (models.ActionResult, error) {
	subject, err := a.subject(ctx)
	if err != nil {
		return models.ActionResult{}, err
	}

	if err := a.profiles.UpsertGameProfile(ctx, subject, profile); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Actions.UpsertGameProfile").Msg("game profile sync failed")
		return models.ActionResult{Error: resultMessage(err)}, nil
	}

	return models.ActionResult{Success: true}, nil
}

// DeleteGameProfile removes the caller's sub-profile for game, idempotently.
func (a *Actions) DeleteGameProfile(ctx context.Context, game string) (models.ActionResult, error) {
	subject, err := a.subject(ctx)
	if err != nil {
		return models.ActionResult{}, err
	}

	if err := a.profiles.DeleteGameProfile(ctx, subject, game); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Actions.DeleteGameProfile").Msg("game profile delete failed")
		return models.ActionResult{Error: resultMessage(err)}, nil
	}

	return models.ActionResult{Success: true}, nil
}

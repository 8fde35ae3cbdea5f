package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/arenacast/backend/internal/logger"
	"github.com/arenacast/backend/models"
)

// profileRepository is the SQL-backed implementation of [ProfileRepository].
// It handles primary profile lookup and mutation against the "profiles"
// table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type profileRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// GetProfile retrieves the profile owned by subject.
//
// Error handling:
//   - No matching row → [ErrProfileNotFound].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *profileRepository) GetProfile(ctx context.Context, subject string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select("user_id", "name", "bio", "gamer_tag", "privacy_mode", "created_at", "updated_at").
		From("profiles").
		Where(sq.Eq{"user_id": subject}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.GetProfile").Msg("error building query")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var profile models.Profile
	var gamerTag sql.NullString
	var privacyMode string

	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&profile.UserID, &profile.Name, &profile.Bio, &gamerTag, &privacyMode, &profile.CreatedAt, &profile.UpdatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Profile{}, ErrProfileNotFound
	case err != nil:
		log.Err(err).Str("func", "*profileRepository.GetProfile").Msg("error: scanning error")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	profile.GamerTag = gamerTag.String
	profile.Privacy = models.PrivacySettings{Mode: models.PrivacyMode(privacyMode)}

	return profile, nil
}

// UpdateProfile applies update to the profile owned by subject. Name and Bio
// are always written; the gamer tag and privacy mode columns only when the
// corresponding update field is non-nil.
//
// Error handling:
//   - Uniqueness violation on gamer_tag → [ErrGamerTagTaken]. The rejected
//     write leaves the stored tag unchanged; the storage engine serializes
//     conflicting claims so exactly one of two concurrent attempts wins.
//   - No matching row → [ErrProfileNotFound].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *profileRepository) UpdateProfile(ctx context.Context, subject string, update models.ProfileUpdate) error {
	log := logger.FromContext(ctx)

	builder := r.db.builder().
		Update("profiles").
		Set("name", update.Name).
		Set("bio", update.Bio).
		Set("updated_at", time.Now().UTC())

	if update.GamerTag != nil {
		builder = builder.Set("gamer_tag", *update.GamerTag)
	}
	if update.PrivacyMode != nil {
		builder = builder.Set("privacy_mode", string(*update.PrivacyMode))
	}

	query, args, err := builder.Where(sq.Eq{"user_id": subject}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.UpdateProfile").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		switch r.db.errorClassifier.Classify(err) {
		case ClassUniqueViolation:
			log.Err(err).Str("func", "*profileRepository.UpdateProfile").Msg("gamer tag already taken")
			return ErrGamerTagTaken
		default:
			log.Err(err).Str("func", "*profileRepository.UpdateProfile").Msg("error executing update")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrProfileNotFound
	}

	return nil
}

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/arenacast/backend/internal/logger"
	"github.com/arenacast/backend/models"
)

// gameProfileRepository is the SQL-backed implementation of
// [GameProfileRepository]. Sub-profiles live in the "game_profiles" table
// whose primary key is the natural key (user_id, game); the engine's native
// upsert provides the create-or-replace atomicity, no application-level
// locking is involved.
type gameProfileRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewGameProfileRepository constructs a [GameProfileRepository] backed by
// the provided database connection and logger.
func NewGameProfileRepository(db *DB, logger *logger.Logger) GameProfileRepository {
	logger.Debug().Msg("creating game profile repository")
	return &gameProfileRepository{
		db:     db,
		logger: logger,
	}
}

const upsertGameProfileSuffix = `ON CONFLICT (user_id, game) DO UPDATE SET
		ign = excluded.ign,
		rank = excluded.rank,
		role = excluded.role,
		stats = excluded.stats,
		playstyle = excluded.playstyle,
		playing_since = excluded.playing_since,
		updated_at = excluded.updated_at`

// Upsert creates or wholesale-replaces the sub-profile keyed by
// (profile.UserID, profile.Game). Every column is overwritten with the
// incoming values; nil Stats and Playstyle are stored as empty collections,
// never as the previously stored ones.
func (r *gameProfileRepository) Upsert(ctx context.Context, profile models.GameProfile) error {
	log := logger.FromContext(ctx)

	if profile.Stats == nil {
		profile.Stats = map[string]string{}
	}
	if profile.Playstyle == nil {
		profile.Playstyle = []string{}
	}

	stats, err := json.Marshal(profile.Stats)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	playstyle, err := json.Marshal(profile.Playstyle)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := r.db.builder().
		Insert("game_profiles").
		Columns("user_id", "game", "ign", "rank", "role", "stats", "playstyle", "playing_since", "updated_at").
		Values(profile.UserID, profile.Game, profile.IGN, profile.Rank, profile.Role, string(stats), string(playstyle), profile.PlayingSince, time.Now().UTC()).
		Suffix(upsertGameProfileSuffix).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*gameProfileRepository.Upsert").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*gameProfileRepository.Upsert").Msg("error executing upsert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Delete removes the sub-profile for (subject, game). Zero affected rows is
// a success: the delete is idempotent by contract.
func (r *gameProfileRepository) Delete(ctx context.Context, subject, game string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Delete("game_profiles").
		Where(sq.Eq{"user_id": subject, "game": game}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*gameProfileRepository.Delete").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*gameProfileRepository.Delete").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListByUser returns all sub-profiles owned by subject, ordered by game.
func (r *gameProfileRepository) ListByUser(ctx context.Context, subject string) ([]models.GameProfile, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select("user_id", "game", "ign", "rank", "role", "stats", "playstyle", "playing_since", "updated_at").
		From("game_profiles").
		Where(sq.Eq{"user_id": subject}).
		OrderBy("game").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*gameProfileRepository.ListByUser").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*gameProfileRepository.ListByUser").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var profiles []models.GameProfile
	for rows.Next() {
		var profile models.GameProfile
		var stats, playstyle string

		if err := rows.Scan(&profile.UserID, &profile.Game, &profile.IGN, &profile.Rank, &profile.Role, &stats, &playstyle, &profile.PlayingSince, &profile.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*gameProfileRepository.ListByUser").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if err := json.Unmarshal([]byte(stats), &profile.Stats); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if err := json.Unmarshal([]byte(playstyle), &profile.Playstyle); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return profiles, nil
}

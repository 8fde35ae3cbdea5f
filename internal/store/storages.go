package store

import (
	"context"
	"fmt"

	"github.com/arenacast/backend/internal/config"
	"github.com/arenacast/backend/internal/logger"
)

// Storages aggregates all repositories backed by the configured database
// engine.
type Storages struct {
	ProfileRepository     ProfileRepository
	GameProfileRepository GameProfileRepository
}

// NewStorages connects to the configured database engine, applies pending
// migrations, and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Engine {
	case config.EngineSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		ProfileRepository:     NewProfileRepository(db, log),
		GameProfileRepository: NewGameProfileRepository(db, log),
	}, nil
}

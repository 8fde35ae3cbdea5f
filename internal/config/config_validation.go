// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Engine names accepted by Storage.DB.Engine.
const (
	EnginePostgres = "postgres"
	EngineSQLite   = "sqlite"
)

// applyDefaults fills in values for fields that no configuration source set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Environment == "" {
		cfg.App.Environment = "production"
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "localhost:8080"
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}
	if cfg.Storage.DB.Engine == "" {
		cfg.Storage.DB.Engine = EnginePostgres
	}
	if cfg.Cache.ViewTTL == 0 {
		cfg.Cache.ViewTTL = 5 * time.Minute
	}
	if cfg.Cache.SweepInterval == 0 {
		cfg.Cache.SweepInterval = time.Minute
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Engine {
	case EnginePostgres, EngineSQLite:
	default:
		return ErrUnknownDBEngine
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}

	return nil
}

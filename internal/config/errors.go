package config

import "errors"

var (
	// ErrUnknownDBEngine is returned by validation when Storage.DB.Engine is
	// not one of the supported engine names.
	ErrUnknownDBEngine = errors.New("unknown database engine")

	// ErrNoDatabaseDSN is returned by validation when no database DSN was
	// provided by any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is required")
)

package service

import "errors"

// Sentinel errors returned by the profile synchronizer. Callers should use
// [errors.Is] to match against these values; storage-level sentinels
// (store.ErrGamerTagTaken, store.ErrProfileNotFound) pass through unchanged.
var (
	// ErrInvalidDataProvided is returned when caller input fails a
	// required-field or shape check. It is always detected before any
	// storage access is attempted.
	ErrInvalidDataProvided = errors.New("invalid data provided")
)

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, and credential payload decoding.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SubjectCtxKey is the key used to store the caller's subject id in the
// context. Used together with GetSubjectFromContext for type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SubjectCtxKey, "3f8a…")
var SubjectCtxKey = contextKey("subject")

// GetSubjectFromContext retrieves the caller's subject id from the context.
//
// Returns the subject id and an ok flag:
//   - ok == true: value is found, has the correct string type and is non-empty
//   - ok == false: value is missing, empty, or has an unexpected type
//
// Example usage:
//
//	subject, ok := utils.GetSubjectFromContext(ctx)
//	if !ok {
//	    // handle missing identity
//	}
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	if subject == "" {
		return "", false
	}
	return subject, ok
}

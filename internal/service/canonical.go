package service

import "strings"

// CanonicalHandle maps a user-supplied gamer tag to its canonical storage
// form: lower-cased, with every whitespace run collapsed into a single
// underscore. The function is pure and idempotent,
// CanonicalHandle(CanonicalHandle(x)) == CanonicalHandle(x), so uniqueness
// comparisons in storage always see the same representation regardless of
// how the caller typed the tag.
func CanonicalHandle(handle string) string {
	return strings.Join(strings.Fields(strings.ToLower(handle)), "_")
}

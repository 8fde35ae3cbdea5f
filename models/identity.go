package models

// Identity is the caller identity attributed from a presented credential.
// It is reconstructed fresh on every request and never persisted. The decode
// that produces it is non-authoritative: cryptographic trust is enforced by
// the storage layer's row-level access policy, not here.
type Identity struct {
	// Subject is the stable unique identifier of the caller, taken from the
	// credential's "sub" claim. All storage operations are scoped by it.
	Subject string

	// Claims holds the remaining claim attributes of the credential payload.
	Claims map[string]any
}

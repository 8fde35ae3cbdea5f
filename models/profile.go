package models

import "time"

// PrivacyMode controls how much of a participant's profile is shown on the
// broadcast overlay.
type PrivacyMode string

const (
	// PrivacyModeOff shows the full profile.
	PrivacyModeOff PrivacyMode = "off"

	// PrivacyModeGhost hides the profile from spectator views but keeps it
	// visible to the broadcast crew.
	PrivacyModeGhost PrivacyMode = "ghost"

	// PrivacyModeClassified hides everything except the display name.
	PrivacyModeClassified PrivacyMode = "classified"
)

// Valid reports whether m is one of the recognised privacy modes.
func (m PrivacyMode) Valid() bool {
	switch m {
	case PrivacyModeOff, PrivacyModeGhost, PrivacyModeClassified:
		return true
	}
	return false
}

// PrivacySettings is the nested privacy block as it appears on the wire.
type PrivacySettings struct {
	Mode PrivacyMode `json:"mode"`
}

// Profile is a participant's primary profile, one record per caller subject.
// The subject id comes from the caller's credential and is never taken from
// a request body.
type Profile struct {
	// UserID is the owning subject id. Not exposed via JSON.
	UserID string `json:"-"`

	// Name is the participant's display name. Required, non-empty.
	Name string `json:"name"`

	// Bio is optional free-form text shown on the profile card.
	Bio string `json:"bio,omitempty"`

	// GamerTag is the globally unique, canonicalized handle. Empty when the
	// participant has not claimed one yet.
	GamerTag string `json:"gamerTag,omitempty"`

	// Privacy holds the participant's overlay privacy settings.
	Privacy PrivacySettings `json:"privacySettings"`

	// Games lists the participant's per-game sub-profiles.
	Games []GameProfile `json:"games,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}

// ProfileUpdate describes a profile mutation. Name and Bio are always
// written; GamerTag and PrivacyMode are written only when non-nil, so an
// update that does not mention them leaves the stored values untouched.
type ProfileUpdate struct {
	Name        string
	Bio         string
	GamerTag    *string
	PrivacyMode *PrivacyMode
}

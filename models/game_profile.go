package models

import "time"

// GameProfile is a per-(profile, game) sub-profile. The pair (UserID, Game)
// is its natural key: at most one record per caller per game. Every
// synchronization call replaces the record wholesale.
type GameProfile struct {
	// UserID is the owning subject id. Not exposed via JSON.
	UserID string `json:"-"`

	// Game is the game identifier, part of the natural key together with
	// the owning subject id.
	Game string `json:"game"`

	// IGN is the in-game display name.
	IGN string `json:"ign"`

	Rank string `json:"rank,omitempty"`
	Role string `json:"role,omitempty"`

	// Stats is a free-form statistics map. Never nil after a sync: when the
	// caller omits it, it is stored as an empty map rather than preserving
	// prior values.
	Stats map[string]string `json:"stats"`

	// Playstyle is the set of playstyle tags. Same defaulting rule as Stats.
	Playstyle []string `json:"playstyle"`

	// PlayingSince is a free-form "playing since" marker (e.g. "2019").
	PlayingSince string `json:"playingSince,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the GameProfile model.
func (g GameProfile) TableName() string {
	return "game_profiles"
}

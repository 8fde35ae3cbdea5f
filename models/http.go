package models

// UpdateProfileRequest is the body of PUT /api/profile. Name is required;
// the remaining fields are applied only when supplied, which is why they are
// pointers: absent and empty must be distinguishable.
type UpdateProfileRequest struct {
	Name            string           `json:"name"`
	Bio             *string          `json:"bio,omitempty"`
	GamerTag        *string          `json:"gamerTag,omitempty"`
	PrivacySettings *PrivacySettings `json:"privacySettings,omitempty"`
}

// ValidationIssue describes a single field-level violation found while
// validating a request body.
type ValidationIssue struct {
	Field string `json:"field"`
	Code  string `json:"code"`
}

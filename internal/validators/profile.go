// Package validators checks inbound request bodies before any mutation is
// attempted. Violations are reported as field-level issue lists so that API
// clients can map them back onto form fields.
package validators

import (
	"strings"

	"github.com/arenacast/backend/models"
)

const (
	FieldName        = "name"
	FieldBio         = "bio"
	FieldGamerTag    = "gamerTag"
	FieldPrivacyMode = "privacySettings.mode"
)

// Issue codes.
const (
	CodeRequired = "required"
	CodeTooLong  = "too_long"
	CodeInvalid  = "invalid"
)

const (
	maxNameLength     = 64
	maxBioLength      = 500
	maxGamerTagLength = 32
)

// ValidateUpdateProfile checks a PUT /api/profile body and returns one issue
// per offending field. An empty result means the request is acceptable.
func ValidateUpdateProfile(req models.UpdateProfileRequest) []models.ValidationIssue {
	var issues []models.ValidationIssue

	if strings.TrimSpace(req.Name) == "" {
		issues = append(issues, models.ValidationIssue{Field: FieldName, Code: CodeRequired})
	} else if len(req.Name) > maxNameLength {
		issues = append(issues, models.ValidationIssue{Field: FieldName, Code: CodeTooLong})
	}

	if req.Bio != nil && len(*req.Bio) > maxBioLength {
		issues = append(issues, models.ValidationIssue{Field: FieldBio, Code: CodeTooLong})
	}

	if req.GamerTag != nil {
		switch {
		case strings.TrimSpace(*req.GamerTag) == "":
			issues = append(issues, models.ValidationIssue{Field: FieldGamerTag, Code: CodeRequired})
		case len(*req.GamerTag) > maxGamerTagLength:
			issues = append(issues, models.ValidationIssue{Field: FieldGamerTag, Code: CodeTooLong})
		}
	}

	if req.PrivacySettings != nil && !req.PrivacySettings.Mode.Valid() {
		issues = append(issues, models.ValidationIssue{Field: FieldPrivacyMode, Code: CodeInvalid})
	}

	return issues
}

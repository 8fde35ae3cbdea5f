package models

// DataResponse wraps a successful read payload, e.g. the profile returned by
// GET /api/profile.
type DataResponse struct {
	Data any `json:"data"`
}

// SuccessResponse is the body returned by mutating endpoints on success.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the body returned by any endpoint on failure. Issues is
// populated only for validation failures, one entry per offending field.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Issues []ValidationIssue `json:"issues,omitempty"`
}

// ActionResult is the outcome shape of the in-process action surface
// consumed by server-rendered views. Error carries the user-facing message
// when Success is false.
type ActionResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

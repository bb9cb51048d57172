package utils

// ErrorResponse is the JSON shape of every error reply.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	// Fields carries per-field validation detail, present only on
	// validation failures.
	Fields map[string]string `json:"fields,omitempty"`
}

package dto

// Response statuses used in every envelope
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Response is the success envelope
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ValidationError describes one rejected request field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Status  string            `json:"status"`
	Code    int               `json:"code,omitempty"`
	Message string            `json:"message"`
	Details []ValidationError `json:"details,omitempty"`
}

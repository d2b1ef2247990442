package utils

// ErrorResponse is the failure body for every endpoint. Successful
// responses return the domain value directly; only errors are wrapped.
type ErrorResponse struct {
	Message string                  `json:"message"`
	Errors  []ValidationErrorDetail `json:"errors,omitempty"`
}

// ValidationErrorDetail represents the structure of a single validation error.
type ValidationErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewErrorResponse creates an error body with a generic message.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}

// NewValidationErrorResponse creates a 400 body with per-field detail.
func NewValidationErrorResponse(message string, errors []ValidationErrorDetail) ErrorResponse {
	return ErrorResponse{Message: message, Errors: errors}
}

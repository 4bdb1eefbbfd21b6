package models

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrForbidden        = "FORBIDDEN"
	ErrNotFound         = "NOT_FOUND"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Order-specific errors
	ErrOrderLocked = "ORDER_LOCKED"

	// OAuth/Auth errors (maintain RFC 6749 compatibility)
	ErrInvalidRequest = "invalid_request"
	ErrInvalidToken   = "invalid_token"
	ErrAuthRequired   = "authorization_required"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// OAuth2Error represents an OAuth2 error response (RFC 6750)
type OAuth2Error struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// NewOAuth2Error creates a new OAuth2 error response
func NewOAuth2Error(code, description string) OAuth2Error {
	return OAuth2Error{
		Error:            code,
		ErrorDescription: description,
	}
}

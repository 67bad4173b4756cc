package careersdk

import (
	"fmt"
	"net/http"

	"github.com/pathfinderai/pathfinder/pkg/httpx"
)

// Error codes shared between server and client.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeConflict           = "conflict"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeServerError        = "server_error"
)

// APIError represents a JSON error response from the service. It implements
// the error interface and is used both by the server (to write HTTP
// responses) and by the SDK client (to represent failures).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
	})
}

// WithDescription returns a copy of the error carrying a more specific
// description, keeping the predefined values immutable.
func (e *APIError) WithDescription(desc string) *APIError {
	clone := *e
	clone.Description = desc
	return &clone
}

var (
	// ErrInvalidRequest is returned when the request body is malformed or
	// missing required fields.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrEmailInUse is returned when a signup collides with an existing email.
	ErrEmailInUse = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeConflict,
		Description: "email already in use",
	}

	// ErrUserNotFound is returned when no account exists for the login email.
	ErrUserNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "user not found",
	}

	// ErrInvalidCredentials is returned when the password does not verify.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid credentials",
	}

	// ErrServerError hides internal failures behind a generic message.
	// Upstream and parse failures surface as this; the detail is logged
	// server-side only.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

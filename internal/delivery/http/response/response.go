// Package response renders the JSON envelopes returned by the account endpoints.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Message string `json:"message"`
	User    any    `json:"user,omitempty"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Details string `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// Success returns a successful response carrying the user projection.
func Success(c echo.Context, statusCode int, message string, user any) error {
	return c.JSON(statusCode, SuccessResponse{
		Message: message,
		User:    user,
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	// Details should not be included for 5xx errors or authentication errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized {
		details = ""
	}

	return c.JSON(statusCode, ErrorResponse{
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BindingError returns a binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}

package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrServiceUnavailable = New(
		CodeServiceUnavailable,
		"Service temporarily unavailable",
		http.StatusServiceUnavailable,
	)

	ErrTimeout = New(
		CodeTimeout,
		"The operation timed out, try again",
		http.StatusGatewayTimeout,
	)
)

// Persistence wraps a backend failure so the cause is kept for logs while the
// client only sees the generic message.
func Persistence(err error) *AppError {
	return Wrap(err, CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)
}

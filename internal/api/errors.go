package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a non-2xx response from the remote service: an HTTP status
// plus the human-readable detail message from the JSON error body.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d: %s", e.Status, e.Detail)
}

// IsStatus reports whether err is an *Error with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// IsEmailConflict reports whether err is the service's "a customer with
// this email already exists" rejection. The service signals this as a
// 400 whose detail mentions the collision; matching on the message text
// is the only signal it exposes today.
func IsEmailConflict(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusBadRequest &&
		strings.Contains(strings.ToLower(apiErr.Detail), "email already exists")
}

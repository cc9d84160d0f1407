package riot

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// APIError carries the upstream status code and response body so handlers can
// map provider failures 1:1 onto their own responses.
type APIError struct {
	StatusCode int
	Path       string
	Body       string

	retryAfter time.Duration // from the 429 Retry-After header, if any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("riot %s returned %d: %s", e.Path, e.StatusCode, e.Body)
}

// Retryable reports whether the failure class is worth another attempt.
// 4xx terminal codes (bad request, auth, not found) never are; 429 and 5xx are.
func (e *APIError) Retryable() bool {
	switch e.StatusCode {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return false
	}
	return true
}

// StatusOf extracts the upstream status code from err, or 0 when err is not
// an APIError (transport failures, timeouts).
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

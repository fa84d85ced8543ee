package adapter

import "errors"

var (
	// ErrPlacesNotConfigured is returned when the places API key is empty.
	ErrPlacesNotConfigured = errors.New("places api key is not configured")

	// ErrPlacesUnavailable wraps every failure to obtain results from the
	// places service.
	ErrPlacesUnavailable = errors.New("error communicating with third-party api")
)

// Upstream failure details. They are always wrapped together with
// [ErrPlacesUnavailable].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrRequestDenied       = errors.New("request denied")
	ErrQuotaExceeded       = errors.New("quota exceeded")
	ErrInternalServerError = errors.New("upstream internal error")
)

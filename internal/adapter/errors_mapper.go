package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w: %s", ErrPlacesUnavailable, ErrBadRequest, body)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w: %s", ErrPlacesUnavailable, ErrRequestDenied, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w: %s", ErrPlacesUnavailable, ErrQuotaExceeded, body)
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %w: %s", ErrPlacesUnavailable, ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrPlacesUnavailable, resp.StatusCode(), body)
	}
}

// Nearby Search reports most failures with HTTP 200 and a status field.
func mapPlacesStatus(status, message string) error {
	switch status {
	case "OK", "ZERO_RESULTS":
		return nil
	case "INVALID_REQUEST":
		return fmt.Errorf("%w: %w: %s", ErrPlacesUnavailable, ErrBadRequest, message)
	case "REQUEST_DENIED":
		return fmt.Errorf("%w: %w: %s", ErrPlacesUnavailable, ErrRequestDenied, message)
	case "OVER_QUERY_LIMIT":
		return fmt.Errorf("%w: %w: %s", ErrPlacesUnavailable, ErrQuotaExceeded, message)
	default:
		return fmt.Errorf("%w: status %q: %s", ErrPlacesUnavailable, status, message)
	}
}

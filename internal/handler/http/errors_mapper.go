package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-city-guide/internal/adapter"
	"github.com/MKhiriev/go-city-guide/internal/logger"
	"github.com/MKhiriev/go-city-guide/internal/service"
	"github.com/MKhiriev/go-city-guide/internal/store"
	"github.com/MKhiriev/go-city-guide/internal/utils"
	"github.com/MKhiriev/go-city-guide/internal/validators"
	"github.com/MKhiriev/go-city-guide/models"
)

type errorStatus struct {
	target error
	status int

	// withCause sends the whole error text instead of the target's message.
	withCause bool
}

// errorStatuses is checked in order, so an error wrapping several targets
// gets the first matching status.
var errorStatuses = []errorStatus{
	{target: ErrInvalidJSON, status: http.StatusBadRequest},
	{target: ErrInvalidForm, status: http.StatusBadRequest},
	{target: ErrInvalidPathParameter, status: http.StatusBadRequest, withCause: true},
	{target: ErrInvalidQueryParameter, status: http.StatusBadRequest, withCause: true},
	{target: validators.ErrValidation, status: http.StatusBadRequest, withCause: true},
	{target: service.ErrEmptyPlaceID, status: http.StatusBadRequest},

	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized},
	{target: service.ErrUnauthorized, status: http.StatusUnauthorized},
	{target: utils.ErrInvalidAuthorizationHeader, status: http.StatusUnauthorized},

	{target: errRouteNotFound, status: http.StatusNotFound},
	{target: store.ErrFavoriteNotFound, status: http.StatusNotFound},
	{target: store.ErrEventNotFound, status: http.StatusNotFound},

	{target: store.ErrEmailAlreadyExists, status: http.StatusConflict},
	{target: store.ErrFavoriteAlreadyExists, status: http.StatusConflict},
	{target: store.ErrReviewAlreadyExists, status: http.StatusConflict},

	{target: adapter.ErrPlacesUnavailable, status: http.StatusServiceUnavailable},
	{target: store.ErrTemporarilyUnavailable, status: http.StatusServiceUnavailable},
}

// statusFromError returns the status code and the client-facing message for
// err. Unknown errors are 500 with the generic status text.
func statusFromError(err error) (int, string) {
	for _, s := range errorStatuses {
		if errors.Is(err, s.target) {
			if s.withCause {
				return s.status, err.Error()
			}
			return s.status, s.target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err and answers with the uniform JSON error body.
// Every 401 carries a "WWW-Authenticate: Bearer" challenge.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}

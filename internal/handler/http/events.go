package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-city-guide/internal/utils"
	"github.com/MKhiriev/go-city-guide/models"
)

// dateLayout is accepted by the from parameter next to RFC 3339.
const dateLayout = "2006-01-02"

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	filter, err := parseEventFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	events, err := h.services.EventService.ListEvents(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	utils.WriteJSON(w, events, http.StatusOK)
}

func (h *Handler) getEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := int64URLParam(r, "eventID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	event, err := h.services.EventService.GetEvent(r.Context(), eventID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, event, http.StatusOK)
}

func parseEventFilter(r *http.Request) (models.EventFilter, error) {
	query := r.URL.Query()

	var filter models.EventFilter

	if raw := query.Get("from"); raw != "" {
		from, err := parseTime(raw)
		if err != nil {
			return models.EventFilter{}, fmt.Errorf("%w: from must be RFC 3339 or YYYY-MM-DD, got %q", ErrInvalidQueryParameter, raw)
		}
		filter.From = from
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.EventFilter{}, fmt.Errorf("%w: limit must be a non-negative integer, got %q", ErrInvalidQueryParameter, raw)
		}
		filter.Limit = limit
	}

	return filter, nil
}

func parseTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse(dateLayout, raw)
}

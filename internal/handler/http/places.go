package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-city-guide/internal/utils"
	"github.com/MKhiriev/go-city-guide/models"
)

// searchPlaces serves GET /api/search/place?query=&type=&radius=&min_rating=.
// Omitted type and radius take the service defaults.
func (h *Handler) searchPlaces(w http.ResponseWriter, r *http.Request) {
	search, err := parsePlaceSearch(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	places, err := h.services.PlaceService.SearchPlaces(r.Context(), search)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, places, http.StatusOK)
}

func parsePlaceSearch(r *http.Request) (models.PlaceSearch, error) {
	query := r.URL.Query()

	search := models.PlaceSearch{
		Query: query.Get("query"),
		Type:  query.Get("type"),
	}

	if raw := query.Get("radius"); raw != "" {
		radius, err := strconv.Atoi(raw)
		if err != nil {
			return models.PlaceSearch{}, fmt.Errorf("%w: radius must be an integer, got %q", ErrInvalidQueryParameter, raw)
		}
		search.Radius = radius
	}

	if raw := query.Get("min_rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.PlaceSearch{}, fmt.Errorf("%w: min_rating must be a number, got %q", ErrInvalidQueryParameter, raw)
		}
		search.MinRating = &minRating
	}

	return search, nil
}

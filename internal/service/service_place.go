package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-city-guide/internal/adapter"
	"github.com/MKhiriev/go-city-guide/internal/logger"
	"github.com/MKhiriev/go-city-guide/internal/validators"
	"github.com/MKhiriev/go-city-guide/models"
)

type placeService struct {
	placesAdapter adapter.PlacesAdapter
	validator     validators.Validator

	logger *logger.Logger
}

func NewPlaceService(placesAdapter adapter.PlacesAdapter, validator validators.Validator, logger *logger.Logger) PlaceService {
	return &placeService{
		placesAdapter: placesAdapter,
		validator:     validator,
		logger:        logger,
	}
}

func (p *placeService) SearchPlaces(ctx context.Context, search models.PlaceSearch) ([]models.Place, error) {
	log := logger.FromContext(ctx)

	search = withSearchDefaults(search)
	if err := p.validator.Validate(ctx, search); err != nil {
		return nil, err
	}

	places, err := p.placesAdapter.NearbySearch(ctx, search)
	if err != nil {
		log.Err(err).Str("func", "placeService.SearchPlaces").Str("query", search.Query).Msg("nearby search failed")
		return nil, err
	}

	filtered := filterByMinRating(places, search.MinRating)

	log.Debug().
		Str("func", "placeService.SearchPlaces").
		Int("found", len(places)).
		Int("returned", len(filtered)).
		Msg("places found")
	return filtered, nil
}

func withSearchDefaults(search models.PlaceSearch) models.PlaceSearch {
	search.Query = strings.TrimSpace(search.Query)
	if search.Type == "" {
		search.Type = models.DefaultPlaceType
	}
	if search.Radius == 0 {
		search.Radius = models.DefaultPlaceRadius
	}
	return search
}

// filterByMinRating drops unrated places and places rated below minRating.
// A nil minRating keeps everything.
func filterByMinRating(places []models.Place, minRating *float64) []models.Place {
	filtered := make([]models.Place, 0, len(places))
	for _, place := range places {
		if minRating != nil && (place.Rating == nil || *place.Rating < *minRating) {
			continue
		}
		filtered = append(filtered, place)
	}
	return filtered
}

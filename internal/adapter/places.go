package adapter

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-city-guide/internal/config"
	"github.com/MKhiriev/go-city-guide/internal/logger"
	"github.com/MKhiriev/go-city-guide/internal/utils"
	"github.com/MKhiriev/go-city-guide/models"
)

const (
	nearbySearchPath = "/maps/api/place/nearbysearch/json"

	retryCount    = 2
	retryWaitTime = 100 * time.Millisecond
)

type placesAdapter struct {
	client *utils.HTTPClient

	apiKey   string
	location string
	language string

	logger *logger.Logger
}

// NewPlacesAdapter constructs a [PlacesAdapter] for the Google Places API.
// An empty API key is accepted: the server keeps running and every search
// fails with [ErrPlacesNotConfigured].
func NewPlacesAdapter(cfg config.Places, log *logger.Logger) PlacesAdapter {
	if cfg.APIKey == "" {
		log.Warn().Str("func", "NewPlacesAdapter").Msg("places api key is not set, place search is disabled")
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:       cfg.BaseURL,
		Timeout:       cfg.RequestTimeout,
		RetryCount:    retryCount,
		RetryWaitTime: retryWaitTime,
	})

	return &placesAdapter{
		client:   client,
		apiKey:   cfg.APIKey,
		location: formatLocation(cfg.Latitude, cfg.Longitude),
		language: cfg.Language,
		logger:   log,
	}
}

// NearbySearch implements [PlacesAdapter] with a single Nearby Search call.
// Only the first page of results is returned.
func (p *placesAdapter) NearbySearch(ctx context.Context, search models.PlaceSearch) ([]models.Place, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("%w: %w", ErrPlacesUnavailable, ErrPlacesNotConfigured)
	}

	params := map[string]string{
		"location": p.location,
		"radius":   strconv.Itoa(search.Radius),
		"key":      p.apiKey,
	}
	if search.Type != "" {
		params["type"] = search.Type
	}
	if search.Query != "" {
		params["keyword"] = search.Query
	}
	if p.language != "" {
		params["language"] = p.language
	}

	var result nearbySearchResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&result).
		Get(nearbySearchPath)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "placesAdapter.NearbySearch").Msg("places request failed")
		return nil, fmt.Errorf("%w: %w", ErrPlacesUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "placesAdapter.NearbySearch").
			Int("status", resp.StatusCode()).
			Msg("places service answered with an error")
		return nil, err
	}
	if err = mapPlacesStatus(result.Status, result.ErrorMessage); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "placesAdapter.NearbySearch").
			Str("places_status", result.Status).
			Msg("places search was not successful")
		return nil, err
	}

	places := make([]models.Place, 0, len(result.Results))
	for _, r := range result.Results {
		places = append(places, r.toModel())
	}

	return places, nil
}

func formatLocation(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
}

// nearbySearchResponse is the subset of the Nearby Search JSON response the
// guide uses.
type nearbySearchResponse struct {
	Results      []nearbyPlace `json:"results"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
}

type nearbyPlace struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Vicinity         string   `json:"vicinity"`
	Rating           *float64 `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	Types            []string `json:"types"`
	Geometry         struct {
		Location models.Location `json:"location"`
	} `json:"geometry"`
	OpeningHours *struct {
		OpenNow *bool `json:"open_now"`
	} `json:"opening_hours"`
}

func (n nearbyPlace) toModel() models.Place {
	place := models.Place{
		PlaceID:          n.PlaceID,
		Name:             n.Name,
		Address:          n.Vicinity,
		Rating:           n.Rating,
		UserRatingsTotal: n.UserRatingsTotal,
		Types:            n.Types,
		Location:         n.Geometry.Location,
	}
	if n.OpeningHours != nil {
		place.OpenNow = n.OpeningHours.OpenNow
	}
	return place
}

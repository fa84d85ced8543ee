package models

// Default values of a place search, matching what the mobile app sends when a
// parameter is omitted.
const (
	DefaultPlaceType   = "tourist_attraction"
	DefaultPlaceRadius = 5000
	MaxPlaceRadius     = 50000
)

// Location is a geographic coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a point of interest returned by the third-party places service.
type Place struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Address          string   `json:"address,omitempty"`
	Rating           *float64 `json:"rating,omitempty"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	Types            []string `json:"types,omitempty"`
	Location         Location `json:"location"`
	OpenNow          *bool    `json:"open_now,omitempty"`
}

// PlaceSearch describes a nearby search around the configured city center.
type PlaceSearch struct {
	// Query is the free-text keyword sent to the places service.
	Query string `json:"query"`

	// Type restricts results to a single place type.
	Type string `json:"type"`

	// Radius is the search radius in meters.
	Radius int `json:"radius"`

	// MinRating, when set, drops places without a rating or rated below it.
	MinRating *float64 `json:"min_rating,omitempty"`
}

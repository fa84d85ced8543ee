// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients of the third-party services used by the
// city guide.
//
// The only adapter today is [PlacesAdapter], backed by the Google Places
// Nearby Search API over resty. Upstream failures are mapped to the sentinel
// errors in errors.go so that callers can use [errors.Is] without knowing
// about HTTP.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-city-guide/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/places_adapter_mock.go -package=mock

// PlacesAdapter searches points of interest around the configured city
// center.
type PlacesAdapter interface {
	// NearbySearch returns the places matching search. Every failure wraps
	// [ErrPlacesUnavailable]; a missing API key also wraps
	// [ErrPlacesNotConfigured].
	NearbySearch(ctx context.Context, search models.PlaceSearch) ([]models.Place, error)
}

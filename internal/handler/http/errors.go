// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while decoding a request, before any service is
// called. Callers can match against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the request body is not valid JSON for
	// the expected payload.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidForm is returned when a form-encoded login body cannot be
	// parsed.
	ErrInvalidForm = errors.New("invalid form was passed")

	// ErrInvalidPathParameter is returned when a numeric URL parameter such
	// as {favoriteID} is not a positive integer.
	ErrInvalidPathParameter = errors.New("invalid path parameter")

	// ErrInvalidQueryParameter is returned when a query parameter cannot be
	// parsed into its type.
	ErrInvalidQueryParameter = errors.New("invalid query parameter")

	errRouteNotFound = errors.New("route not found")
)

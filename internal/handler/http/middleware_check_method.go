// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler registered with
// [chi.Mux.MethodNotAllowed]. Instead of chi's 405 it answers 404 when the
// method is not registered for the matched route, so unsupported methods
// don't reveal which paths exist.
//
// Routes are matched by exact pattern against [http.Request.URL.Path];
// parameterised patterns such as /api/events/{eventID} never match and
// therefore always yield 404.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			writeError(w, r, errRouteNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

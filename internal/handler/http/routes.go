package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)

		r.Get("/api/search/place", h.searchPlaces)
		r.Get("/api/places/{placeID}/reviews", h.listReviews)

		r.Get("/api/events", h.listEvents)
		r.Get("/api/events/{eventID}", h.getEvent)

		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/me", h.me)
		r.Post("/api/user/logout", h.logout)

		r.Post("/api/user/favorites", h.addFavorite)
		r.Get("/api/user/favorites", h.listFavorites)
		r.Delete("/api/user/favorites/{favoriteID}", h.deleteFavorite)

		r.Post("/api/places/{placeID}/reviews", h.createReview)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

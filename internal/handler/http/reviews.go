package http

import (
	"net/http"

	"github.com/MKhiriev/go-city-guide/internal/service"
	"github.com/MKhiriev/go-city-guide/internal/utils"
	"github.com/MKhiriev/go-city-guide/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthorized)
		return
	}

	var request models.ReviewRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	review, err := h.services.ReviewService.CreateReview(ctx, user.UserID, chi.URLParam(r, "placeID"), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, review, http.StatusCreated)
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.services.ReviewService.ListReviews(r.Context(), chi.URLParam(r, "placeID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, reviews, http.StatusOK)
}

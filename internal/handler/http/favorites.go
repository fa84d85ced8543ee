package http

import (
	"net/http"

	"github.com/MKhiriev/go-city-guide/internal/service"
	"github.com/MKhiriev/go-city-guide/internal/utils"
	"github.com/MKhiriev/go-city-guide/models"
)

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthorized)
		return
	}

	var request models.FavoriteRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	favorite, err := h.services.FavoriteService.AddFavorite(ctx, user.UserID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, favorite, http.StatusCreated)
}

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthorized)
		return
	}

	favorites, err := h.services.FavoriteService.ListFavorites(ctx, user.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if favorites == nil {
		favorites = []models.Favorite{}
	}

	utils.WriteJSON(w, favorites, http.StatusOK)
}

func (h *Handler) deleteFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthorized)
		return
	}

	favoriteID, err := int64URLParam(r, "favoriteID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.FavoriteService.DeleteFavorite(ctx, user.UserID, favoriteID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

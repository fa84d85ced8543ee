package http

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-city-guide/internal/logger"
	"github.com/MKhiriev/go-city-guide/internal/service"
	"github.com/MKhiriev/go-city-guide/internal/utils"
	"github.com/MKhiriev/go-city-guide/models"
)

const tokenTypeBearer = "bearer"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var request models.RegisterRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusCreated)
}

// login accepts either the OAuth2 password form (username, password) or a
// JSON body (email, password).
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	request, err := decodeLoginRequest(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("jti", token.ID()).Msg("access token issued")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   token.ExpiresAt(),
	}, http.StatusOK)
}

func decodeLoginRequest(w http.ResponseWriter, r *http.Request) (models.LoginRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

		var err error
		if mediaType == "multipart/form-data" {
			err = r.ParseMultipartForm(maxRequestBodySize)
		} else {
			err = r.ParseForm()
		}
		if err != nil {
			return models.LoginRequest{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
		}

		email := r.PostFormValue("username")
		if email == "" {
			email = r.PostFormValue("email")
		}
		return models.LoginRequest{Email: email, Password: r.PostFormValue("password")}, nil
	default:
		var request models.LoginRequest
		if err := decodeJSON(w, r, &request); err != nil {
			return models.LoginRequest{}, err
		}
		return request, nil
	}
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrUnauthorized)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, ok := utils.GetTokenFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthorized)
		return
	}

	if err := h.services.AuthService.Logout(ctx, token); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

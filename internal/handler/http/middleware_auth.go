package http

import (
	"net/http"

	"github.com/MKhiriev/go-city-guide/internal/logger"
	"github.com/MKhiriev/go-city-guide/internal/service"
	"github.com/MKhiriev/go-city-guide/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It extracts the token from the "Authorization" header, resolves the
// principal with [service.AuthService.Authenticate] and stores the user and
// the decoded token in the request context (see [utils.WithUser] and
// [utils.WithToken]).
//
// A missing or malformed header is answered exactly like an invalid token:
// 401 with the [service.ErrUnauthorized] message and a
// "WWW-Authenticate: Bearer" challenge.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Str("func", "*Handler.auth").Msg("no bearer token")
			writeError(w, r, service.ErrUnauthorized)
			return
		}

		ctx := r.Context()
		user, token, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = utils.WithUser(ctx, user)
		ctx = utils.WithToken(ctx, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/MKhiriev/go-city-guide/internal/service"
	"github.com/MKhiriev/go-city-guide/internal/store"
	"github.com/MKhiriev/go-city-guide/internal/validators"
	"github.com/MKhiriev/go-city-guide/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v))
	return v
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{
			name:       "created",
			body:       `{"email":"alice@example.com","name":"Alice","password":"secret123"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid json",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantError:  ErrInvalidJSON.Error(),
		},
		{
			name:       "validation error",
			body:       `{"email":"alice","name":"Alice","password":"secret123"}`,
			serviceErr: validators.ErrValidation,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate email",
			body:       `{"email":"alice@example.com","name":"Alice","password":"secret123"}`,
			serviceErr: store.ErrEmailAlreadyExists,
			wantStatus: http.StatusConflict,
			wantError:  store.ErrEmailAlreadyExists.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.AuthService = &mockAuthService{
				registerFn: func(_ context.Context, request models.RegisterRequest) (models.User, error) {
					if tt.serviceErr != nil {
						return models.User{}, tt.serviceErr
					}
					return models.User{UserID: 1, Email: request.Email, Name: request.Name, PasswordHash: "hash"}, nil
				},
			}

			rec := doRequest(t, newTestRouter(t, services), http.MethodPost, "/api/user/register", tt.body,
				map[string]string{"Content-Type": "application/json"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.NotContains(t, rec.Body.String(), "hash")
				assert.NotContains(t, rec.Body.String(), "secret123")
				user := decodeBody[models.User](t, rec.Body.Bytes())
				assert.Equal(t, "alice@example.com", user.Email)
				return
			}
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeBody[models.ErrorResponse](t, rec.Body.Bytes()).Error)
			}
		})
	}
}

func TestLogin_JSON(t *testing.T) {
	expiresAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	token := models.Token{SignedString: "signed"}
	token.Claims.ID = "jti"
	token.Claims.Subject = "alice@example.com"

	services := newTestServices()
	services.AuthService = &mockAuthService{
		loginFn: func(_ context.Context, request models.LoginRequest) (models.Token, error) {
			assert.Equal(t, models.LoginRequest{Email: "alice@example.com", Password: "secret123"}, request)
			tok := token
			tok.Claims.ExpiresAt = jwt.NewNumericDate(expiresAt)
			return tok, nil
		},
	}

	rec := doRequest(t, newTestRouter(t, services), http.MethodPost, "/api/user/login",
		`{"email":"alice@example.com","password":"secret123"}`, map[string]string{"Content-Type": "application/json"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed", rec.Header().Get("Authorization"))

	response := decodeBody[models.TokenResponse](t, rec.Body.Bytes())
	assert.Equal(t, "signed", response.AccessToken)
	assert.Equal(t, "bearer", response.TokenType)
	assert.True(t, expiresAt.Equal(response.ExpiresAt))
}

func TestLogin_Form(t *testing.T) {
	services := newTestServices()
	services.AuthService = &mockAuthService{
		loginFn: func(_ context.Context, request models.LoginRequest) (models.Token, error) {
			assert.Equal(t, "alice@example.com", request.Email)
			assert.Equal(t, "secret123", request.Password)
			return models.Token{SignedString: "signed"}, nil
		},
	}

	form := url.Values{"username": {"alice@example.com"}, "password": {"secret123"}, "grant_type": {"password"}}
	rec := doRequest(t, newTestRouter(t, services), http.MethodPost, "/api/user/login", form.Encode(),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	services := newTestServices()
	services.AuthService = &mockAuthService{
		loginFn: func(context.Context, models.LoginRequest) (models.Token, error) {
			return models.Token{}, service.ErrInvalidCredentials
		},
	}

	rec := doRequest(t, newTestRouter(t, services), http.MethodPost, "/api/user/login",
		`{"email":"alice@example.com","password":"wrong"}`, map[string]string{"Content-Type": "application/json"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	assert.Empty(t, rec.Header().Get("Authorization"))
	assert.Equal(t, service.ErrInvalidCredentials.Error(), decodeBody[models.ErrorResponse](t, rec.Body.Bytes()).Error)
}

func TestMe(t *testing.T) {
	router := newTestRouter(t, newTestServices())

	rec := doRequest(t, router, http.MethodGet, "/api/user/me", "", bearer())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testPrincipal.Email, decodeBody[models.User](t, rec.Body.Bytes()).Email)

	rec = doRequest(t, router, http.MethodGet, "/api/user/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout(t *testing.T) {
	var revoked models.Token

	services := newTestServices()
	auth := acceptingAuth()
	auth.logoutFn = func(_ context.Context, token models.Token) error {
		revoked = token
		return nil
	}
	services.AuthService = auth

	rec := doRequest(t, newTestRouter(t, services), http.MethodPost, "/api/user/logout", "", bearer())

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "jti-1", revoked.ID())
}

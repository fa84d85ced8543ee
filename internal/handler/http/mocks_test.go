package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-city-guide/internal/config"
	"github.com/MKhiriev/go-city-guide/internal/logger"
	"github.com/MKhiriev/go-city-guide/internal/service"
	"github.com/MKhiriev/go-city-guide/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn     func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, request models.LoginRequest) (models.Token, error)
	authenticateFn func(ctx context.Context, tokenString string) (models.User, models.Token, error)
	logoutFn       func(ctx context.Context, token models.Token) error
}

func (m *mockAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.User, models.Token, error) {
	return m.authenticateFn(ctx, tokenString)
}

func (m *mockAuthService) Resolve(ctx context.Context, tokenString string) (models.User, error) {
	user, _, err := m.authenticateFn(ctx, tokenString)
	return user, err
}

func (m *mockAuthService) Logout(ctx context.Context, token models.Token) error {
	return m.logoutFn(ctx, token)
}

type mockFavoriteService struct {
	addFn    func(ctx context.Context, userID int64, request models.FavoriteRequest) (models.Favorite, error)
	listFn   func(ctx context.Context, userID int64) ([]models.Favorite, error)
	deleteFn func(ctx context.Context, userID, favoriteID int64) error
}

func (m *mockFavoriteService) AddFavorite(ctx context.Context, userID int64, request models.FavoriteRequest) (models.Favorite, error) {
	return m.addFn(ctx, userID, request)
}

func (m *mockFavoriteService) ListFavorites(ctx context.Context, userID int64) ([]models.Favorite, error) {
	return m.listFn(ctx, userID)
}

func (m *mockFavoriteService) DeleteFavorite(ctx context.Context, userID, favoriteID int64) error {
	return m.deleteFn(ctx, userID, favoriteID)
}

type mockReviewService struct {
	createFn func(ctx context.Context, userID int64, placeID string, request models.ReviewRequest) (models.Review, error)
	listFn   func(ctx context.Context, placeID string) (models.PlaceReviews, error)
}

func (m *mockReviewService) CreateReview(ctx context.Context, userID int64, placeID string, request models.ReviewRequest) (models.Review, error) {
	return m.createFn(ctx, userID, placeID, request)
}

func (m *mockReviewService) ListReviews(ctx context.Context, placeID string) (models.PlaceReviews, error) {
	return m.listFn(ctx, placeID)
}

type mockEventService struct {
	listFn func(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
	getFn  func(ctx context.Context, eventID int64) (models.Event, error)
}

func (m *mockEventService) ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	return m.listFn(ctx, filter)
}

func (m *mockEventService) GetEvent(ctx context.Context, eventID int64) (models.Event, error) {
	return m.getFn(ctx, eventID)
}

func (m *mockEventService) SeedEvents(context.Context) (int64, error) {
	return 0, nil
}

type mockPlaceService struct {
	searchFn func(ctx context.Context, search models.PlaceSearch) ([]models.Place, error)
}

func (m *mockPlaceService) SearchPlaces(ctx context.Context, search models.PlaceSearch) ([]models.Place, error) {
	return m.searchFn(ctx, search)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const validToken = "valid-token"

var testPrincipal = models.User{UserID: 7, Email: "alice@example.com", Name: "Alice"}

func testToken() models.Token {
	token := models.Token{SignedString: validToken}
	token.Claims.ID = "jti-1"
	token.Claims.Subject = testPrincipal.Email
	return token
}

// acceptingAuth resolves validToken to testPrincipal and rejects anything
// else.
func acceptingAuth() *mockAuthService {
	return &mockAuthService{
		authenticateFn: func(_ context.Context, tokenString string) (models.User, models.Token, error) {
			if tokenString != validToken {
				return models.User{}, models.Token{}, service.ErrUnauthorized
			}
			return testPrincipal, testToken(), nil
		},
	}
}

// newTestServices fills every service with a mock; the caller overrides the
// ones a test cares about.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:     acceptingAuth(),
		FavoriteService: &mockFavoriteService{},
		ReviewService:   &mockReviewService{},
		EventService:    &mockEventService{},
		PlaceService:    &mockPlaceService{},
		AppInfoService:  &mockAppInfoService{version: "test"},
	}
}

func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()
	cfg := config.Server{AllowedOrigins: []string{"*"}}
	return NewHandler(services, cfg, logger.Nop()).Init()
}

func doRequest(t *testing.T, router http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func bearer() map[string]string {
	return map[string]string{"Authorization": "Bearer " + validToken}
}

package service

import (
	"context"

	"github.com/MKhiriev/go-city-guide/models"
)

// AuthService registers users, issues access tokens and resolves the
// principal behind a token.
type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// Login checks the credentials and issues a token with the default
	// lifetime. Unknown email and wrong password both yield
	// [ErrInvalidCredentials].
	Login(ctx context.Context, request models.LoginRequest) (models.Token, error)

	// Authenticate verifies tokenString and loads the user named by its
	// subject. Every token failure yields [ErrUnauthorized].
	Authenticate(ctx context.Context, tokenString string) (models.User, models.Token, error)

	// Resolve is Authenticate without the decoded token.
	Resolve(ctx context.Context, tokenString string) (models.User, error)

	// Logout revokes token until it expires.
	Logout(ctx context.Context, token models.Token) error
}

type FavoriteService interface {
	AddFavorite(ctx context.Context, userID int64, request models.FavoriteRequest) (models.Favorite, error)
	ListFavorites(ctx context.Context, userID int64) ([]models.Favorite, error)
	DeleteFavorite(ctx context.Context, userID, favoriteID int64) error
}

type ReviewService interface {
	CreateReview(ctx context.Context, userID int64, placeID string, request models.ReviewRequest) (models.Review, error)

	// ListReviews returns the reviews of the place with their average
	// rating rounded to one decimal.
	ListReviews(ctx context.Context, placeID string) (models.PlaceReviews, error)
}

type EventService interface {
	ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
	GetEvent(ctx context.Context, eventID int64) (models.Event, error)

	// SeedEvents stores the curated events that are missing and returns how
	// many were inserted.
	SeedEvents(ctx context.Context) (int64, error)
}

type PlaceService interface {
	// SearchPlaces fills in defaults, queries the places adapter and drops
	// places rated below search.MinRating.
	SearchPlaces(ctx context.Context, search models.PlaceSearch) ([]models.Place, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

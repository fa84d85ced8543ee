package store

import (
	"context"

	"github.com/MKhiriev/go-city-guide/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store: a user lookup by email and a
// write-once insert.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user whose email equals email exactly, or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

type FavoriteRepository interface {
	AddFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error)
	ListFavorites(ctx context.Context, userID int64) ([]models.Favorite, error)
	DeleteFavorite(ctx context.Context, userID, favoriteID int64) error
}

type ReviewRepository interface {
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)
	ListReviews(ctx context.Context, placeID string) ([]models.Review, error)
}

type EventRepository interface {
	ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
	GetEvent(ctx context.Context, eventID int64) (models.Event, error)

	// SaveEvents inserts events, skipping those whose (name, starts_at) pair
	// already exists, and returns the number of inserted rows.
	SaveEvents(ctx context.Context, events []models.Event) (int64, error)
}

// ErrorClassificator inspects driver-specific errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}

package models

import "time"

// Favorite is a place saved by a user into their personal guide.
type Favorite struct {
	// FavoriteID is the internal unique identifier of the favorite.
	FavoriteID int64 `json:"id"`

	// UserID is the owner of the favorite.
	UserID int64 `json:"user_id"`

	// PlaceID is the identifier of the place at the third-party places service.
	PlaceID string `json:"place_id"`

	// PlaceName is the place name as shown to the user when it was saved.
	PlaceName string `json:"place_name"`

	CreatedAt time.Time `json:"created_at"`
}

package models

import "time"

// RegisterRequest is the payload of POST /api/user/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest is the payload of POST /api/user/login. It is decoded either
// from JSON or from the OAuth2 password form, where Email travels as "username".
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned on a successful login.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// FavoriteRequest is the payload of POST /api/user/favorites.
type FavoriteRequest struct {
	PlaceID   string `json:"place_id"`
	PlaceName string `json:"place_name"`
}

// ReviewRequest is the payload of POST /api/places/{placeID}/reviews.
type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ErrorResponse is the uniform JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

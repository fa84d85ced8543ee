package models

import "time"

// Rating bounds accepted for a review.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating with an optional comment left by a user on a place.
type Review struct {
	ReviewID  int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	PlaceID   string    `json:"place_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PlaceReviews aggregates all reviews of a single place.
type PlaceReviews struct {
	PlaceID string   `json:"place_id"`
	Average float64  `json:"average"`
	Count   int      `json:"count"`
	Reviews []Review `json:"reviews"`
}

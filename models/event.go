package models

import "time"

// Event is a curated local event (concert, festival, fair) shown in the guide.
type Event struct {
	EventID     int64     `json:"id"`
	Name        string    `json:"name"`
	StartsAt    time.Time `json:"starts_at"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url,omitempty"`
}

// EventFilter narrows an event listing.
type EventFilter struct {
	// From, when non-zero, excludes events starting before it.
	From time.Time `json:"from"`

	// Limit caps the number of returned events. Zero means no limit.
	Limit uint64 `json:"limit"`
}

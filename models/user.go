package models

import "time"

// User represents an account of the city guide.
// It is the principal resolved from every access token.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique login identifier, stored exactly as submitted.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Password carries the plaintext password on its way from the transport
	// layer to the auth service. It is never persisted nor serialised.
	Password string `json:"-"`

	// PasswordHash is the algorithm-tagged bcrypt digest of the password.
	// It never leaves the server.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was registered.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

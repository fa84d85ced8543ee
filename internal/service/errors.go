package service

import "errors"

var (
	// ErrInvalidCredentials is returned by login for an unknown email and for
	// a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized is returned for every failure to resolve a principal
	// from an access token. The cause is only logged.
	ErrUnauthorized = errors.New("invalid or expired credentials")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrPasswordHashingFailed = errors.New("password hashing failed")
	ErrEmptyPlaceID          = errors.New("place id is empty")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

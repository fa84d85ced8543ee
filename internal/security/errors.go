package security

import "errors"

var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token expired")
	ErrEmptySubject    = errors.New("token subject is empty")
	ErrInvalidTokenTTL = errors.New("token ttl must be at least one second")
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
	ErrHashingPassword = errors.New("error hashing password")
)

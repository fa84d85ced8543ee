package config

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the root of every validation error. The server must not
// serve authenticated traffic when it is returned.
var ErrConfiguration = errors.New("configuration error")

// Validation errors returned by [StructuredConfig.validate]. All of them wrap
// [ErrConfiguration].
var (
	// ErrMissingTokenSignKey indicates that no token signing secret was provided.
	ErrMissingTokenSignKey = fmt.Errorf("%w: token sign key is not set", ErrConfiguration)
	// ErrMissingTokenAlgorithm indicates that no token signing algorithm was provided.
	ErrMissingTokenAlgorithm = fmt.Errorf("%w: token algorithm is not set", ErrConfiguration)
	// ErrUnsupportedTokenAlgorithm indicates an algorithm outside the HMAC family.
	ErrUnsupportedTokenAlgorithm = fmt.Errorf("%w: unsupported token algorithm", ErrConfiguration)
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a negative token lifetime).
	ErrInvalidAppConfigs = fmt.Errorf("%w: invalid app configuration", ErrConfiguration)
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = fmt.Errorf("%w: invalid storage configuration", ErrConfiguration)
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = fmt.Errorf("%w: invalid server configuration", ErrConfiguration)
)

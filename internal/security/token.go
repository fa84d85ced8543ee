// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-city-guide/internal/config"
	"github.com/MKhiriev/go-city-guide/internal/utils"
	"github.com/MKhiriev/go-city-guide/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenManager issues and verifies HMAC-signed access tokens.
//
// The signing key, algorithm and default lifetime are fixed at construction
// and never mutated, so a single TokenManager may be shared by all
// goroutines.
type TokenManager struct {
	method jwt.SigningMethod
	key    []byte
	ttl    time.Duration
	now    func() time.Time
	ids    *utils.UUIDGenerator
}

// TokenManagerOption customises a TokenManager at construction time.
type TokenManagerOption func(*TokenManager)

// WithClock replaces the wall clock used for "iat", "exp" and expiry checks.
func WithClock(now func() time.Time) TokenManagerOption {
	return func(m *TokenManager) {
		m.now = now
	}
}

// NewTokenManager builds a TokenManager from the application config.
//
// It refuses to build one when the signing key is empty or the algorithm is
// not an HMAC algorithm; the returned errors wrap [config.ErrConfiguration].
// A zero TokenExpireMinutes falls back to
// [config.DefaultTokenExpireMinutes].
func NewTokenManager(cfg config.App, opts ...TokenManagerOption) (*TokenManager, error) {
	if cfg.TokenSignKey == "" {
		return nil, config.ErrMissingTokenSignKey
	}
	if cfg.TokenAlgorithm == "" {
		return nil, config.ErrMissingTokenAlgorithm
	}

	method, ok := jwt.GetSigningMethod(cfg.TokenAlgorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedTokenAlgorithm, cfg.TokenAlgorithm)
	}

	ttl := cfg.TokenDuration()
	if ttl <= 0 {
		ttl = config.DefaultTokenExpireMinutes * time.Minute
	}

	m := &TokenManager{
		method: method,
		key:    []byte(cfg.TokenSignKey),
		ttl:    ttl,
		now:    time.Now,
		ids:    utils.NewUUIDGenerator(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Algorithm returns the name of the signing algorithm.
func (m *TokenManager) Algorithm() string {
	return m.method.Alg()
}

// DefaultTTL returns the lifetime applied when Issue is called without a ttl.
func (m *TokenManager) DefaultTTL() time.Duration {
	return m.ttl
}

// Issue signs a new token for subject. Without ttl the configured default
// lifetime is used. Only the first ttl is honoured.
//
// Claims are sub, iat (now, UTC), exp (iat + ttl) and a fresh jti. Lifetimes
// under one second are rejected since exp must stay strictly after iat at the
// one-second precision of the claims.
func (m *TokenManager) Issue(subject string, ttl ...time.Duration) (models.Token, error) {
	if subject == "" {
		return models.Token{}, ErrEmptySubject
	}

	lifetime := m.ttl
	if len(ttl) > 0 {
		lifetime = ttl[0]
	}
	if lifetime < time.Second {
		return models.Token{}, fmt.Errorf("%w: got %s", ErrInvalidTokenTTL, lifetime)
	}

	now := m.now().UTC()
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			ID:        m.ids.Generate(),
		},
	}

	signed, err := jwt.NewWithClaims(m.method, claims).SignedString(m.key)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: signed}, nil
}

// Parse verifies tokenString and returns its claims.
//
// The token is rejected when it is malformed, its algorithm differs from the
// configured one, the signature does not verify, exp is missing or not after
// the current time, iat lies in the future, or sub is empty. Every such
// error wraps [ErrInvalidToken]; an expired token additionally wraps
// [ErrTokenExpired].
func (m *TokenManager) Parse(tokenString string) (models.Token, error) {
	var claims models.Claims

	parsed, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return m.key, nil
	},
		jwt.WithValidMethods([]string{m.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, ErrTokenExpired)
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return models.Token{}, ErrInvalidToken
	}

	if claims.Subject == "" {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, ErrEmptySubject)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-city-guide/internal/logger"
	"github.com/MKhiriev/go-city-guide/internal/security"
	"github.com/MKhiriev/go-city-guide/internal/store"
	"github.com/MKhiriev/go-city-guide/internal/validators"
	"github.com/MKhiriev/go-city-guide/models"
)

// dummyPassword is hashed once at construction. Logins for unknown emails
// verify against that hash so they cost as much as a wrong password.
const dummyPassword = "go-city-guide-dummy-password"

// authService is the concrete implementation of AuthService.
type authService struct {
	// userRepository is the credential store.
	userRepository store.UserRepository

	hasher   *security.BcryptHasher
	tokens   *security.TokenManager
	denylist *security.Denylist

	validator validators.Validator

	// dummyHash is compared against when the login email is unknown.
	dummyHash string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. The returned service is safe for
// concurrent use: apart from the denylist all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher *security.BcryptHasher,
	tokens *security.TokenManager,
	denylist *security.Denylist,
	validator validators.Validator,
	logger *logger.Logger,
) AuthService {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		logger.Warn().Err(err).Str("func", "NewAuthService").Msg("failed to prepare dummy hash")
	}

	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		denylist:       denylist,
		validator:      validator,
		dummyHash:      dummyHash,
		logger:         logger,
	}
}

// Register validates the request, hashes the password and stores the user.
//
// Returns the persisted user or:
//   - an error wrapping validators.ErrValidation for a malformed request;
//   - store.ErrEmailAlreadyExists when the email is taken;
//   - ErrPasswordHashingFailed when bcrypt refuses the password.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("func", "authService.Register").Msg("invalid register request")
		return models.User{}, err
	}

	hash, err := a.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        request.Email,
		Name:         request.Name,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "authService.Register").Int64("id", user.UserID).Msg("user registered")
	return user, nil
}

// Login authenticates the user and issues an access token for their email.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("func", "authService.Login").Msg("invalid login request")
		return models.Token{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			a.hasher.Verify(request.Password, a.dummyHash)
			log.Info().Str("func", "authService.Login").Msg("login failed: unknown email")
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "authService.Login").Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(request.Password, user.PasswordHash) {
		log.Info().Str("func", "authService.Login").Int64("id", user.UserID).Msg("login failed: wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(user.Email)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Int64("id", user.UserID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("func", "authService.Login").Int64("id", user.UserID).Msg("user logged in")
	return token, nil
}

// Authenticate verifies the token, checks it was not revoked and loads the
// user named by its subject.
//
// Token and principal failures return ErrUnauthorized with the reason logged
// only. A failing store (anything but store.ErrNoUserWasFound) is returned
// wrapped, since it says nothing about the credential.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		log.Debug().Str("func", "authService.Authenticate").Msg("empty token")
		return models.User{}, models.Token{}, ErrUnauthorized
	}

	token, err := a.tokens.Parse(tokenString)
	if err != nil {
		log.Info().Err(err).Str("func", "authService.Authenticate").Msg("token rejected")
		return models.User{}, models.Token{}, ErrUnauthorized
	}

	if a.denylist.IsRevoked(token.ID()) {
		log.Info().Str("func", "authService.Authenticate").Str("jti", token.ID()).Msg("token was revoked")
		return models.User{}, models.Token{}, ErrUnauthorized
	}

	user, err := a.userRepository.FindUserByEmail(ctx, token.Subject())
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("func", "authService.Authenticate").Str("jti", token.ID()).Msg("token subject matches no user")
			return models.User{}, models.Token{}, ErrUnauthorized
		}
		log.Err(err).Str("func", "authService.Authenticate").Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return user, token, nil
}

func (a *authService) Resolve(ctx context.Context, tokenString string) (models.User, error) {
	user, _, err := a.Authenticate(ctx, tokenString)
	return user, err
}

// Logout puts the token's ID on the denylist until the token expires.
func (a *authService) Logout(ctx context.Context, token models.Token) error {
	if token.ID() == "" {
		return ErrUnauthorized
	}

	a.denylist.Revoke(token.ID(), token.ExpiresAt())

	logger.FromContext(ctx).Info().
		Str("func", "authService.Logout").
		Str("jti", token.ID()).
		Time("expires_at", token.ExpiresAt()).
		Msg("token revoked")
	return nil
}

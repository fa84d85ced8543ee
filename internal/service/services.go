package service

import (
	"fmt"

	"github.com/MKhiriev/go-city-guide/internal/adapter"
	"github.com/MKhiriev/go-city-guide/internal/config"
	"github.com/MKhiriev/go-city-guide/internal/logger"
	"github.com/MKhiriev/go-city-guide/internal/security"
	"github.com/MKhiriev/go-city-guide/internal/store"
	"github.com/MKhiriev/go-city-guide/internal/validators"
)

type Services struct {
	AuthService     AuthService
	FavoriteService FavoriteService
	ReviewService   ReviewService
	EventService    EventService
	PlaceService    PlaceService
	AppInfoService  AppInfoService
}

// NewServices wires every service. It fails when the token settings in
// cfg.App cannot produce a token manager or the version is missing.
func NewServices(
	repositories *store.Repositories,
	placesAdapter adapter.PlacesAdapter,
	denylist *security.Denylist,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	tokens, err := security.NewTokenManager(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating token manager: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()
	hasher := security.NewBcryptHasher(cfg.App.PasswordHashCost)

	return &Services{
		AuthService:     NewAuthService(repositories.UserRepository, hasher, tokens, denylist, validator, logger),
		FavoriteService: NewFavoriteService(repositories.FavoriteRepository, validator, logger),
		ReviewService:   NewReviewService(repositories.ReviewRepository, validator, logger),
		EventService:    NewEventService(repositories.EventRepository, validator, logger),
		PlaceService:    NewPlaceService(placesAdapter, validator, logger),
		AppInfoService:  appInfoService,
	}, nil
}

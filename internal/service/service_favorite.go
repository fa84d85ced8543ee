package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-city-guide/internal/logger"
	"github.com/MKhiriev/go-city-guide/internal/store"
	"github.com/MKhiriev/go-city-guide/internal/validators"
	"github.com/MKhiriev/go-city-guide/models"
)

type favoriteService struct {
	favoriteRepository store.FavoriteRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewFavoriteService(favoriteRepository store.FavoriteRepository, validator validators.Validator, logger *logger.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		validator:          validator,
		logger:             logger,
	}
}

func (f *favoriteService) AddFavorite(ctx context.Context, userID int64, request models.FavoriteRequest) (models.Favorite, error) {
	if err := f.validator.Validate(ctx, request); err != nil {
		return models.Favorite{}, err
	}

	favorite, err := f.favoriteRepository.AddFavorite(ctx, models.Favorite{
		UserID:    userID,
		PlaceID:   request.PlaceID,
		PlaceName: request.PlaceName,
	})
	if err != nil {
		return models.Favorite{}, fmt.Errorf("adding favorite failed: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "favoriteService.AddFavorite").
		Int64("user_id", userID).
		Int64("favorite_id", favorite.FavoriteID).
		Msg("favorite added")
	return favorite, nil
}

func (f *favoriteService) ListFavorites(ctx context.Context, userID int64) ([]models.Favorite, error) {
	return f.favoriteRepository.ListFavorites(ctx, userID)
}

func (f *favoriteService) DeleteFavorite(ctx context.Context, userID, favoriteID int64) error {
	return f.favoriteRepository.DeleteFavorite(ctx, userID, favoriteID)
}

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-city-guide/internal/logger"
	"github.com/MKhiriev/go-city-guide/models"
)

type favoriteRepository struct {
	*DB
	logger *logger.Logger
}

func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	return &favoriteRepository{
		DB:     db,
		logger: logger,
	}
}

// AddFavorite saves the place for the user. Saving the same place twice
// yields [ErrFavoriteAlreadyExists].
func (f *favoriteRepository) AddFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	favorite.CreatedAt = nowUTC()
	query, args, err := buildAddFavoriteQuery(f.builder, favorite)
	if err != nil {
		return models.Favorite{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := f.QueryRowContext(ctx, query, args...).Scan(&favorite.FavoriteID); err != nil {
		log.Err(err).
			Str("func", "favoriteRepository.AddFavorite").
			Int64("user_id", favorite.UserID).
			Str("place_id", favorite.PlaceID).
			Msg("failed to insert favorite")

		classified := f.classify(err)
		if errors.Is(classified, errUniqueViolation) {
			return models.Favorite{}, ErrFavoriteAlreadyExists
		}
		return models.Favorite{}, classified
	}

	return favorite, nil
}

// ListFavorites returns the user's favorites, newest first. An empty result
// is an empty slice.
func (f *favoriteRepository) ListFavorites(ctx context.Context, userID int64) ([]models.Favorite, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFavoritesQuery(f.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := f.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "favoriteRepository.ListFavorites").
			Int64("user_id", userID).
			Msg("failed to execute query for listing favorites")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, f.classify(err))
	}
	defer rows.Close()

	favorites := make([]models.Favorite, 0)
	for rows.Next() {
		var item models.Favorite
		if err := rows.Scan(&item.FavoriteID, &item.UserID, &item.PlaceID, &item.PlaceName, &item.CreatedAt); err != nil {
			log.Err(err).
				Str("func", "favoriteRepository.ListFavorites").
				Int64("user_id", userID).
				Msg("failed to scan favorite row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		favorites = append(favorites, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return favorites, nil
}

// DeleteFavorite removes a favorite owned by the user. Deleting another
// user's favorite is reported exactly like a missing one.
func (f *favoriteRepository) DeleteFavorite(ctx context.Context, userID, favoriteID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteFavoriteQuery(f.builder, userID, favoriteID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := f.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "favoriteRepository.DeleteFavorite").
			Int64("user_id", userID).
			Int64("favorite_id", favoriteID).
			Msg("failed to delete favorite")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, f.classify(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-city-guide/internal/logger"
	"github.com/MKhiriev/go-city-guide/models"
)

type reviewRepository struct {
	*DB
	logger *logger.Logger
}

func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	return &reviewRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateReview stores the review. A second review of the same place by the
// same user yields [ErrReviewAlreadyExists].
func (r *reviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	review.CreatedAt = nowUTC()
	query, args, err := buildCreateReviewQuery(r.builder, review)
	if err != nil {
		return models.Review{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.QueryRowContext(ctx, query, args...).Scan(&review.ReviewID); err != nil {
		log.Err(err).
			Str("func", "reviewRepository.CreateReview").
			Int64("user_id", review.UserID).
			Str("place_id", review.PlaceID).
			Msg("failed to insert review")

		classified := r.classify(err)
		if errors.Is(classified, errUniqueViolation) {
			return models.Review{}, ErrReviewAlreadyExists
		}
		return models.Review{}, classified
	}

	return review, nil
}

// ListReviews returns all reviews of the place, newest first.
func (r *reviewRepository) ListReviews(ctx context.Context, placeID string) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListReviewsQuery(r.builder, placeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "reviewRepository.ListReviews").
			Str("place_id", placeID).
			Msg("failed to execute query for listing reviews")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.classify(err))
	}
	defer rows.Close()

	reviews := make([]models.Review, 0)
	for rows.Next() {
		var item models.Review
		if err := rows.Scan(&item.ReviewID, &item.UserID, &item.PlaceID, &item.Rating, &item.Comment, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		reviews = append(reviews, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reviews, nil
}

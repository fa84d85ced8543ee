package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/go-city-guide/internal/logger"
	"github.com/MKhiriev/go-city-guide/internal/store"
	"github.com/MKhiriev/go-city-guide/internal/validators"
	"github.com/MKhiriev/go-city-guide/models"
)

type reviewService struct {
	reviewRepository store.ReviewRepository
	validator        validators.Validator

	logger *logger.Logger
}

func NewReviewService(reviewRepository store.ReviewRepository, validator validators.Validator, logger *logger.Logger) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		validator:        validator,
		logger:           logger,
	}
}

func (r *reviewService) CreateReview(ctx context.Context, userID int64, placeID string, request models.ReviewRequest) (models.Review, error) {
	placeID = strings.TrimSpace(placeID)
	if placeID == "" {
		return models.Review{}, ErrEmptyPlaceID
	}
	if err := r.validator.Validate(ctx, request); err != nil {
		return models.Review{}, err
	}

	review, err := r.reviewRepository.CreateReview(ctx, models.Review{
		UserID:  userID,
		PlaceID: placeID,
		Rating:  request.Rating,
		Comment: request.Comment,
	})
	if err != nil {
		return models.Review{}, fmt.Errorf("creating review failed: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "reviewService.CreateReview").
		Int64("user_id", userID).
		Str("place_id", placeID).
		Int("rating", review.Rating).
		Msg("review created")
	return review, nil
}

func (r *reviewService) ListReviews(ctx context.Context, placeID string) (models.PlaceReviews, error) {
	placeID = strings.TrimSpace(placeID)
	if placeID == "" {
		return models.PlaceReviews{}, ErrEmptyPlaceID
	}

	reviews, err := r.reviewRepository.ListReviews(ctx, placeID)
	if err != nil {
		return models.PlaceReviews{}, fmt.Errorf("listing reviews failed: %w", err)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	return models.PlaceReviews{
		PlaceID: placeID,
		Average: averageRating(reviews),
		Count:   len(reviews),
		Reviews: reviews,
	}, nil
}

// averageRating is rounded to one decimal; zero for no reviews.
func averageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	return math.Round(float64(sum)/float64(len(reviews))*10) / 10
}

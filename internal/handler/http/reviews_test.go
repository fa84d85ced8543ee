package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-city-guide/internal/store"
	"github.com/MKhiriev/go-city-guide/internal/validators"
	"github.com/MKhiriev/go-city-guide/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReview(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		headers    map[string]string
		serviceErr error
		wantStatus int
	}{
		{name: "created", body: `{"rating":5,"comment":"Lindo"}`, headers: bearer(), wantStatus: http.StatusCreated},
		{name: "no token", body: `{"rating":5}`, wantStatus: http.StatusUnauthorized},
		{name: "invalid rating", body: `{"rating":7}`, headers: bearer(), serviceErr: validators.ErrValidation, wantStatus: http.StatusBadRequest},
		{name: "second review", body: `{"rating":4}`, headers: bearer(), serviceErr: store.ErrReviewAlreadyExists, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.ReviewService = &mockReviewService{
				createFn: func(_ context.Context, userID int64, placeID string, request models.ReviewRequest) (models.Review, error) {
					assert.Equal(t, "ChIJ1", placeID)
					if tt.serviceErr != nil {
						return models.Review{}, tt.serviceErr
					}
					return models.Review{ReviewID: 1, UserID: userID, PlaceID: placeID, Rating: request.Rating}, nil
				},
			}

			rec := doRequest(t, newTestRouter(t, services), http.MethodPost, "/api/places/ChIJ1/reviews", tt.body, tt.headers)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestListReviews_Public(t *testing.T) {
	services := newTestServices()
	services.ReviewService = &mockReviewService{
		listFn: func(_ context.Context, placeID string) (models.PlaceReviews, error) {
			return models.PlaceReviews{PlaceID: placeID, Average: 4.5, Count: 2, Reviews: []models.Review{{Rating: 4}, {Rating: 5}}}, nil
		},
	}

	rec := doRequest(t, newTestRouter(t, services), http.MethodGet, "/api/places/ChIJ1/reviews", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	reviews := decodeBody[models.PlaceReviews](t, rec.Body.Bytes())
	assert.Equal(t, "ChIJ1", reviews.PlaceID)
	assert.Equal(t, 4.5, reviews.Average)
	assert.Equal(t, 2, reviews.Count)
}

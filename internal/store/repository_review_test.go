package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-city-guide/internal/logger"
	"github.com/MKhiriev/go-city-guide/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReview(t *testing.T) {
	review := models.Review{UserID: 1, PlaceID: "place-1", Rating: 5, Comment: "Lindo"}

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewReviewRepository(db, logger.Nop())

		mock.ExpectQuery("INSERT INTO reviews \\(user_id,place_id,rating,comment,created_at\\)").
			WithArgs(review.UserID, review.PlaceID, review.Rating, review.Comment, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"review_id"}).AddRow(3))

		created, err := repo.CreateReview(context.Background(), review)
		require.NoError(t, err)
		assert.Equal(t, int64(3), created.ReviewID)
		assert.Equal(t, 5, created.Rating)
	})

	t.Run("second review", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewReviewRepository(db, logger.Nop())

		mock.ExpectQuery("INSERT INTO reviews").
			WillReturnError(pgError(pgerrcode.UniqueViolation))

		_, err := repo.CreateReview(context.Background(), review)
		assert.ErrorIs(t, err, ErrReviewAlreadyExists)
	})
}

func TestListReviews(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db, logger.Nop())

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT review_id, user_id, place_id, rating, comment, created_at FROM reviews WHERE place_id = \\$1").
		WithArgs("place-1").
		WillReturnRows(sqlmock.NewRows(reviewColumns).
			AddRow(2, 2, "place-1", 4, "", now).
			AddRow(1, 1, "place-1", 5, "Lindo", now.Add(-time.Minute)))

	reviews, err := repo.ListReviews(context.Background(), "place-1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, 4, reviews[0].Rating)
	assert.Equal(t, "Lindo", reviews[1].Comment)
}

func TestListReviews_ScanError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT review_id").
		WillReturnRows(sqlmock.NewRows(reviewColumns).
			AddRow("not-a-number", 1, "place-1", 5, "", time.Now()))

	_, err := repo.ListReviews(context.Background(), "place-1")
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestListReviews_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT review_id").WillReturnError(errors.New("boom"))

	_, err := repo.ListReviews(context.Background(), "place-1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

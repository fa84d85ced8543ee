package store

import (
	"time"

	"github.com/MKhiriev/go-city-guide/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable     = "users"
	favoritesTable = "favorites"
	reviewsTable   = "reviews"
	eventsTable    = "events"
)

var (
	userColumns     = []string{"user_id", "email", "name", "password_hash", "created_at"}
	favoriteColumns = []string{"favorite_id", "user_id", "place_id", "place_name", "created_at"}
	reviewColumns   = []string{"review_id", "user_id", "place_id", "rating", "comment", "created_at"}
	eventColumns    = []string{"event_id", "name", "starts_at", "location", "description", "price", "image_url"}
)

// Timestamps are always bound in UTC so that SQLite, which stores them as
// text, compares them in the same order as PostgreSQL does.

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("email", "name", "password_hash", "created_at").
		Values(user.Email, user.Name, user.PasswordHash, user.CreatedAt.UTC()).
		Suffix("RETURNING user_id").
		ToSql()
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildAddFavoriteQuery(b sq.StatementBuilderType, favorite models.Favorite) (string, []any, error) {
	return b.Insert(favoritesTable).
		Columns("user_id", "place_id", "place_name", "created_at").
		Values(favorite.UserID, favorite.PlaceID, favorite.PlaceName, favorite.CreatedAt.UTC()).
		Suffix("RETURNING favorite_id").
		ToSql()
}

func buildListFavoritesQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(favoriteColumns...).
		From(favoritesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "favorite_id DESC").
		ToSql()
}

func buildDeleteFavoriteQuery(b sq.StatementBuilderType, userID, favoriteID int64) (string, []any, error) {
	return b.Delete(favoritesTable).
		Where(sq.Eq{"favorite_id": favoriteID, "user_id": userID}).
		ToSql()
}

func buildCreateReviewQuery(b sq.StatementBuilderType, review models.Review) (string, []any, error) {
	return b.Insert(reviewsTable).
		Columns("user_id", "place_id", "rating", "comment", "created_at").
		Values(review.UserID, review.PlaceID, review.Rating, review.Comment, review.CreatedAt.UTC()).
		Suffix("RETURNING review_id").
		ToSql()
}

func buildListReviewsQuery(b sq.StatementBuilderType, placeID string) (string, []any, error) {
	return b.Select(reviewColumns...).
		From(reviewsTable).
		Where(sq.Eq{"place_id": placeID}).
		OrderBy("created_at DESC", "review_id DESC").
		ToSql()
}

func buildListEventsQuery(b sq.StatementBuilderType, filter models.EventFilter) (string, []any, error) {
	query := b.Select(eventColumns...).
		From(eventsTable).
		OrderBy("starts_at ASC", "event_id ASC")

	if !filter.From.IsZero() {
		query = query.Where(sq.GtOrEq{"starts_at": filter.From.UTC()})
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query.ToSql()
}

func buildGetEventQuery(b sq.StatementBuilderType, eventID int64) (string, []any, error) {
	return b.Select(eventColumns...).
		From(eventsTable).
		Where(sq.Eq{"event_id": eventID}).
		ToSql()
}

func buildSaveEventQuery(b sq.StatementBuilderType, event models.Event) (string, []any, error) {
	return b.Insert(eventsTable).
		Columns("name", "starts_at", "location", "description", "price", "image_url").
		Values(event.Name, event.StartsAt.UTC(), event.Location, event.Description, event.Price, event.ImageURL).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
}

// nowUTC is the creation clock of repositories. Seconds precision keeps the
// value identical after a round trip through either driver.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user with the same email is
	// already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrFavoriteAlreadyExists is returned when the user already saved the
	// place.
	ErrFavoriteAlreadyExists = errors.New("place is already in favorites")

	// ErrFavoriteNotFound is returned when the favorite does not exist or
	// belongs to another user.
	ErrFavoriteNotFound = errors.New("favorite was not found")

	// ErrReviewAlreadyExists is returned on a second review of the same place
	// by the same user.
	ErrReviewAlreadyExists = errors.New("place was already reviewed by the user")

	ErrEventNotFound = errors.New("event was not found")

	// ErrUnsupportedDSN is returned when the DSN scheme selects no known
	// driver.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")

	// ErrTemporarilyUnavailable wraps driver errors classified as
	// [Retryable]: lost connections, deadlocks, a busy SQLite file.
	ErrTemporarilyUnavailable = errors.New("database is temporarily unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	ErrScanningRow  = errors.New("failed to scan row")
	ErrScanningRows = errors.New("failed to scan rows")
)

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-city-guide/internal/logger"
	"github.com/MKhiriev/go-city-guide/models"
)

type eventRepository struct {
	*DB
	logger *logger.Logger
}

func NewEventRepository(db *DB, logger *logger.Logger) EventRepository {
	return &eventRepository{
		DB:     db,
		logger: logger,
	}
}

// ListEvents returns events ordered by start time.
func (e *eventRepository) ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEventsQuery(e.builder, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := e.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "eventRepository.ListEvents").Msg("failed to execute query for listing events")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, e.classify(err))
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		var item models.Event
		if err := scanEvent(rows, &item); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		events = append(events, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}

func (e *eventRepository) GetEvent(ctx context.Context, eventID int64) (models.Event, error) {
	query, args, err := buildGetEventQuery(e.builder, eventID)
	if err != nil {
		return models.Event{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var event models.Event
	if err := scanEvent(e.QueryRowContext(ctx, query, args...), &event); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Event{}, ErrEventNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "eventRepository.GetEvent").
			Int64("event_id", eventID).
			Msg("failed to select event")
		return models.Event{}, e.classify(err)
	}

	return event, nil
}

// SaveEvents inserts all events in one transaction.
func (e *eventRepository) SaveEvents(ctx context.Context, events []models.Event) (int64, error) {
	log := logger.FromContext(ctx)

	tx, err := e.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "eventRepository.SaveEvents").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var inserted int64
	for i, event := range events {
		query, args, err := buildSaveEventQuery(e.builder, event)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).
				Str("func", "eventRepository.SaveEvents").
				Int("iteration", i).
				Str("name", event.Name).
				Msg("failed to insert event")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, e.classify(err))
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		inserted += affected
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "eventRepository.SaveEvents").Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return inserted, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner, event *models.Event) error {
	return row.Scan(
		&event.EventID,
		&event.Name,
		&event.StartsAt,
		&event.Location,
		&event.Description,
		&event.Price,
		&event.ImageURL,
	)
}

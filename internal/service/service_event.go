package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-city-guide/internal/logger"
	"github.com/MKhiriev/go-city-guide/internal/store"
	"github.com/MKhiriev/go-city-guide/internal/validators"
	"github.com/MKhiriev/go-city-guide/migrations"
	"github.com/MKhiriev/go-city-guide/models"
)

type eventService struct {
	eventRepository store.EventRepository
	validator       validators.Validator

	logger *logger.Logger
}

func NewEventService(eventRepository store.EventRepository, validator validators.Validator, logger *logger.Logger) EventService {
	return &eventService{
		eventRepository: eventRepository,
		validator:       validator,
		logger:          logger,
	}
}

func (e *eventService) ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	if err := e.validator.Validate(ctx, filter); err != nil {
		return nil, err
	}

	events, err := e.eventRepository.ListEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing events failed: %w", err)
	}
	return events, nil
}

func (e *eventService) GetEvent(ctx context.Context, eventID int64) (models.Event, error) {
	return e.eventRepository.GetEvent(ctx, eventID)
}

func (e *eventService) SeedEvents(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	curated := migrations.CuratedEvents()
	inserted, err := e.eventRepository.SaveEvents(ctx, curated)
	if err != nil {
		log.Err(err).Str("func", "eventService.SeedEvents").Msg("seeding events failed")
		return 0, fmt.Errorf("seeding events failed: %w", err)
	}

	log.Info().
		Str("func", "eventService.SeedEvents").
		Int("curated", len(curated)).
		Int64("inserted", inserted).
		Msg("events seeded")
	return inserted, nil
}

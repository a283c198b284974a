package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Theluxegrp/Theluxegrp/internal/domain"
	"github.com/Theluxegrp/Theluxegrp/internal/service/ports"
	"github.com/google/uuid"
)

type EventService struct {
	repo ports.EventRepo
}

func NewEventService(repo ports.EventRepo) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.VenueID == "" {
		return nil, fmt.Errorf("%w: venue_id is required", domain.ErrValidation)
	}
	if input.EventDate.IsZero() {
		return nil, fmt.Errorf("%w: event_date is required", domain.ErrValidation)
	}

	sectionsMode := input.SectionsBookingMode
	if sectionsMode == "" {
		sectionsMode = domain.BookingModeInstant
	}
	specialMode := input.SpecialEventsBookingMode
	if specialMode == "" {
		specialMode = domain.BookingModeInstant
	}
	if err := validateMode(sectionsMode); err != nil {
		return nil, err
	}
	if err := validateMode(specialMode); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:                       uuid.New().String(),
		VenueID:                  input.VenueID,
		Name:                     input.Name,
		Description:              input.Description,
		EventDate:                input.EventDate,
		DressCode:                input.DressCode,
		MusicGenre:               input.MusicGenre,
		MinAge:                   input.MinAge,
		GuestListAvailable:       input.GuestListAvailable,
		SectionsAvailable:        input.SectionsAvailable,
		SpecialEventsAvailable:   input.SpecialEventsAvailable,
		SectionsBookingMode:      sectionsMode,
		SpecialEventsBookingMode: specialMode,
		IsPublished:              input.IsPublished,
		CreatedAt:                now,
		UpdatedAt:                now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context, publishedOnly bool) ([]*domain.Event, error) {
	return s.repo.List(ctx, publishedOnly)
}

func validateMode(m domain.BookingMode) error {
	if m != domain.BookingModeInstant && m != domain.BookingModeRequest {
		return fmt.Errorf("%w: booking mode must be instant or request", domain.ErrValidation)
	}
	return nil
}

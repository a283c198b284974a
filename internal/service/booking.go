package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Theluxegrp/Theluxegrp/internal/domain"
	"github.com/Theluxegrp/Theluxegrp/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// InitialStatus decides whether a fresh reservation is auto-confirmed or held
// for admin approval. Sections and bottle service share the table-service
// toggle; special events have their own; the guest list has no request mode.
func InitialStatus(kind domain.ReservationType, e *domain.Event) domain.ReservationStatus {
	switch kind {
	case domain.ReservationSection, domain.ReservationBottleService:
		if e.SectionsMode() == domain.BookingModeRequest {
			return domain.ReservationStatusPending
		}
	case domain.ReservationSpecialEvent:
		if e.SpecialEventsMode() == domain.BookingModeRequest {
			return domain.ReservationStatusPending
		}
	}

	return domain.ReservationStatusConfirmed
}

type BookingService struct {
	reservations ports.ReservationRepo
	events       ports.EventRepo
	notifier     ports.ReservationNotifier
	logger       logger.Logger
}

func NewBookingService(
	reservations ports.ReservationRepo,
	events ports.EventRepo,
	notifier ports.ReservationNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		reservations: reservations,
		events:       events,
		notifier:     notifier,
		logger:       logger,
	}
}

// Submit persists a reservation with its policy-decided status and fires the
// back-office alert. Alert failures never surface to the customer.
func (s *BookingService) Submit(ctx context.Context, eventID string, input domain.SubmitReservationInput) (*domain.Reservation, error) {
	if err := validateSubmission(input); err != nil {
		return nil, err
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	now := time.Now().UTC()
	rv := &domain.Reservation{
		ID:              uuid.New().String(),
		EventID:         eventID,
		Type:            input.Type,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		PartySize:       input.PartySize,
		SpecialRequests: input.SpecialRequests,
		Status:          InitialStatus(input.Type, event),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// Only the fields that belong to the reservation kind are persisted.
	switch input.Type {
	case domain.ReservationSection:
		rv.TableOptionID = input.TableOptionID
		rv.SectionID = input.SectionID
	case domain.ReservationBottleService:
		rv.BottlePackageID = input.BottlePackageID
		rv.TotalAmount = input.TotalAmount
	case domain.ReservationSpecialEvent:
		rv.Occasion = input.Occasion
	}

	if err = s.reservations.Create(ctx, rv); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", rv.ID),
		logger.String("event_id", eventID),
		logger.String("type", string(rv.Type)),
		logger.String("status", string(rv.Status)),
	)

	go s.notifier.ReservationCreated(context.WithoutCancel(ctx), rv, event)

	return rv, nil
}

// ListByStatus returns reservations for the back-office request queue.
func (s *BookingService) ListByStatus(ctx context.Context, statuses []domain.ReservationStatus) ([]*domain.Reservation, error) {
	if len(statuses) == 0 {
		statuses = domain.DecidedStatuses
	}
	return s.reservations.ListByStatus(ctx, statuses)
}

func (s *BookingService) Approve(ctx context.Context, id string) error {
	return s.decide(ctx, id, domain.ReservationStatusApproved)
}

func (s *BookingService) Deny(ctx context.Context, id string) error {
	return s.decide(ctx, id, domain.ReservationStatusDenied)
}

func (s *BookingService) decide(ctx context.Context, id string, status domain.ReservationStatus) error {
	if err := s.reservations.Decide(ctx, id, status, time.Now().UTC()); err != nil {
		return fmt.Errorf("decide reservation: %w", err)
	}

	s.logger.Info("reservation decided",
		logger.String("reservation_id", id),
		logger.String("status", string(status)),
	)

	rv, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to load reservation for decision notice",
			logger.String("reservation_id", id),
			logger.String("error", err.Error()),
		)
		return nil
	}

	event, err := s.events.GetByID(ctx, rv.EventID)
	if err != nil {
		s.logger.Error("failed to load event for decision notice",
			logger.String("event_id", rv.EventID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.ReservationDecided(context.WithoutCancel(ctx), rv, event)

	return nil
}

func validateSubmission(input domain.SubmitReservationInput) error {
	switch input.Type {
	case domain.ReservationGuestList, domain.ReservationSection,
		domain.ReservationBottleService, domain.ReservationSpecialEvent:
	default:
		return fmt.Errorf("%w: unknown reservation type %q", domain.ErrValidation, input.Type)
	}

	if input.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", domain.ErrValidation)
	}
	if input.CustomerEmail == "" {
		return fmt.Errorf("%w: customer email is required", domain.ErrValidation)
	}
	if input.CustomerPhone == "" {
		return fmt.Errorf("%w: customer phone is required", domain.ErrValidation)
	}
	if input.PartySize < 1 {
		return fmt.Errorf("%w: party size must be at least 1", domain.ErrValidation)
	}

	return nil
}

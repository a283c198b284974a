package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/Theluxegrp/Theluxegrp/internal/domain"
	"github.com/Theluxegrp/Theluxegrp/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestInitialStatus(t *testing.T) {
	request := &domain.Event{
		SectionsBookingMode:      domain.BookingModeRequest,
		SpecialEventsBookingMode: domain.BookingModeRequest,
	}
	instant := &domain.Event{
		SectionsBookingMode:      domain.BookingModeInstant,
		SpecialEventsBookingMode: domain.BookingModeInstant,
	}
	legacy := &domain.Event{} // created before booking modes existed

	tests := []struct {
		name  string
		kind  domain.ReservationType
		event *domain.Event
		want  domain.ReservationStatus
	}{
		{"guest list ignores modes", domain.ReservationGuestList, request, domain.ReservationStatusConfirmed},
		{"section request mode", domain.ReservationSection, request, domain.ReservationStatusPending},
		{"section instant mode", domain.ReservationSection, instant, domain.ReservationStatusConfirmed},
		{"bottle service shares sections mode", domain.ReservationBottleService, request, domain.ReservationStatusPending},
		{"bottle service instant", domain.ReservationBottleService, instant, domain.ReservationStatusConfirmed},
		{"special event request mode", domain.ReservationSpecialEvent, request, domain.ReservationStatusPending},
		{"special event instant", domain.ReservationSpecialEvent, instant, domain.ReservationStatusConfirmed},
		{"section legacy event defaults instant", domain.ReservationSection, legacy, domain.ReservationStatusConfirmed},
		{"special event legacy defaults instant", domain.ReservationSpecialEvent, legacy, domain.ReservationStatusConfirmed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InitialStatus(tt.kind, tt.event))
		})
	}
}

func TestInitialStatus_MixedModes(t *testing.T) {
	e := &domain.Event{
		SectionsBookingMode:      domain.BookingModeRequest,
		SpecialEventsBookingMode: domain.BookingModeInstant,
	}

	assert.Equal(t, domain.ReservationStatusPending, InitialStatus(domain.ReservationSection, e))
	assert.Equal(t, domain.ReservationStatusConfirmed, InitialStatus(domain.ReservationSpecialEvent, e))
}

func newBookingFixture(t *testing.T) (*mocks.MockReservationRepo, *mocks.MockEventRepo, *mocks.MockReservationNotifier, *BookingService) {
	t.Helper()
	reservations := mocks.NewMockReservationRepo(t)
	events := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	return reservations, events, notifier, NewBookingService(reservations, events, notifier, log)
}

func submitInput(kind domain.ReservationType) domain.SubmitReservationInput {
	return domain.SubmitReservationInput{
		Type:          kind,
		CustomerName:  "Ava Stone",
		CustomerEmail: "ava@example.com",
		CustomerPhone: "+15551234567",
		PartySize:     4,
	}
}

func TestBookingService_Submit_InstantConfirms(t *testing.T) {
	reservations, events, notifier, svc := newBookingFixture(t)

	event := &domain.Event{ID: "e1", Name: "Friday Night", SectionsBookingMode: domain.BookingModeInstant}
	events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	reservations.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().ReservationCreated(mock.Anything, mock.Anything, event).Return()

	tableOption := "vip-4"
	input := submitInput(domain.ReservationSection)
	input.TableOptionID = &tableOption

	rv, err := svc.Submit(context.Background(), "e1", input)

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusConfirmed, rv.Status)
	assert.Equal(t, &tableOption, rv.TableOptionID)
	assert.NotEmpty(t, rv.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Submit_RequestModeGoesPending(t *testing.T) {
	reservations, events, notifier, svc := newBookingFixture(t)

	event := &domain.Event{ID: "e1", SectionsBookingMode: domain.BookingModeRequest}
	events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	reservations.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().ReservationCreated(mock.Anything, mock.Anything, event).Return()

	amount := 450.0
	input := submitInput(domain.ReservationBottleService)
	input.TotalAmount = &amount

	rv, err := svc.Submit(context.Background(), "e1", input)

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusPending, rv.Status)
	assert.Equal(t, &amount, rv.TotalAmount)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Submit_DropsForeignKindFields(t *testing.T) {
	reservations, events, notifier, svc := newBookingFixture(t)

	event := &domain.Event{ID: "e1"}
	events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	reservations.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().ReservationCreated(mock.Anything, mock.Anything, event).Return()

	occasion := "birthday"
	bottle := "gold"
	input := submitInput(domain.ReservationSpecialEvent)
	input.Occasion = &occasion
	input.BottlePackageID = &bottle // wrong kind, must not persist

	rv, err := svc.Submit(context.Background(), "e1", input)

	require.NoError(t, err)
	assert.Equal(t, &occasion, rv.Occasion)
	assert.Nil(t, rv.BottlePackageID)
	assert.Nil(t, rv.TotalAmount)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Submit_EventNotFound(t *testing.T) {
	_, events, _, svc := newBookingFixture(t)

	events.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Submit(context.Background(), "missing", submitInput(domain.ReservationGuestList))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestBookingService_Submit_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.SubmitReservationInput)
	}{
		{"unknown type", func(i *domain.SubmitReservationInput) { i.Type = "cabana" }},
		{"missing name", func(i *domain.SubmitReservationInput) { i.CustomerName = "" }},
		{"missing email", func(i *domain.SubmitReservationInput) { i.CustomerEmail = "" }},
		{"missing phone", func(i *domain.SubmitReservationInput) { i.CustomerPhone = "" }},
		{"zero party size", func(i *domain.SubmitReservationInput) { i.PartySize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, svc := newBookingFixture(t)

			input := submitInput(domain.ReservationSection)
			tt.mutate(&input)

			_, err := svc.Submit(context.Background(), "e1", input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookingService_Submit_CreateError(t *testing.T) {
	reservations, events, _, svc := newBookingFixture(t)

	events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	reservations.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db error"))

	_, err := svc.Submit(context.Background(), "e1", submitInput(domain.ReservationGuestList))

	require.Error(t, err)
}

func TestBookingService_ListByStatus_DefaultsToQueue(t *testing.T) {
	reservations, _, _, svc := newBookingFixture(t)

	reservations.EXPECT().ListByStatus(mock.Anything, domain.DecidedStatuses).Return(nil, nil)

	_, err := svc.ListByStatus(context.Background(), nil)

	require.NoError(t, err)
}

func TestBookingService_Approve_Success(t *testing.T) {
	reservations, events, notifier, svc := newBookingFixture(t)

	rv := &domain.Reservation{ID: "r1", EventID: "e1", Status: domain.ReservationStatusApproved}
	event := &domain.Event{ID: "e1"}

	reservations.EXPECT().Decide(mock.Anything, "r1", domain.ReservationStatusApproved, mock.Anything).Return(nil)
	reservations.EXPECT().GetByID(mock.Anything, "r1").Return(rv, nil)
	events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	notifier.EXPECT().ReservationDecided(mock.Anything, rv, event).Return()

	require.NoError(t, svc.Approve(context.Background(), "r1"))

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Deny_NotPending(t *testing.T) {
	reservations, _, _, svc := newBookingFixture(t)

	reservations.EXPECT().Decide(mock.Anything, "r1", domain.ReservationStatusDenied, mock.Anything).
		Return(domain.ErrReservationNotPending)

	err := svc.Deny(context.Background(), "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotPending)
}

func TestBookingService_Approve_NotifyLoadFailureIsSwallowed(t *testing.T) {
	reservations, _, _, svc := newBookingFixture(t)

	reservations.EXPECT().Decide(mock.Anything, "r1", domain.ReservationStatusApproved, mock.Anything).Return(nil)
	reservations.EXPECT().GetByID(mock.Anything, "r1").Return(nil, errors.New("db error"))

	assert.NoError(t, svc.Approve(context.Background(), "r1"))
}

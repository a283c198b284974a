package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Theluxegrp/Theluxegrp/internal/domain"
	"github.com/Theluxegrp/Theluxegrp/internal/service/ports/mocks"
)

type stubCodes struct {
	codes []string
	next  int
}

func (s *stubCodes) Generate() string {
	code := s.codes[s.next%len(s.codes)]
	s.next++
	return code
}

func newEnrollmentFixture(t *testing.T, cfg EnrollmentConfig, codes []string) (*mocks.MockGuestListRepo, *mocks.MockEventRepo, *mocks.MockCodeSender, *EnrollmentService) {
	t.Helper()
	entries := mocks.NewMockGuestListRepo(t)
	events := mocks.NewMockEventRepo(t)
	sms := mocks.NewMockCodeSender(t)
	log := newTestLogger(t)

	svc := NewEnrollmentService(entries, events, sms, &stubCodes{codes: codes}, cfg, log)

	return entries, events, sms, svc
}

func startSession(t *testing.T, events *mocks.MockEventRepo, svc *EnrollmentService) *domain.Enrollment {
	t.Helper()
	events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", Name: "Friday Night"}, nil).Once()

	enr, err := svc.Start(context.Background(), "e1")
	require.NoError(t, err)
	require.Equal(t, domain.EnrollmentStateForm, enr.State)

	return enr
}

func TestEnrollment_Start_EventNotFound(t *testing.T) {
	_, events, _, svc := newEnrollmentFixture(t, EnrollmentConfig{}, []string{"123456"})

	events.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Start(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEnrollment_Submit_HappyPath(t *testing.T) {
	entries, events, sms, svc := newEnrollmentFixture(t, EnrollmentConfig{}, []string{"123456"})
	enr := startSession(t, events, svc)

	entries.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, e *domain.GuestListEntry) {
		assert.Equal(t, "e1", e.EventID)
		assert.Equal(t, "+15551234567", e.PhoneNumber)
		assert.Equal(t, "123456", e.ConfirmationCode)
		assert.False(t, e.IsConfirmed)
	}).Return(nil)
	sms.EXPECT().SendCode(mock.Anything, "+15551234567", "123456", "Friday Night").
		Return(&domain.SMSResult{Success: true}, nil)

	got, err := svc.Submit(context.Background(), enr.ID, domain.EnrollmentSubmitInput{
		FirstName:   "Ava",
		LastName:    "Stone",
		Email:       "ava@example.com",
		PhoneNumber: "(555) 123-4567",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EnrollmentStateVerification, got.State)
	assert.Equal(t, 30, got.ResendCooldown)
	assert.Empty(t, got.Warning)
	assert.NotEmpty(t, got.EntryID)
}

func TestEnrollment_Submit_InvalidPhone(t *testing.T) {
	_, events, _, svc := newEnrollmentFixture(t, EnrollmentConfig{}, []string{"123456"})
	enr := startSession(t, events, svc)

	_, err := svc.Submit(context.Background(), enr.ID, domain.EnrollmentSubmitInput{
		FirstName:   "Ava",
		LastName:    "Stone",
		Email:       "ava@example.com",
		PhoneNumber: "12345",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidPhone)
}

func TestEnrollment_Submit_TransportFailureStaysOnForm(t *testing.T) {
	entries, events, sms, svc := newEnrollmentFixture(t, EnrollmentConfig{}, []string{"123456"})
	enr := startSession(t, events, svc)

	entries.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	sms.EXPECT().SendCode(mock.Anything, "+15551234567", "123456", "Friday Night").
		Return(nil, errors.New("gateway unreachable"))

	_, err := svc.Submit(context.Background(), enr.ID, domain.EnrollmentSubmitInput{
		FirstName:   "Ava",
		LastName:    "Stone",
		Email:       "ava@example.com",
		PhoneNumber: "5551234567",
	})
	require.Error(t, err)

	// Session is untouched: still on the form, no countdown running.
	snap, err := svc.Back(enr.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EnrollmentStateForm, snap.State)
	assert.Zero(t, snap.ResendCooldown)
	assert.Empty(t, snap.EntryID)
}

func TestEnrollment_Submit_ProviderRefusalAdvancesWithWarning(t *testing.T) {
	entries, events, sms, svc := newEnrollmentFixture(t, EnrollmentConfig{}, []string{"123456"})
	enr := startSession(t, events, svc)

	entries.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	sms.EXPECT().SendCode(mock.Anything, "+15551234567", "123456", "Friday Night").
		Return(&domain.SMSResult{Success: false, Message: "SMS disabled"}, nil)

	got, err := svc.Submit(context.Background(), enr.ID, domain.EnrollmentSubmitInput{
		FirstName:   "Ava",
		LastName:    "Stone",
		Email:       "ava@example.com",
		PhoneNumber: "5551234567",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EnrollmentStateVerification, got.State)
	assert.Equal(t, "SMS not sent: SMS disabled", got.Warning)
	assert.Equal(t, 30, got.ResendCooldown)
}

func TestEnrollment_Submit_SessionNotFound(t *testing.T) {
	_, _, _, svc := newEnrollmentFixture(t, EnrollmentConfig{}, []string{"123456"})

	_, err := svc.Submit(context.Background(), "nope", domain.EnrollmentSubmitInput{
		FirstName:   "Ava",
		LastName:    "Stone",
		Email:       "ava@example.com",
		PhoneNumber: "5551234567",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestEnrollment_Submit_SessionClosedMidFlight(t *testing.T) {
	entries, events, sms, svc := newEnrollmentFixture(t, EnrollmentConfig{}, []string{"123456"})
	enr := startSession(t, events, svc)

	entries.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	sms.EXPECT().SendCode(mock.Anything, "+15551234567", "123456", "Friday Night").
		Run(func(ctx context.Context, phoneNumber, code, eventName string) {
			require.NoError(t, svc.Close(enr.ID))
		}).
		Return(&domain.SMSResult{Success: true}, nil)

	_, err := svc.Submit(context.Background(), enr.ID, domain.EnrollmentSubmitInput{
		FirstName:   "Ava",
		LastName:    "Stone",
		Email:       "ava@example.com",
		PhoneNumber: "5551234567",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestEnrollment_Verify_Success(t *testing.T) {
	entries, events, sms, svc := newEnrollmentFixture(t, EnrollmentConfig{}, []string{"123456"})
	enr := startSession(t, events, svc)

	entries.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	sms.EXPECT().SendCode(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.SMSResult{Success: true}, nil)

	got, err := svc.Submit(context.Background(), enr.ID, domain.EnrollmentSubmitInput{
		FirstName:   "Ava",
		LastName:    "Stone",
		Email:       "ava@example.com",
		PhoneNumber: "5551234567",
	})
	require.NoError(t, err)

	entries.EXPECT().GetByID(mock.Anything, got.EntryID).
		Return(&domain.GuestListEntry{ID: got.EntryID, ConfirmationCode: "123456"}, nil)
	entries.EXPECT().Confirm(mock.Anything, got.EntryID, mock.Anything).Return(nil)

	final, err := svc.Verify(context.Background(), enr.ID, "123-456")

	require.NoError(t, err)
	assert.Equal(t, domain.EnrollmentStateSuccess, final.State)
}

func TestEnrollment_Verify_WrongCode(t *testing.T) {
	entries, events, sms, svc := newEnrollmentFixture(t, EnrollmentConfig{}, []string{"123456"})
	enr := startSession(t, events, svc)

	entries.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	sms.EXPECT().SendCode(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.SMSResult{Success: true}, nil)

	got, err := svc.Submit(context.Background(), enr.ID, domain.EnrollmentSubmitInput{
		FirstName:   "Ava",
		LastName:    "Stone",
		Email:       "ava@example.com",
		PhoneNumber: "5551234567",
	})
	require.NoError(t, err)

	entries.EXPECT().GetByID(mock.Anything, got.EntryID).
		Return(&domain.GuestListEntry{ID: got.EntryID, ConfirmationCode: "123456"}, nil)

	_, err = svc.Verify(context.Background(), enr.ID, "654321")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
}

func TestEnrollment_Verify_ShortCodeRejectedWithoutLookup(t *testing.T) {
	entries, events, sms, svc := newEnrollmentFixture(t, EnrollmentConfig{}, []string{"123456"})
	enr := startSession(t, events, svc)

	entries.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	sms.EXPECT().SendCode(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.SMSResult{Success: true}, nil)

	_, err := svc.Submit(context.Background(), enr.ID, domain.EnrollmentSubmitInput{
		FirstName:   "Ava",
		LastName:    "Stone",
		Email:       "ava@example.com",
		PhoneNumber: "5551234567",
	})
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), enr.ID, "123")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
}

func TestEnrollment_Verify_NoEntryYet(t *testing.T) {
	_, events, _, svc := newEnrollmentFixture(t, EnrollmentConfig{}, []string{"123456"})
	enr := startSession(t, events, svc)

	_, err := svc.Verify(context.Background(), enr.ID, "123456")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestEnrollment_Resend_CooldownIsNoop(t *testing.T) {
	entries, events, sms, svc := newEnrollmentFixture(t, EnrollmentConfig{}, []string{"123456", "654321"})
	enr := startSession(t, events, svc)

	entries.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	sms.EXPECT().SendCode(mock.Anything, mock.Anything, "123456", mock.Anything).
		Return(&domain.SMSResult{Success: true}, nil)

	_, err := svc.Submit(context.Background(), enr.ID, domain.EnrollmentSubmitInput{
		FirstName:   "Ava",
		LastName:    "Stone",
		Email:       "ava@example.com",
		PhoneNumber: "5551234567",
	})
	require.NoError(t, err)

	// Countdown just started; no UpdateCode or second SendCode expected.
	snap, err := svc.Resend(context.Background(), enr.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.EnrollmentStateVerification, snap.State)
	assert.Positive(t, snap.ResendCooldown)
}

func TestEnrollment_Resend_AfterCooldownRotatesCode(t *testing.T) {
	cfg := EnrollmentConfig{ResendCooldown: 1, CooldownTick: 10 * time.Millisecond}
	entries, events, sms, svc := newEnrollmentFixture(t, cfg, []string{"123456", "654321"})
	enr := startSession(t, events, svc)

	entries.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	sms.EXPECT().SendCode(mock.Anything, "+15551234567", "123456", "Friday Night").
		Return(&domain.SMSResult{Success: true}, nil).Once()

	got, err := svc.Submit(context.Background(), enr.ID, domain.EnrollmentSubmitInput{
		FirstName:   "Ava",
		LastName:    "Stone",
		Email:       "ava@example.com",
		PhoneNumber: "5551234567",
	})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond) // countdown reaches zero

	entries.EXPECT().UpdateCode(mock.Anything, got.EntryID, "654321").Return(nil)
	sms.EXPECT().SendCode(mock.Anything, "+15551234567", "654321", "Friday Night").
		Return(&domain.SMSResult{Success: true}, nil).Once()

	snap, err := svc.Resend(context.Background(), enr.ID)

	require.NoError(t, err)
	assert.Equal(t, 1, snap.ResendCooldown)
}

func TestEnrollment_Resend_TransportFailureLeavesCooldownAtZero(t *testing.T) {
	cfg := EnrollmentConfig{ResendCooldown: 1, CooldownTick: 10 * time.Millisecond}
	entries, events, sms, svc := newEnrollmentFixture(t, cfg, []string{"123456", "654321"})
	enr := startSession(t, events, svc)

	entries.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	sms.EXPECT().SendCode(mock.Anything, "+15551234567", "123456", "Friday Night").
		Return(&domain.SMSResult{Success: true}, nil).Once()

	got, err := svc.Submit(context.Background(), enr.ID, domain.EnrollmentSubmitInput{
		FirstName:   "Ava",
		LastName:    "Stone",
		Email:       "ava@example.com",
		PhoneNumber: "5551234567",
	})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	entries.EXPECT().UpdateCode(mock.Anything, got.EntryID, "654321").Return(nil)
	sms.EXPECT().SendCode(mock.Anything, "+15551234567", "654321", "Friday Night").
		Return(nil, errors.New("gateway unreachable")).Once()

	_, err = svc.Resend(context.Background(), enr.ID)
	require.Error(t, err)

	// Countdown was not restarted, so an immediate retry goes through.
	entries.EXPECT().UpdateCode(mock.Anything, got.EntryID, "123456").Return(nil)
	sms.EXPECT().SendCode(mock.Anything, "+15551234567", "123456", "Friday Night").
		Return(&domain.SMSResult{Success: true}, nil).Once()

	snap, err := svc.Resend(context.Background(), enr.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.ResendCooldown)
}

func TestEnrollment_Resend_ProviderRefusalRestartsCooldown(t *testing.T) {
	cfg := EnrollmentConfig{ResendCooldown: 1, CooldownTick: 10 * time.Millisecond}
	entries, events, sms, svc := newEnrollmentFixture(t, cfg, []string{"123456", "654321"})
	enr := startSession(t, events, svc)

	entries.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	sms.EXPECT().SendCode(mock.Anything, "+15551234567", "123456", "Friday Night").
		Return(&domain.SMSResult{Success: true}, nil).Once()

	got, err := svc.Submit(context.Background(), enr.ID, domain.EnrollmentSubmitInput{
		FirstName:   "Ava",
		LastName:    "Stone",
		Email:       "ava@example.com",
		PhoneNumber: "5551234567",
	})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	entries.EXPECT().UpdateCode(mock.Anything, got.EntryID, "654321").Return(nil)
	sms.EXPECT().SendCode(mock.Anything, "+15551234567", "654321", "Friday Night").
		Return(&domain.SMSResult{Success: false, Message: "rejected"}, nil).Once()

	snap, err := svc.Resend(context.Background(), enr.ID)

	require.NoError(t, err)
	assert.Equal(t, "SMS not sent: rejected", snap.Warning)
	assert.Equal(t, 1, snap.ResendCooldown)
}

func TestEnrollment_Resend_NoEntryYet(t *testing.T) {
	_, events, _, svc := newEnrollmentFixture(t, EnrollmentConfig{}, []string{"123456"})
	enr := startSession(t, events, svc)

	_, err := svc.Resend(context.Background(), enr.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestEnrollment_Back_KeepsCountdownRunning(t *testing.T) {
	entries, events, sms, svc := newEnrollmentFixture(t, EnrollmentConfig{}, []string{"123456"})
	enr := startSession(t, events, svc)

	entries.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	sms.EXPECT().SendCode(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.SMSResult{Success: true}, nil)

	_, err := svc.Submit(context.Background(), enr.ID, domain.EnrollmentSubmitInput{
		FirstName:   "Ava",
		LastName:    "Stone",
		Email:       "ava@example.com",
		PhoneNumber: "5551234567",
	})
	require.NoError(t, err)

	snap, err := svc.Back(enr.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.EnrollmentStateForm, snap.State)
	assert.Positive(t, snap.ResendCooldown)
	assert.NotEmpty(t, snap.EntryID)
}

func TestEnrollment_Close_UnknownSession(t *testing.T) {
	_, _, _, svc := newEnrollmentFixture(t, EnrollmentConfig{}, []string{"123456"})

	err := svc.Close("nope")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestEnrollment_ExpireIdle(t *testing.T) {
	cfg := EnrollmentConfig{SessionTTL: 20 * time.Millisecond}
	_, events, _, svc := newEnrollmentFixture(t, cfg, []string{"123456"})
	enr := startSession(t, events, svc)

	assert.Zero(t, svc.ExpireIdle(context.Background()))

	time.Sleep(40 * time.Millisecond)

	assert.Equal(t, 1, svc.ExpireIdle(context.Background()))

	_, err := svc.Back(enr.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

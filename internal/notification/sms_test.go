package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

func TestSMSGateway_SendCode_Success(t *testing.T) {
	var captured struct {
		PhoneNumber string `json:"phoneNumber"`
		Code        string `json:"code"`
		EventName   string `json:"eventName"`
	}
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/send-guest-list-sms", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(domain.SMSResult{Success: true, TwilioMessageSID: "SM123"})
	}))
	defer srv.Close()

	g := NewSMSGateway(srv.URL, "test-key", time.Second, nil, nil, newTestLogger(t))

	result, err := g.SendCode(context.Background(), "+15551234567", "123456", "Friday Night")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "SM123", result.TwilioMessageSID)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "+15551234567", captured.PhoneNumber)
	assert.Equal(t, "123456", captured.Code)
	assert.Equal(t, "Friday Night", captured.EventName)
}

func TestSMSGateway_SendCode_ProviderRefusal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(domain.SMSResult{Success: false, Message: "SMS disabled"})
	}))
	defer srv.Close()

	g := NewSMSGateway(srv.URL, "test-key", time.Second, nil, nil, newTestLogger(t))

	result, err := g.SendCode(context.Background(), "+15551234567", "123456", "Friday Night")

	// A 2xx with success=false is not an error: the caller decides.
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "SMS disabled", result.Message)
}

func TestSMSGateway_SendCode_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(domain.SMSResult{Success: false, Message: "twilio exploded"})
	}))
	defer srv.Close()

	g := NewSMSGateway(srv.URL, "test-key", time.Second, nil, nil, newTestLogger(t))

	_, err := g.SendCode(context.Background(), "+15551234567", "123456", "Friday Night")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "twilio exploded")
}

func TestSMSGateway_SendCode_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer srv.Close()

	g := NewSMSGateway(srv.URL, "test-key", time.Second, nil, nil, newTestLogger(t))

	_, err := g.SendCode(context.Background(), "+15551234567", "123456", "Friday Night")

	require.Error(t, err)
}

func TestSMSGateway_ReservationCreated_SendsAndLogs(t *testing.T) {
	var captured struct {
		ToPhone     string `json:"toPhone"`
		Reservation struct {
			CustomerName  string `json:"customerName"`
			EventName     string `json:"eventName"`
			ReservationID string `json:"reservationId"`
		} `json:"reservation"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/send-reservation-sms", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(domain.SMSResult{Success: true})
	}))
	defer srv.Close()

	settings := mocks.NewMockSettingsRepo(t)
	adminPhone := "+15559876543"
	settings.EXPECT().Get(mock.Anything).Return(&domain.AdminSettings{
		NotificationEnabled: true,
		NotificationPhone:   &adminPhone,
	}, nil)

	var logged *domain.NotificationLog
	logs := &stubLogStore{insert: func(l *domain.NotificationLog) error {
		logged = l
		return nil
	}}

	g := NewSMSGateway(srv.URL, "test-key", time.Second, settings, logs, newTestLogger(t))

	rv := &domain.Reservation{ID: "r1", CustomerName: "Ava Stone", CustomerPhone: "+15551234567", PartySize: 4}
	event := &domain.Event{ID: "e1", Name: "Friday Night", EventDate: time.Now()}

	g.ReservationCreated(context.Background(), rv, event)

	assert.Equal(t, adminPhone, captured.ToPhone)
	assert.Equal(t, "Ava Stone", captured.Reservation.CustomerName)
	assert.Equal(t, "r1", captured.Reservation.ReservationID)

	require.NotNil(t, logged)
	assert.Equal(t, "sent", logged.Status)
	assert.Equal(t, adminPhone, logged.Recipient)
	assert.NotNil(t, logged.SentAt)
}

func TestSMSGateway_ReservationCreated_SkippedWhenDisabled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no SMS expected when notifications are disabled")
	}))
	defer srv.Close()

	settings := mocks.NewMockSettingsRepo(t)
	settings.EXPECT().Get(mock.Anything).Return(&domain.AdminSettings{NotificationEnabled: false}, nil)

	g := NewSMSGateway(srv.URL, "test-key", time.Second, settings, nil, newTestLogger(t))

	g.ReservationCreated(context.Background(), &domain.Reservation{ID: "r1"}, &domain.Event{ID: "e1"})
}

func TestSMSGateway_ReservationCreated_SkippedWithoutPhone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no SMS expected without a notification phone")
	}))
	defer srv.Close()

	settings := mocks.NewMockSettingsRepo(t)
	settings.EXPECT().Get(mock.Anything).Return(&domain.AdminSettings{NotificationEnabled: true}, nil)

	g := NewSMSGateway(srv.URL, "test-key", time.Second, settings, nil, newTestLogger(t))

	g.ReservationCreated(context.Background(), &domain.Reservation{ID: "r1"}, &domain.Event{ID: "e1"})
}

func TestSMSGateway_ReservationDecided_SendsToCustomer(t *testing.T) {
	var captured struct {
		ToPhone     string `json:"toPhone"`
		Reservation struct {
			Status string `json:"status"`
		} `json:"reservation"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(domain.SMSResult{Success: true})
	}))
	defer srv.Close()

	settings := mocks.NewMockSettingsRepo(t)
	settings.EXPECT().Get(mock.Anything).Return(&domain.AdminSettings{NotificationEnabled: true}, nil)

	logs := &stubLogStore{insert: func(*domain.NotificationLog) error { return nil }}
	g := NewSMSGateway(srv.URL, "test-key", time.Second, settings, logs, newTestLogger(t))

	rv := &domain.Reservation{
		ID:            "r1",
		CustomerPhone: "+15551234567",
		Status:        domain.ReservationStatusApproved,
	}
	g.ReservationDecided(context.Background(), rv, &domain.Event{ID: "e1", Name: "Friday Night"})

	assert.Equal(t, "+15551234567", captured.ToPhone)
	assert.Equal(t, "approved", captured.Reservation.Status)
}

func TestSMSGateway_ReservationSMS_FailureLogged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(domain.SMSResult{Success: false, Message: "upstream down"})
	}))
	defer srv.Close()

	settings := mocks.NewMockSettingsRepo(t)
	adminPhone := "+15559876543"
	settings.EXPECT().Get(mock.Anything).Return(&domain.AdminSettings{
		NotificationEnabled: true,
		NotificationPhone:   &adminPhone,
	}, nil)

	var logged *domain.NotificationLog
	logs := &stubLogStore{insert: func(l *domain.NotificationLog) error {
		logged = l
		return nil
	}}

	g := NewSMSGateway(srv.URL, "test-key", time.Second, settings, logs, newTestLogger(t))

	g.ReservationCreated(context.Background(), &domain.Reservation{ID: "r1"}, &domain.Event{ID: "e1", Name: "X"})

	require.NotNil(t, logged)
	assert.Equal(t, "failed", logged.Status)
	require.NotNil(t, logged.ErrorMessage)
	assert.Contains(t, *logged.ErrorMessage, "upstream down")
}

type stubLogStore struct {
	insert func(*domain.NotificationLog) error
}

func (s *stubLogStore) Insert(_ context.Context, l *domain.NotificationLog) error {
	return s.insert(l)
}

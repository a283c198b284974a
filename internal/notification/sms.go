package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Theluxegrp/Theluxegrp/internal/domain"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type settingsStore interface {
	Get(ctx context.Context) (*domain.AdminSettings, error)
}

type logStore interface {
	Insert(ctx context.Context, l *domain.NotificationLog) error
}

// SMSGateway talks to the serverless SMS endpoints. The Twilio call itself
// lives behind those endpoints; this side only sees the
// {success, message, twilioMessageSid} envelope.
type SMSGateway struct {
	baseURL  string
	apiKey   string
	client   *http.Client
	settings settingsStore
	logs     logStore
	logger   logger.Logger
}

func NewSMSGateway(
	baseURL, apiKey string,
	timeout time.Duration,
	settings settingsStore,
	logs logStore,
	logger logger.Logger,
) *SMSGateway {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &SMSGateway{
		baseURL:  baseURL,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
		settings: settings,
		logs:     logs,
		logger:   logger,
	}
}

type guestListSMSRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Code        string `json:"code"`
	EventName   string `json:"eventName"`
}

// SendCode delivers a guest-list verification code. A non-2xx status or an
// unreadable body is a transport error; a 2xx with success=false is a
// provider-level refusal the caller may tolerate.
func (g *SMSGateway) SendCode(ctx context.Context, phoneNumber, code, eventName string) (*domain.SMSResult, error) {
	result, err := g.post(ctx, "/send-guest-list-sms", guestListSMSRequest{
		PhoneNumber: phoneNumber,
		Code:        code,
		EventName:   eventName,
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

type reservationSMSRequest struct {
	ToPhone     string             `json:"toPhone"`
	Reservation reservationPayload `json:"reservation"`
}

type reservationPayload struct {
	CustomerName    string `json:"customerName"`
	EventName       string `json:"eventName"`
	EventDate       string `json:"eventDate"`
	ReservationType string `json:"reservationType"`
	PartySize       int    `json:"partySize"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerEmail   string `json:"customerEmail"`
	ReservationID   string `json:"reservationId"`
	Status          string `json:"status,omitempty"`
}

// ReservationCreated alerts the back-office phone about a new reservation.
// Gated on admin settings; every attempt past the gate lands in
// notification_log. Failures are logged and swallowed.
func (g *SMSGateway) ReservationCreated(ctx context.Context, r *domain.Reservation, e *domain.Event) {
	settings, err := g.settings.Get(ctx)
	if err != nil {
		g.logger.Error("failed to load settings for reservation alert",
			logger.String("reservation_id", r.ID),
			logger.String("error", err.Error()),
		)
		return
	}
	if !settings.NotificationEnabled || settings.NotificationPhone == nil || *settings.NotificationPhone == "" {
		g.logger.Debug("reservation alert skipped (notifications not configured)",
			logger.String("reservation_id", r.ID),
		)
		return
	}

	g.sendReservationSMS(ctx, *settings.NotificationPhone, r, e,
		fmt.Sprintf("New reservation for %s", e.Name))
}

// ReservationDecided notifies the customer that their pending request was
// approved or denied.
func (g *SMSGateway) ReservationDecided(ctx context.Context, r *domain.Reservation, e *domain.Event) {
	settings, err := g.settings.Get(ctx)
	if err != nil {
		g.logger.Error("failed to load settings for decision notice",
			logger.String("reservation_id", r.ID),
			logger.String("error", err.Error()),
		)
		return
	}
	if !settings.NotificationEnabled {
		g.logger.Debug("decision notice skipped (notifications disabled)",
			logger.String("reservation_id", r.ID),
		)
		return
	}

	g.sendReservationSMS(ctx, r.CustomerPhone, r, e,
		fmt.Sprintf("Reservation %s for %s", r.Status, e.Name))
}

func (g *SMSGateway) sendReservationSMS(ctx context.Context, toPhone string, r *domain.Reservation, e *domain.Event, logMessage string) {
	result, err := g.post(ctx, "/send-reservation-sms", reservationSMSRequest{
		ToPhone: toPhone,
		Reservation: reservationPayload{
			CustomerName:    r.CustomerName,
			EventName:       e.Name,
			EventDate:       e.EventDate.Format(time.RFC3339),
			ReservationType: string(r.Type),
			PartySize:       r.PartySize,
			CustomerPhone:   r.CustomerPhone,
			CustomerEmail:   r.CustomerEmail,
			ReservationID:   r.ID,
			Status:          string(r.Status),
		},
	})

	entry := &domain.NotificationLog{
		ID:            uuid.New().String(),
		ReservationID: r.ID,
		Type:          "sms",
		Recipient:     toPhone,
		Message:       logMessage,
		CreatedAt:     time.Now().UTC(),
	}
	switch {
	case err != nil:
		msg := err.Error()
		entry.Status = "failed"
		entry.ErrorMessage = &msg
		g.logger.Error("reservation SMS failed",
			logger.String("reservation_id", r.ID),
			logger.String("error", msg),
		)
	case !result.Success:
		entry.Status = "failed"
		entry.ErrorMessage = &result.Message
		g.logger.Warn("reservation SMS declined by provider",
			logger.String("reservation_id", r.ID),
			logger.String("message", result.Message),
		)
	default:
		now := time.Now().UTC()
		entry.Status = "sent"
		entry.SentAt = &now
	}

	if logErr := g.logs.Insert(ctx, entry); logErr != nil {
		g.logger.Error("failed to record notification log",
			logger.String("reservation_id", r.ID),
			logger.String("error", logErr.Error()),
		)
	}
}

func (g *SMSGateway) post(ctx context.Context, path string, payload any) (*domain.SMSResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call sms endpoint: %w", err)
	}
	defer resp.Body.Close()

	var result domain.SMSResult
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode sms response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if result.Message != "" {
			return nil, fmt.Errorf("sms endpoint returned %d: %s", resp.StatusCode, result.Message)
		}
		return nil, fmt.Errorf("sms endpoint returned %d", resp.StatusCode)
	}

	return &result, nil
}

package domain

import "time"

// AdminSettings is the single back-office row that gates outbound SMS.
type AdminSettings struct {
	ID                  string    `json:"id"`
	NotificationEnabled bool      `json:"notification_enabled"`
	NotificationPhone   *string   `json:"notification_phone"`
	TwilioAccountSID    string    `json:"twilio_account_sid"`
	TwilioAuthToken     string    `json:"-"`
	TwilioFromPhone     string    `json:"twilio_from_phone"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type UpdateSettingsInput struct {
	NotificationEnabled bool
	NotificationPhone   *string
	TwilioAccountSID    string
	TwilioAuthToken     string
	TwilioFromPhone     string
}

// SMSResult is the gateway's response envelope. Success=false with a nil error
// means the provider refused delivery (misconfigured, disabled); the caller
// decides whether that blocks the flow.
type SMSResult struct {
	Success          bool   `json:"success"`
	Message          string `json:"message,omitempty"`
	TwilioMessageSID string `json:"twilioMessageSid,omitempty"`
}

type NotificationLog struct {
	ID            string     `json:"id"`
	ReservationID string     `json:"reservation_id"`
	Type          string     `json:"notification_type"`
	Recipient     string     `json:"recipient"`
	Status        string     `json:"status"`
	Message       string     `json:"message"`
	ErrorMessage  *string    `json:"error_message"`
	SentAt        *time.Time `json:"sent_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

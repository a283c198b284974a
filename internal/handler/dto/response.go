package dto

import (
	"time"

	"github.com/Theluxegrp/Theluxegrp/internal/domain"
)

type EventResponse struct {
	ID                       string `json:"id"`
	VenueID                  string `json:"venue_id"`
	Name                     string `json:"name"`
	Description              string `json:"description"`
	EventDate                string `json:"event_date"`
	DressCode                string `json:"dress_code"`
	MusicGenre               string `json:"music_genre"`
	MinAge                   int    `json:"min_age"`
	GuestListAvailable       bool   `json:"guest_list_available"`
	SectionsAvailable        bool   `json:"sections_available"`
	SpecialEventsAvailable   bool   `json:"special_events_available"`
	SectionsBookingMode      string `json:"sections_booking_mode"`
	SpecialEventsBookingMode string `json:"special_events_booking_mode"`
	IsPublished              bool   `json:"is_published"`
	CreatedAt                string `json:"created_at"`
}

type ReservationResponse struct {
	ID              string   `json:"id"`
	EventID         string   `json:"event_id"`
	Type            string   `json:"reservation_type"`
	CustomerName    string   `json:"customer_name"`
	PartySize       int      `json:"party_size"`
	Status          string   `json:"status"`
	TotalAmount     *float64 `json:"total_amount,omitempty"`
	TableOptionID   *string  `json:"table_option_id,omitempty"`
	SectionID       *string  `json:"section_id,omitempty"`
	BottlePackageID *string  `json:"bottle_package_id,omitempty"`
	Occasion        *string  `json:"occasion,omitempty"`
	Message         string   `json:"message,omitempty"`
	CreatedAt       string   `json:"created_at"`
}

type EnrollmentResponse struct {
	ID             string `json:"id"`
	EventID        string `json:"event_id"`
	EventName      string `json:"event_name"`
	State          string `json:"state"`
	PhoneNumber    string `json:"phone_number,omitempty"`
	ResendCooldown int    `json:"resend_cooldown"`
	Warning        string `json:"warning,omitempty"`
}

type GuestListEntryResponse struct {
	ID          string  `json:"id"`
	EventID     string  `json:"event_id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phone_number"`
	IsConfirmed bool    `json:"is_confirmed"`
	CreatedAt   string  `json:"created_at"`
	ConfirmedAt *string `json:"confirmed_at,omitempty"`
}

type SettingsResponse struct {
	NotificationEnabled bool    `json:"notification_enabled"`
	NotificationPhone   *string `json:"notification_phone"`
	TwilioAccountSID    string  `json:"twilio_account_sid"`
	TwilioFromPhone     string  `json:"twilio_from_phone"`
	UpdatedAt           string  `json:"updated_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:                       e.ID,
		VenueID:                  e.VenueID,
		Name:                     e.Name,
		Description:              e.Description,
		EventDate:                e.EventDate.Format(time.RFC3339),
		DressCode:                e.DressCode,
		MusicGenre:               e.MusicGenre,
		MinAge:                   e.MinAge,
		GuestListAvailable:       e.GuestListAvailable,
		SectionsAvailable:        e.SectionsAvailable,
		SpecialEventsAvailable:   e.SpecialEventsAvailable,
		SectionsBookingMode:      string(e.SectionsMode()),
		SpecialEventsBookingMode: string(e.SpecialEventsMode()),
		IsPublished:              e.IsPublished,
		CreatedAt:                e.CreatedAt.Format(time.RFC3339),
	}
}

// ToReservationResponse carries the wording the storefront shows: instant
// bookings read as confirmed, request-mode ones as received.
func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	message := ""
	switch r.Status {
	case domain.ReservationStatusConfirmed:
		message = "Booking Confirmed"
	case domain.ReservationStatusPending:
		message = "Request Received"
	}

	return ReservationResponse{
		ID:              r.ID,
		EventID:         r.EventID,
		Type:            string(r.Type),
		CustomerName:    r.CustomerName,
		PartySize:       r.PartySize,
		Status:          string(r.Status),
		TotalAmount:     r.TotalAmount,
		TableOptionID:   r.TableOptionID,
		SectionID:       r.SectionID,
		BottlePackageID: r.BottlePackageID,
		Occasion:        r.Occasion,
		Message:         message,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}

func ToEnrollmentResponse(e *domain.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:             e.ID,
		EventID:        e.EventID,
		EventName:      e.EventName,
		State:          string(e.State),
		PhoneNumber:    e.PhoneNumber,
		ResendCooldown: e.ResendCooldown,
		Warning:        e.Warning,
	}
}

func ToGuestListEntryResponse(e *domain.GuestListEntry) GuestListEntryResponse {
	resp := GuestListEntryResponse{
		ID:          e.ID,
		EventID:     e.EventID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber,
		IsConfirmed: e.IsConfirmed,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
	if e.ConfirmedAt != nil {
		s := e.ConfirmedAt.Format(time.RFC3339)
		resp.ConfirmedAt = &s
	}
	return resp
}

func ToSettingsResponse(s *domain.AdminSettings) SettingsResponse {
	return SettingsResponse{
		NotificationEnabled: s.NotificationEnabled,
		NotificationPhone:   s.NotificationPhone,
		TwilioAccountSID:    s.TwilioAccountSID,
		TwilioFromPhone:     s.TwilioFromPhone,
		UpdatedAt:           s.UpdatedAt.Format(time.RFC3339),
	}
}

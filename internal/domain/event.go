package domain

import "time"

type BookingMode string

const (
	BookingModeInstant BookingMode = "instant"
	BookingModeRequest BookingMode = "request"
)

type Event struct {
	ID                       string      `json:"id"`
	VenueID                  string      `json:"venue_id"`
	Name                     string      `json:"name"`
	Description              string      `json:"description"`
	EventDate                time.Time   `json:"event_date"`
	DressCode                string      `json:"dress_code"`
	MusicGenre               string      `json:"music_genre"`
	MinAge                   int         `json:"min_age"`
	GuestListAvailable       bool        `json:"guest_list_available"`
	SectionsAvailable        bool        `json:"sections_available"`
	SpecialEventsAvailable   bool        `json:"special_events_available"`
	SectionsBookingMode      BookingMode `json:"sections_booking_mode"`
	SpecialEventsBookingMode BookingMode `json:"special_events_booking_mode"`
	IsPublished              bool        `json:"is_published"`
	CreatedAt                time.Time   `json:"created_at"`
	UpdatedAt                time.Time   `json:"updated_at"`
}

// SectionsMode returns the table-service booking mode, defaulting to instant
// when the event was created before the flag existed.
func (e *Event) SectionsMode() BookingMode {
	if e.SectionsBookingMode == "" {
		return BookingModeInstant
	}
	return e.SectionsBookingMode
}

func (e *Event) SpecialEventsMode() BookingMode {
	if e.SpecialEventsBookingMode == "" {
		return BookingModeInstant
	}
	return e.SpecialEventsBookingMode
}

type CreateEventInput struct {
	VenueID                  string
	Name                     string
	Description              string
	EventDate                time.Time
	DressCode                string
	MusicGenre               string
	MinAge                   int
	GuestListAvailable       bool
	SectionsAvailable        bool
	SpecialEventsAvailable   bool
	SectionsBookingMode      BookingMode
	SpecialEventsBookingMode BookingMode
	IsPublished              bool
}

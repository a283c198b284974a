package dto

type CreateEventRequest struct {
	VenueID                  string `json:"venue_id" binding:"required"`
	Name                     string `json:"name" binding:"required"`
	Description              string `json:"description"`
	EventDate                string `json:"event_date" binding:"required"`
	DressCode                string `json:"dress_code"`
	MusicGenre               string `json:"music_genre"`
	MinAge                   int    `json:"min_age"`
	GuestListAvailable       bool   `json:"guest_list_available"`
	SectionsAvailable        bool   `json:"sections_available"`
	SpecialEventsAvailable   bool   `json:"special_events_available"`
	SectionsBookingMode      string `json:"sections_booking_mode"`
	SpecialEventsBookingMode string `json:"special_events_booking_mode"`
	IsPublished              bool   `json:"is_published"`
}

type SubmitReservationRequest struct {
	Type            string   `json:"reservation_type" binding:"required"`
	CustomerName    string   `json:"customer_name" binding:"required"`
	CustomerEmail   string   `json:"customer_email" binding:"required,email"`
	CustomerPhone   string   `json:"customer_phone" binding:"required"`
	PartySize       int      `json:"party_size" binding:"required,min=1"`
	SpecialRequests *string  `json:"special_requests"`
	Occasion        *string  `json:"occasion"`
	TableOptionID   *string  `json:"table_option_id"`
	SectionID       *string  `json:"section_id"`
	BottlePackageID *string  `json:"bottle_package_id"`
	TotalAmount     *float64 `json:"total_amount"`
}

type StartEnrollmentRequest struct {
	EventID string `json:"event_id" binding:"required,uuid"`
}

type EnrollmentSubmitRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

type VerifyCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

type UpdateSettingsRequest struct {
	NotificationEnabled bool    `json:"notification_enabled"`
	NotificationPhone   *string `json:"notification_phone"`
	TwilioAccountSID    string  `json:"twilio_account_sid"`
	TwilioAuthToken     string  `json:"twilio_auth_token"`
	TwilioFromPhone     string  `json:"twilio_from_phone"`
}

package domain

import "time"

type ReservationType string

const (
	ReservationGuestList     ReservationType = "guest_list"
	ReservationSection       ReservationType = "section"
	ReservationBottleService ReservationType = "bottle_service"
	ReservationSpecialEvent  ReservationType = "special_event"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusApproved  ReservationStatus = "approved"
	ReservationStatusDenied    ReservationStatus = "denied"
)

var DecidedStatuses = []ReservationStatus{
	ReservationStatusPending, ReservationStatusApproved, ReservationStatusDenied,
}

type Reservation struct {
	ID              string            `json:"id"`
	EventID         string            `json:"event_id"`
	Type            ReservationType   `json:"reservation_type"`
	CustomerName    string            `json:"customer_name"`
	CustomerEmail   string            `json:"customer_email"`
	CustomerPhone   string            `json:"customer_phone"`
	PartySize       int               `json:"party_size"`
	SpecialRequests *string           `json:"special_requests"`
	Occasion        *string           `json:"occasion"`
	Status          ReservationStatus `json:"status"`
	TotalAmount     *float64          `json:"total_amount"`
	TableOptionID   *string           `json:"table_option_id"`
	SectionID       *string           `json:"section_id"`
	BottlePackageID *string           `json:"bottle_package_id"`
	ApprovedAt      *time.Time        `json:"approved_at"`
	DeniedAt        *time.Time        `json:"denied_at"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type SubmitReservationInput struct {
	Type            ReservationType
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	PartySize       int
	SpecialRequests *string
	Occasion        *string
	TableOptionID   *string
	SectionID       *string
	BottlePackageID *string
	TotalAmount     *float64
}

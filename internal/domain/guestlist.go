package domain

import "time"

// GuestListEntry is one phone-verified sign-up for an event's guest list.
// IsConfirmed only ever moves false -> true.
type GuestListEntry struct {
	ID               string     `json:"id"`
	EventID          string     `json:"event_id"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Email            string     `json:"email"`
	PhoneNumber      string     `json:"phone_number"`
	ConfirmationCode string     `json:"-"`
	IsConfirmed      bool       `json:"is_confirmed"`
	CreatedAt        time.Time  `json:"created_at"`
	ConfirmedAt      *time.Time `json:"confirmed_at"`
}

type EnrollmentState string

const (
	EnrollmentStateForm         EnrollmentState = "form"
	EnrollmentStateVerification EnrollmentState = "verification"
	EnrollmentStateSuccess      EnrollmentState = "success"
)

// Enrollment is a snapshot of one guest-list sign-up session as seen by the
// caller. One session is scoped to one (event, visitor) pair.
type Enrollment struct {
	ID             string          `json:"id"`
	EventID        string          `json:"event_id"`
	EventName      string          `json:"event_name"`
	State          EnrollmentState `json:"state"`
	EntryID        string          `json:"entry_id,omitempty"`
	PhoneNumber    string          `json:"phone_number,omitempty"`
	ResendCooldown int             `json:"resend_cooldown"`
	Warning        string          `json:"warning,omitempty"`
}

type EnrollmentSubmitInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
}

package ports

import (
	"context"

	"github.com/Theluxegrp/Theluxegrp/internal/domain"
)

// CodeSender delivers a guest-list verification code. A non-nil error means the
// gateway itself failed (network, malformed response); a result with
// Success=false means the provider declined delivery but the flow may continue.
type CodeSender interface {
	SendCode(ctx context.Context, phoneNumber, code, eventName string) (*domain.SMSResult, error)
}

// ReservationNotifier alerts the back office about reservation activity.
// Implementations never block the booking flow; failures are logged only.
type ReservationNotifier interface {
	ReservationCreated(ctx context.Context, r *domain.Reservation, e *domain.Event)
	ReservationDecided(ctx context.Context, r *domain.Reservation, e *domain.Event)
}

package notification

import (
	"context"

	"github.com/Theluxegrp/Theluxegrp/internal/domain"
	"github.com/Theluxegrp/Theluxegrp/internal/service/ports"
)

// Fanout delivers reservation alerts through every configured channel.
type Fanout []ports.ReservationNotifier

func (f Fanout) ReservationCreated(ctx context.Context, r *domain.Reservation, e *domain.Event) {
	for _, n := range f {
		n.ReservationCreated(ctx, r, e)
	}
}

func (f Fanout) ReservationDecided(ctx context.Context, r *domain.Reservation, e *domain.Event) {
	for _, n := range f {
		n.ReservationDecided(ctx, r, e)
	}
}

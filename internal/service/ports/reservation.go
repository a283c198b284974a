package ports

import (
	"context"
	"time"

	"github.com/Theluxegrp/Theluxegrp/internal/domain"
)

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListByStatus(ctx context.Context, statuses []domain.ReservationStatus) ([]*domain.Reservation, error)
	// Decide moves a pending reservation to approved or denied; it is the only
	// status transition the back office performs.
	Decide(ctx context.Context, id string, status domain.ReservationStatus, at time.Time) error
}

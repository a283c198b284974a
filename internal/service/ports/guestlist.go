package ports

import (
	"context"
	"time"

	"github.com/Theluxegrp/Theluxegrp/internal/domain"
)

type GuestListRepo interface {
	Create(ctx context.Context, e *domain.GuestListEntry) error
	GetByID(ctx context.Context, id string) (*domain.GuestListEntry, error)
	UpdateCode(ctx context.Context, id, code string) error
	Confirm(ctx context.Context, id string, at time.Time) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.GuestListEntry, error)
	Delete(ctx context.Context, id string) error
}

package ports

import (
	"context"

	"github.com/Theluxegrp/Theluxegrp/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, publishedOnly bool) ([]*domain.Event, error)
}

package ports

import (
	"context"

	"github.com/Theluxegrp/Theluxegrp/internal/domain"
)

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.AdminSettings, error)
	Update(ctx context.Context, input domain.UpdateSettingsInput) (*domain.AdminSettings, error)
}

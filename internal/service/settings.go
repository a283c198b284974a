package service

import (
	"context"
	"fmt"

	"github.com/Theluxegrp/Theluxegrp/internal/domain"
	"github.com/Theluxegrp/Theluxegrp/internal/phone"
	"github.com/Theluxegrp/Theluxegrp/internal/service/ports"
)

type SettingsService struct {
	repo ports.SettingsRepo
}

func NewSettingsService(repo ports.SettingsRepo) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) Get(ctx context.Context) (*domain.AdminSettings, error) {
	return s.repo.Get(ctx)
}

func (s *SettingsService) Update(ctx context.Context, input domain.UpdateSettingsInput) (*domain.AdminSettings, error) {
	if input.NotificationPhone != nil && *input.NotificationPhone != "" {
		normalized, err := phone.Normalize(*input.NotificationPhone)
		if err != nil {
			return nil, fmt.Errorf("%w: notification phone: %w", domain.ErrValidation, err)
		}
		input.NotificationPhone = &normalized
	}

	return s.repo.Update(ctx, input)
}

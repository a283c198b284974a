package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Theluxegrp/Theluxegrp/internal/domain"
	"github.com/Theluxegrp/Theluxegrp/internal/service/ports/mocks"
)

func TestSettingsService_Update_NormalizesPhone(t *testing.T) {
	repo := mocks.NewMockSettingsRepo(t)
	svc := NewSettingsService(repo)

	repo.EXPECT().Update(mock.Anything, mock.Anything).Run(func(ctx context.Context, input domain.UpdateSettingsInput) {
		require.NotNil(t, input.NotificationPhone)
		assert.Equal(t, "+15551234567", *input.NotificationPhone)
	}).Return(&domain.AdminSettings{}, nil)

	raw := "(555) 123-4567"
	_, err := svc.Update(context.Background(), domain.UpdateSettingsInput{
		NotificationEnabled: true,
		NotificationPhone:   &raw,
	})

	require.NoError(t, err)
}

func TestSettingsService_Update_RejectsBadPhone(t *testing.T) {
	repo := mocks.NewMockSettingsRepo(t)
	svc := NewSettingsService(repo)

	raw := "12345"
	_, err := svc.Update(context.Background(), domain.UpdateSettingsInput{
		NotificationPhone: &raw,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSettingsService_Update_NilPhonePassesThrough(t *testing.T) {
	repo := mocks.NewMockSettingsRepo(t)
	svc := NewSettingsService(repo)

	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(&domain.AdminSettings{}, nil)

	_, err := svc.Update(context.Background(), domain.UpdateSettingsInput{NotificationEnabled: false})

	require.NoError(t, err)
}

func TestSettingsService_Get(t *testing.T) {
	repo := mocks.NewMockSettingsRepo(t)
	svc := NewSettingsService(repo)

	repo.EXPECT().Get(mock.Anything).Return(&domain.AdminSettings{NotificationEnabled: true}, nil)

	s, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.True(t, s.NotificationEnabled)
}

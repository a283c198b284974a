package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Theluxegrp/Theluxegrp/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type SettingsRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSettingsRepo(db *dbpg.DB) *SettingsRepository {
	return &SettingsRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Get returns the single admin_settings row.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.AdminSettings, error) {
	query := `SELECT id, notification_enabled, notification_phone,
					 twilio_account_sid, twilio_auth_token, twilio_from_phone, updated_at
			  FROM admin_settings
			  LIMIT 1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	return scanSettings(row)
}

func (r *SettingsRepository) Update(ctx context.Context, input domain.UpdateSettingsInput) (*domain.AdminSettings, error) {
	query := `UPDATE admin_settings
			  SET notification_enabled = $1, notification_phone = $2,
				  twilio_account_sid = $3, twilio_auth_token = $4, twilio_from_phone = $5,
				  updated_at = now()
			  RETURNING id, notification_enabled, notification_phone,
					    twilio_account_sid, twilio_auth_token, twilio_from_phone, updated_at`
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		input.NotificationEnabled, input.NotificationPhone,
		input.TwilioAccountSID, input.TwilioAuthToken, input.TwilioFromPhone,
	)
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}

	return scanSettings(row)
}

// scanSettings tolerates NULL twilio columns: the seed row leaves them empty
// until the first admin update.
func scanSettings(row *sql.Row) (*domain.AdminSettings, error) {
	var (
		s                domain.AdminSettings
		sid, token, from sql.NullString
	)
	if err := row.Scan(
		&s.ID, &s.NotificationEnabled, &s.NotificationPhone,
		&sid, &token, &from, &s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("scan settings: %w", err)
	}

	s.TwilioAccountSID = sid.String
	s.TwilioAuthToken = token.String
	s.TwilioFromPhone = from.String

	return &s, nil
}

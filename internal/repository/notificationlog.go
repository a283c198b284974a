package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Theluxegrp/Theluxegrp/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type NotificationLogRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewNotificationLogRepo(db *dbpg.DB) *NotificationLogRepository {
	return &NotificationLogRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *NotificationLogRepository) Insert(ctx context.Context, l *domain.NotificationLog) error {
	query := `INSERT INTO notification_log
			  (id, reservation_id, notification_type, recipient, status, message, error_message, sent_at, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		l.ID, l.ReservationID, l.Type, l.Recipient, l.Status, l.Message, l.ErrorMessage, l.SentAt, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification log: %w", err)
	}

	return nil
}

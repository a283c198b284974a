package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Theluxegrp/Theluxegrp/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type GuestListRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewGuestListRepo(db *dbpg.DB) *GuestListRepository {
	return &GuestListRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const entryColumns = `id, event_id, first_name, last_name, email, phone_number,
	confirmation_code, is_confirmed, created_at, confirmed_at`

func (r *GuestListRepository) Create(ctx context.Context, e *domain.GuestListEntry) error {
	query := `INSERT INTO guest_list_entries (` + entryColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.EventID, e.FirstName, e.LastName, e.Email, e.PhoneNumber,
		e.ConfirmationCode, e.IsConfirmed, e.CreatedAt, e.ConfirmedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert guest list entry: %w", err)
	}

	return nil
}

func (r *GuestListRepository) GetByID(ctx context.Context, id string) (*domain.GuestListEntry, error) {
	query := `SELECT ` + entryColumns + `
			  FROM guest_list_entries
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get guest list entry: %w", err)
	}

	var e domain.GuestListEntry
	if err = row.Scan(
		&e.ID, &e.EventID, &e.FirstName, &e.LastName, &e.Email, &e.PhoneNumber,
		&e.ConfirmationCode, &e.IsConfirmed, &e.CreatedAt, &e.ConfirmedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("scan guest list entry: %w", err)
	}

	return &e, nil
}

func (r *GuestListRepository) UpdateCode(ctx context.Context, id, code string) error {
	query := `UPDATE guest_list_entries
			  SET confirmation_code = $2
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, code)
	if err != nil {
		return fmt.Errorf("update confirmation code: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("entry rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

// Confirm flips is_confirmed once; the WHERE clause keeps the flag monotonic
// even if two verify attempts land together.
func (r *GuestListRepository) Confirm(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE guest_list_entries
			  SET is_confirmed = true, confirmed_at = $2
			  WHERE id = $1 AND is_confirmed = false`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, at)
	if err != nil {
		return fmt.Errorf("confirm guest list entry: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("entry rows affected: %w", err)
	}
	if rows == 0 {
		// Either missing or already confirmed; already-confirmed is a no-op.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
	}

	return nil
}

func (r *GuestListRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.GuestListEntry, error) {
	query := `SELECT ` + entryColumns + `
			  FROM guest_list_entries
			  WHERE event_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list guest list entries: %w", err)
	}
	defer rows.Close()

	var res []*domain.GuestListEntry
	for rows.Next() {
		var e domain.GuestListEntry
		if err = rows.Scan(
			&e.ID, &e.EventID, &e.FirstName, &e.LastName, &e.Email, &e.PhoneNumber,
			&e.ConfirmationCode, &e.IsConfirmed, &e.CreatedAt, &e.ConfirmedAt,
		); err != nil {
			return nil, fmt.Errorf("scan guest list entry: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

func (r *GuestListRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM guest_list_entries WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete guest list entry: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("entry rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

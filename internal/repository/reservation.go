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

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const reservationColumns = `id, event_id, reservation_type, customer_name, customer_email, customer_phone,
	party_size, special_requests, occasion, status, total_amount,
	table_option_id, section_id, bottle_package_id, approved_at, denied_at, created_at, updated_at`

func (r *ReservationRepository) Create(ctx context.Context, rv *domain.Reservation) error {
	query := `INSERT INTO reservations (` + reservationColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		rv.ID, rv.EventID, rv.Type, rv.CustomerName, rv.CustomerEmail, rv.CustomerPhone,
		rv.PartySize, rv.SpecialRequests, rv.Occasion, rv.Status, rv.TotalAmount,
		rv.TableOptionID, rv.SectionID, rv.BottlePackageID, rv.ApprovedAt, rv.DeniedAt,
		rv.CreatedAt, rv.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	rv, err := scanReservation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return rv, nil
}

func (r *ReservationRepository) ListByStatus(ctx context.Context, statuses []domain.ReservationStatus) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE status = ANY($1)
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(statuses))
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		rv, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, rv)
	}

	return res, rows.Err()
}

func (r *ReservationRepository) Decide(ctx context.Context, id string, status domain.ReservationStatus, at time.Time) error {
	var stampCol string
	switch status {
	case domain.ReservationStatusApproved:
		stampCol = "approved_at"
	case domain.ReservationStatusDenied:
		stampCol = "denied_at"
	default:
		return fmt.Errorf("%w: decision must be approved or denied", domain.ErrValidation)
	}

	// Status guard lives in the WHERE clause so two admins deciding the same
	// request cannot both win.
	query := `UPDATE reservations
			  SET status = $2, ` + stampCol + ` = $3, updated_at = $3
			  WHERE id = $1 AND status = $4`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, at, domain.ReservationStatusPending)
	if err != nil {
		return fmt.Errorf("decide reservation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if rows == 0 {
		var current string
		checkQuery := `SELECT status FROM reservations WHERE id = $1`
		row, qErr := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if qErr != nil {
			return domain.ErrReservationNotFound
		}
		if scanErr := row.Scan(&current); scanErr != nil {
			return domain.ErrReservationNotFound
		}
		return domain.ErrReservationNotPending
	}

	return nil
}

func scanReservation(scan func(...any) error) (*domain.Reservation, error) {
	var rv domain.Reservation
	err := scan(
		&rv.ID, &rv.EventID, &rv.Type, &rv.CustomerName, &rv.CustomerEmail, &rv.CustomerPhone,
		&rv.PartySize, &rv.SpecialRequests, &rv.Occasion, &rv.Status, &rv.TotalAmount,
		&rv.TableOptionID, &rv.SectionID, &rv.BottlePackageID, &rv.ApprovedAt, &rv.DeniedAt,
		&rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

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

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const eventColumns = `id, venue_id, name, description, event_date, dress_code, music_genre, min_age,
	guest_list_available, sections_available, special_events_available,
	sections_booking_mode, special_events_booking_mode, is_published, created_at, updated_at`

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.VenueID, e.Name, e.Description, e.EventDate, e.DressCode, e.MusicGenre, e.MinAge,
		e.GuestListAvailable, e.SectionsAvailable, e.SpecialEventsAvailable,
		e.SectionsBookingMode, e.SpecialEventsBookingMode, e.IsPublished, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context, publishedOnly bool) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events`
	if publishedOnly {
		query += ` WHERE is_published = true`
	}
	query += ` ORDER BY event_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func scanEvent(scan func(...any) error) (*domain.Event, error) {
	var e domain.Event
	err := scan(
		&e.ID, &e.VenueID, &e.Name, &e.Description, &e.EventDate, &e.DressCode, &e.MusicGenre, &e.MinAge,
		&e.GuestListAvailable, &e.SectionsAvailable, &e.SpecialEventsAvailable,
		&e.SectionsBookingMode, &e.SpecialEventsBookingMode, &e.IsPublished, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

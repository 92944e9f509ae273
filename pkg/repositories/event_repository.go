package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tarihce/tarihce-engine/pkg/apperrors"
	"github.com/tarihce/tarihce-engine/pkg/database"
	"github.com/tarihce/tarihce-engine/pkg/models"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// EventRepository provides data access for dated events.
type EventRepository interface {
	// FindByYearAndCategory returns the events of a year in a category,
	// ordered by date. Zero rows is not an error; an unknown category is
	// the caller's concern (checked against CategoryRepository first).
	FindByYearAndCategory(ctx context.Context, year int, categoryName string) ([]*models.Event, error)

	// Insert adds one event. A natural-key conflict on
	// (event_date, event_title) returns apperrors.ErrAlreadyExists so the
	// caller can skip and continue.
	Insert(ctx context.Context, date string, title string, categoryID int, importance int) (*models.Event, error)
}

type eventRepository struct {
	db *database.DB
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *database.DB) EventRepository {
	return &eventRepository{db: db}
}

var _ EventRepository = (*eventRepository)(nil)

func (r *eventRepository) FindByYearAndCategory(ctx context.Context, year int, categoryName string) ([]*models.Event, error) {
	query := `
		SELECT pe.id, pe.event_date::text, pe.event_title, pe.category_id, pe.importance, pe.created_at
		FROM predefined_events pe
		JOIN categories c ON pe.category_id = c.id
		WHERE EXTRACT(YEAR FROM pe.event_date) = $1 AND c.name = $2
		ORDER BY pe.event_date`

	rows, err := r.db.Query(ctx, query, year, categoryName)
	if err != nil {
		return nil, fmt.Errorf("failed to query events for %d/%s: %w", year, categoryName, err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.EventDate, &e.EventTitle, &e.CategoryID, &e.Importance, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (r *eventRepository) Insert(ctx context.Context, date string, title string, categoryID int, importance int) (*models.Event, error) {
	query := `
		INSERT INTO predefined_events (event_date, event_title, category_id, importance)
		VALUES ($1, $2, $3, $4)
		RETURNING id, event_date::text, event_title, category_id, importance, created_at`

	var e models.Event
	err := r.db.QueryRow(ctx, query, date, title, categoryID, importance).
		Scan(&e.ID, &e.EventDate, &e.EventTitle, &e.CategoryID, &e.Importance, &e.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, apperrors.ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to insert event %s/%s: %w", date, title, err)
	}

	return &e, nil
}

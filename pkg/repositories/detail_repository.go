package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tarihce/tarihce-engine/pkg/apperrors"
	"github.com/tarihce/tarihce-engine/pkg/database"
	"github.com/tarihce/tarihce-engine/pkg/models"
)

// DetailRepository persists generated event details keyed by the
// (event_date, event_title) natural key. Same overwrite lifecycle as
// yearly summaries.
type DetailRepository interface {
	Find(ctx context.Context, date string, title string) (*models.EventDetail, error)
	Upsert(ctx context.Context, date string, title string, detail string) error
}

type detailRepository struct {
	db *database.DB
}

// NewDetailRepository creates a new DetailRepository.
func NewDetailRepository(db *database.DB) DetailRepository {
	return &detailRepository{db: db}
}

var _ DetailRepository = (*detailRepository)(nil)

func (r *detailRepository) Find(ctx context.Context, date string, title string) (*models.EventDetail, error) {
	query := `
		SELECT id, event_date::text, event_title, ai_summary, created_at, updated_at
		FROM event_details
		WHERE event_date = $1 AND event_title = $2`

	var d models.EventDetail
	err := r.db.QueryRow(ctx, query, date, title).
		Scan(&d.ID, &d.EventDate, &d.EventTitle, &d.Detail, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event detail %s/%s: %w", date, title, err)
	}

	return &d, nil
}

func (r *detailRepository) Upsert(ctx context.Context, date string, title string, detail string) error {
	query := `
		INSERT INTO event_details (event_date, event_title, ai_summary)
		VALUES ($1, $2, $3)
		ON CONFLICT (event_date, event_title)
		DO UPDATE SET ai_summary = $3, updated_at = CURRENT_TIMESTAMP`

	if _, err := r.db.Exec(ctx, query, date, title, detail); err != nil {
		return fmt.Errorf("failed to upsert event detail %s/%s: %w", date, title, err)
	}

	return nil
}

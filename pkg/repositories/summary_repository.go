package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tarihce/tarihce-engine/pkg/apperrors"
	"github.com/tarihce/tarihce-engine/pkg/database"
	"github.com/tarihce/tarihce-engine/pkg/models"
)

// SummaryRepository persists generated yearly summaries keyed by the
// (year, category) natural key. Regeneration overwrites in place.
type SummaryRepository interface {
	Find(ctx context.Context, year int, category string) (*models.YearlySummary, error)
	Upsert(ctx context.Context, year int, category string, summary string) error
}

type summaryRepository struct {
	db *database.DB
}

// NewSummaryRepository creates a new SummaryRepository.
func NewSummaryRepository(db *database.DB) SummaryRepository {
	return &summaryRepository{db: db}
}

var _ SummaryRepository = (*summaryRepository)(nil)

func (r *summaryRepository) Find(ctx context.Context, year int, category string) (*models.YearlySummary, error) {
	query := `
		SELECT id, year, category, ai_summary, created_at, updated_at
		FROM yearly_summaries
		WHERE year = $1 AND category = $2`

	var s models.YearlySummary
	err := r.db.QueryRow(ctx, query, year, category).
		Scan(&s.ID, &s.Year, &s.Category, &s.Summary, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find summary %d/%s: %w", year, category, err)
	}

	return &s, nil
}

func (r *summaryRepository) Upsert(ctx context.Context, year int, category string, summary string) error {
	query := `
		INSERT INTO yearly_summaries (year, category, ai_summary)
		VALUES ($1, $2, $3)
		ON CONFLICT (year, category)
		DO UPDATE SET ai_summary = $3, updated_at = CURRENT_TIMESTAMP`

	if _, err := r.db.Exec(ctx, query, year, category, summary); err != nil {
		return fmt.Errorf("failed to upsert summary %d/%s: %w", year, category, err)
	}

	return nil
}

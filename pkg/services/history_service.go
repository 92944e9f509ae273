// Package services implements the fact resolution policy: for every
// requested fact the resolver tries the cache, then the database, then
// the generator, persisting and write-through caching generated results.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tarihce/tarihce-engine/pkg/apperrors"
	"github.com/tarihce/tarihce-engine/pkg/cache"
	"github.com/tarihce/tarihce-engine/pkg/generator"
	"github.com/tarihce/tarihce-engine/pkg/models"
	"github.com/tarihce/tarihce-engine/pkg/repositories"
)

// HistoryService resolves historical facts across the three tiers.
// The service exclusively owns read/write sequencing: nothing else
// touches the cache or the generated-content tables.
type HistoryService interface {
	// ListCategories returns all categories ordered by name.
	ListCategories(ctx context.Context) ([]*models.Category, error)

	// ListYears returns the queryable years, current year down to 1923.
	ListYears(ctx context.Context) ([]int, error)

	// GetYearlySummary resolves the narrative for (year, category) and
	// reports which tier answered. Generation failures surface as
	// apperrors.ErrGenerationFailed.
	GetYearlySummary(ctx context.Context, year int, category string) (string, models.Source, error)

	// GetEvents returns the events of (year, category), backfilling from
	// the generator when the store has none. An empty slice is a normal
	// result; generator faults degrade to it rather than erroring.
	GetEvents(ctx context.Context, year int, category string) ([]*models.Event, error)

	// GetEventDetail resolves the narrative for one (date, title) event.
	GetEventDetail(ctx context.Context, date string, title string) (string, models.Source, error)

	// AddEvent inserts a manually curated event, bypassing cache and
	// generation. Duplicate natural keys return apperrors.ErrAlreadyExists.
	AddEvent(ctx context.Context, date string, title string, categoryID int, importance int) (*models.Event, error)

	// InvalidateCache removes all cache entries under a prefix.
	// Administrative reset; cache faults are logged, never surfaced.
	InvalidateCache(ctx context.Context, prefix string)
}

type historyService struct {
	categories repositories.CategoryRepository
	summaries  repositories.SummaryRepository
	details    repositories.DetailRepository
	events     repositories.EventRepository
	cache      cache.Store
	generator  generator.Service
	logger     *zap.Logger

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// NewHistoryService creates the resolver over the given tiers.
func NewHistoryService(
	categories repositories.CategoryRepository,
	summaries repositories.SummaryRepository,
	details repositories.DetailRepository,
	events repositories.EventRepository,
	cacheStore cache.Store,
	gen generator.Service,
	logger *zap.Logger,
) HistoryService {
	return &historyService{
		categories: categories,
		summaries:  summaries,
		details:    details,
		events:     events,
		cache:      cacheStore,
		generator:  gen,
		logger:     logger.Named("history-service"),
		now:        time.Now,
	}
}

var _ HistoryService = (*historyService)(nil)

func (s *historyService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	key := cache.CategoriesKey()

	var cached []*models.Category
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	s.cachePut(ctx, key, categories, cache.TTLCategories)
	return categories, nil
}

func (s *historyService) ListYears(ctx context.Context) ([]int, error) {
	key := cache.YearsKey()

	var cached []int
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	current := s.now().Year()
	years := make([]int, 0, current-models.FoundingYear+1)
	for year := current; year >= models.FoundingYear; year-- {
		years = append(years, year)
	}

	s.cachePut(ctx, key, years, cache.TTLYears)
	return years, nil
}

func (s *historyService) GetYearlySummary(ctx context.Context, year int, category string) (string, models.Source, error) {
	if err := s.validateYear(year); err != nil {
		return "", "", err
	}
	if category == "" {
		return "", "", fmt.Errorf("%w: category is required", apperrors.ErrInvalidInput)
	}

	key := cache.SummaryKey(year, category)

	var cached string
	if s.cacheGet(ctx, key, &cached) {
		return cached, models.SourceCache, nil
	}

	stored, err := s.summaries.Find(ctx, year, category)
	if err == nil {
		s.cachePut(ctx, key, stored.Summary, cache.TTLYearlySummary)
		return stored.Summary, models.SourceDatabase, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return "", "", err
	}

	text, err := s.generator.SynthesizeSummary(ctx, year, category)
	if err != nil {
		return "", "", err
	}

	if err := s.summaries.Upsert(ctx, year, category, text); err != nil {
		return "", "", err
	}

	s.cachePut(ctx, key, text, cache.TTLYearlySummary)
	return text, models.SourceAI, nil
}

func (s *historyService) GetEvents(ctx context.Context, year int, categoryName string) ([]*models.Event, error) {
	if categoryName == "" {
		return nil, fmt.Errorf("%w: category is required", apperrors.ErrInvalidInput)
	}

	// The category must exist before any tier is consulted; an unknown
	// name is a client error, not a generation trigger.
	category, err := s.categories.GetByName(ctx, categoryName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("category %q: %w", categoryName, apperrors.ErrNotFound)
		}
		return nil, err
	}

	events, err := s.events.FindByYearAndCategory(ctx, year, categoryName)
	if err != nil {
		return nil, err
	}
	if len(events) > 0 {
		return events, nil
	}

	// Zero stored events for a valid category triggers backfill. Event
	// discovery degrades to "no events" on generator failure rather than
	// erroring; summaries and details fail loudly instead.
	candidates, err := s.generator.SynthesizeEvents(ctx, year, categoryName)
	if err != nil {
		s.logger.Warn("Event generation failed, returning no events",
			zap.Int("year", year),
			zap.String("category", categoryName),
			zap.Error(err))
		return []*models.Event{}, nil
	}

	saved := make([]*models.Event, 0, len(candidates))
	for _, c := range candidates {
		inserted, err := s.events.Insert(ctx, c.EventDate, c.EventTitle, category.ID, c.Importance)
		if err != nil {
			if errors.Is(err, apperrors.ErrAlreadyExists) {
				s.logger.Debug("Skipping duplicate generated event",
					zap.String("date", c.EventDate),
					zap.String("title", c.EventTitle))
				continue
			}
			s.logger.Warn("Failed to persist generated event, skipping",
				zap.String("date", c.EventDate),
				zap.String("title", c.EventTitle),
				zap.Error(err))
			continue
		}
		saved = append(saved, inserted)
	}

	s.logger.Info("Backfilled events from generator",
		zap.Int("year", year),
		zap.String("category", categoryName),
		zap.Int("generated", len(candidates)),
		zap.Int("persisted", len(saved)))

	return saved, nil
}

func (s *historyService) GetEventDetail(ctx context.Context, date string, title string) (string, models.Source, error) {
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", "", fmt.Errorf("%w: date must be in YYYY-MM-DD format", apperrors.ErrInvalidInput)
	}
	if title == "" {
		return "", "", fmt.Errorf("%w: title is required", apperrors.ErrInvalidInput)
	}

	key := cache.EventDetailKey(date, title)

	var cached string
	if s.cacheGet(ctx, key, &cached) {
		return cached, models.SourceCache, nil
	}

	stored, err := s.details.Find(ctx, date, title)
	if err == nil {
		s.cachePut(ctx, key, stored.Detail, cache.TTLEventDetail)
		return stored.Detail, models.SourceDatabase, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return "", "", err
	}

	text, err := s.generator.SynthesizeDetail(ctx, parsedDate, title)
	if err != nil {
		return "", "", err
	}

	if err := s.details.Upsert(ctx, date, title, text); err != nil {
		return "", "", err
	}

	s.cachePut(ctx, key, text, cache.TTLEventDetail)
	return text, models.SourceAI, nil
}

func (s *historyService) AddEvent(ctx context.Context, date string, title string, categoryID int, importance int) (*models.Event, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", apperrors.ErrInvalidInput)
	}
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrInvalidInput)
	}
	if categoryID <= 0 {
		return nil, fmt.Errorf("%w: category_id is required", apperrors.ErrInvalidInput)
	}

	if importance == 0 {
		importance = models.MinImportance
	}
	if !models.ValidImportance(importance) {
		return nil, fmt.Errorf("%w: importance must be between %d and %d",
			apperrors.ErrInvalidInput, models.MinImportance, models.MaxImportance)
	}

	return s.events.Insert(ctx, date, title, categoryID, importance)
}

func (s *historyService) InvalidateCache(ctx context.Context, prefix string) {
	if err := s.cache.InvalidatePrefix(ctx, prefix); err != nil {
		s.logger.Warn("Cache invalidation skipped",
			zap.String("prefix", prefix),
			zap.Error(err))
		return
	}
	s.logger.Info("Cache invalidated", zap.String("prefix", prefix))
}

func (s *historyService) validateYear(year int) error {
	current := s.now().Year()
	if year < models.FoundingYear || year > current {
		return fmt.Errorf("%w: year must be between %d and %d",
			apperrors.ErrInvalidInput, models.FoundingYear, current)
	}
	return nil
}

// cacheGet reads from the cache tier, degrading faults to misses so an
// unavailable backend never fails a request.
func (s *historyService) cacheGet(ctx context.Context, key string, dest any) bool {
	hit, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.logger.Warn("Cache read failed, treating as miss",
			zap.String("key", key),
			zap.Error(err))
		return false
	}
	return hit
}

// cachePut writes through to the cache tier, logging and moving on when
// the backend is unreachable.
func (s *historyService) cachePut(ctx context.Context, key string, value any, ttl time.Duration) {
	if err := s.cache.Put(ctx, key, value, ttl); err != nil {
		s.logger.Warn("Cache write skipped",
			zap.String("key", key),
			zap.Error(err))
	}
}

package services

import (
	"context"
	"time"

	"github.com/tarihce/tarihce-engine/pkg/apperrors"
	"github.com/tarihce/tarihce-engine/pkg/models"
)

// mockCategoryRepository is a configurable CategoryRepository for tests.
type mockCategoryRepository struct {
	ListFunc      func(ctx context.Context) ([]*models.Category, error)
	GetByNameFunc func(ctx context.Context, name string) (*models.Category, error)

	ListCalls      int
	GetByNameCalls int
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	m.ListCalls++
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*models.Category{}, nil
}

func (m *mockCategoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	m.GetByNameCalls++
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, apperrors.ErrNotFound
}

type mockSummaryRepository struct {
	FindFunc   func(ctx context.Context, year int, category string) (*models.YearlySummary, error)
	UpsertFunc func(ctx context.Context, year int, category string, summary string) error

	FindCalls   int
	UpsertCalls int
}

func (m *mockSummaryRepository) Find(ctx context.Context, year int, category string) (*models.YearlySummary, error) {
	m.FindCalls++
	if m.FindFunc != nil {
		return m.FindFunc(ctx, year, category)
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockSummaryRepository) Upsert(ctx context.Context, year int, category string, summary string) error {
	m.UpsertCalls++
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, year, category, summary)
	}
	return nil
}

type mockDetailRepository struct {
	FindFunc   func(ctx context.Context, date string, title string) (*models.EventDetail, error)
	UpsertFunc func(ctx context.Context, date string, title string, detail string) error

	FindCalls   int
	UpsertCalls int
}

func (m *mockDetailRepository) Find(ctx context.Context, date string, title string) (*models.EventDetail, error) {
	m.FindCalls++
	if m.FindFunc != nil {
		return m.FindFunc(ctx, date, title)
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockDetailRepository) Upsert(ctx context.Context, date string, title string, detail string) error {
	m.UpsertCalls++
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, date, title, detail)
	}
	return nil
}

type mockEventRepository struct {
	FindByYearAndCategoryFunc func(ctx context.Context, year int, categoryName string) ([]*models.Event, error)
	InsertFunc                func(ctx context.Context, date string, title string, categoryID int, importance int) (*models.Event, error)

	FindByYearAndCategoryCalls int
	InsertCalls                int
}

func (m *mockEventRepository) FindByYearAndCategory(ctx context.Context, year int, categoryName string) ([]*models.Event, error) {
	m.FindByYearAndCategoryCalls++
	if m.FindByYearAndCategoryFunc != nil {
		return m.FindByYearAndCategoryFunc(ctx, year, categoryName)
	}
	return []*models.Event{}, nil
}

func (m *mockEventRepository) Insert(ctx context.Context, date string, title string, categoryID int, importance int) (*models.Event, error) {
	m.InsertCalls++
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, date, title, categoryID, importance)
	}
	return &models.Event{
		ID:         m.InsertCalls,
		EventDate:  date,
		EventTitle: title,
		CategoryID: categoryID,
		Importance: importance,
	}, nil
}

type mockGenerator struct {
	SynthesizeSummaryFunc func(ctx context.Context, year int, category string) (string, error)
	SynthesizeDetailFunc  func(ctx context.Context, date time.Time, title string) (string, error)
	SynthesizeEventsFunc  func(ctx context.Context, year int, category string) ([]models.CandidateEvent, error)

	SynthesizeSummaryCalls int
	SynthesizeDetailCalls  int
	SynthesizeEventsCalls  int
}

func (m *mockGenerator) SynthesizeSummary(ctx context.Context, year int, category string) (string, error) {
	m.SynthesizeSummaryCalls++
	if m.SynthesizeSummaryFunc != nil {
		return m.SynthesizeSummaryFunc(ctx, year, category)
	}
	return "", nil
}

func (m *mockGenerator) SynthesizeDetail(ctx context.Context, date time.Time, title string) (string, error) {
	m.SynthesizeDetailCalls++
	if m.SynthesizeDetailFunc != nil {
		return m.SynthesizeDetailFunc(ctx, date, title)
	}
	return "", nil
}

func (m *mockGenerator) SynthesizeEvents(ctx context.Context, year int, category string) ([]models.CandidateEvent, error) {
	m.SynthesizeEventsCalls++
	if m.SynthesizeEventsFunc != nil {
		return m.SynthesizeEventsFunc(ctx, year, category)
	}
	return []models.CandidateEvent{}, nil
}

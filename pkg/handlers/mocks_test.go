package handlers

import (
	"context"

	"github.com/tarihce/tarihce-engine/pkg/apperrors"
	"github.com/tarihce/tarihce-engine/pkg/models"
)

// mockHistoryService is a configurable HistoryService for handler tests.
type mockHistoryService struct {
	ListCategoriesFunc   func(ctx context.Context) ([]*models.Category, error)
	ListYearsFunc        func(ctx context.Context) ([]int, error)
	GetYearlySummaryFunc func(ctx context.Context, year int, category string) (string, models.Source, error)
	GetEventsFunc        func(ctx context.Context, year int, category string) ([]*models.Event, error)
	GetEventDetailFunc   func(ctx context.Context, date string, title string) (string, models.Source, error)
	AddEventFunc         func(ctx context.Context, date string, title string, categoryID int, importance int) (*models.Event, error)
	InvalidateCacheFunc  func(ctx context.Context, prefix string)

	GetYearlySummaryCalls int
	GetEventsCalls        int
	GetEventDetailCalls   int
	AddEventCalls         int
	InvalidateCacheCalls  int
}

func (m *mockHistoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	return []*models.Category{}, nil
}

func (m *mockHistoryService) ListYears(ctx context.Context) ([]int, error) {
	if m.ListYearsFunc != nil {
		return m.ListYearsFunc(ctx)
	}
	return []int{}, nil
}

func (m *mockHistoryService) GetYearlySummary(ctx context.Context, year int, category string) (string, models.Source, error) {
	m.GetYearlySummaryCalls++
	if m.GetYearlySummaryFunc != nil {
		return m.GetYearlySummaryFunc(ctx, year, category)
	}
	return "", "", apperrors.ErrNotFound
}

func (m *mockHistoryService) GetEvents(ctx context.Context, year int, category string) ([]*models.Event, error) {
	m.GetEventsCalls++
	if m.GetEventsFunc != nil {
		return m.GetEventsFunc(ctx, year, category)
	}
	return []*models.Event{}, nil
}

func (m *mockHistoryService) GetEventDetail(ctx context.Context, date string, title string) (string, models.Source, error) {
	m.GetEventDetailCalls++
	if m.GetEventDetailFunc != nil {
		return m.GetEventDetailFunc(ctx, date, title)
	}
	return "", "", apperrors.ErrNotFound
}

func (m *mockHistoryService) AddEvent(ctx context.Context, date string, title string, categoryID int, importance int) (*models.Event, error) {
	m.AddEventCalls++
	if m.AddEventFunc != nil {
		return m.AddEventFunc(ctx, date, title, categoryID, importance)
	}
	return &models.Event{EventDate: date, EventTitle: title, CategoryID: categoryID, Importance: importance}, nil
}

func (m *mockHistoryService) InvalidateCache(ctx context.Context, prefix string) {
	m.InvalidateCacheCalls++
	if m.InvalidateCacheFunc != nil {
		m.InvalidateCacheFunc(ctx, prefix)
	}
}

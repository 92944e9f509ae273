package models

import "time"

// Source indicates which tier answered a fact request.
type Source string

const (
	SourceCache    Source = "cache"
	SourceDatabase Source = "database"
	SourceAI       Source = "ai"
)

// YearlySummary is a generated narrative for one (year, category) pair.
// One row per natural key; regeneration overwrites the text in place.
type YearlySummary struct {
	ID        int       `json:"id"`
	Year      int       `json:"year"`
	Category  string    `json:"category"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EventDetail is a generated narrative about a single event, keyed by
// (event_date, event_title). Same overwrite lifecycle as YearlySummary.
type EventDetail struct {
	ID         int       `json:"id"`
	EventDate  string    `json:"event_date"` // YYYY-MM-DD
	EventTitle string    `json:"event_title"`
	Detail     string    `json:"detail"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

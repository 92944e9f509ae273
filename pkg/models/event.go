package models

import "time"

// Importance bounds for events. Values outside the domain are clamped
// to DefaultImportance when they come from the generator.
const (
	MinImportance     = 1
	MaxImportance     = 5
	DefaultImportance = 3
)

// FoundingYear is the lower bound of the queryable year range.
const FoundingYear = 1923

// Event is a discrete dated event in a category. The natural key is
// (event_date, event_title); duplicate inserts are rejected by the store.
type Event struct {
	ID         int       `json:"id"`
	EventDate  string    `json:"event_date"` // YYYY-MM-DD
	EventTitle string    `json:"event_title"`
	CategoryID int       `json:"category_id,omitempty"`
	Importance int       `json:"importance"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// CandidateEvent is a generator-proposed event before persistence.
type CandidateEvent struct {
	EventDate  string `json:"event_date"`
	EventTitle string `json:"event_title"`
	Importance int    `json:"importance"`
}

// ValidImportance reports whether v is inside the importance domain.
func ValidImportance(v int) bool {
	return v >= MinImportance && v <= MaxImportance
}

// ClampImportance returns v when it is inside the importance domain and
// DefaultImportance otherwise.
func ClampImportance(v int) int {
	if ValidImportance(v) {
		return v
	}
	return DefaultImportance
}

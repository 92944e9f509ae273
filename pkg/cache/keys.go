package cache

import (
	"fmt"
	"time"
)

// Key prefixes, one per fact type. InvalidatePrefix operates on these.
const (
	PrefixSummary     = "summary"
	PrefixEventDetail = "event"
	PrefixCategories  = "categories"
	PrefixYears       = "years"
)

// Cache durations by fact type. Summaries and details are expensive to
// regenerate and semantically stable; the list keys are cheap and change
// rarely (new category) or predictably (year rollover).
const (
	TTLYearlySummary = 7 * 24 * time.Hour
	TTLEventDetail   = 30 * 24 * time.Hour
	TTLCategories    = 24 * time.Hour
	TTLYears         = 24 * time.Hour
	TTLDefault       = time.Hour
)

// SummaryKey returns the cache key for a (year, category) yearly summary.
func SummaryKey(year int, category string) string {
	return fmt.Sprintf("%s:%d:%s", PrefixSummary, year, category)
}

// EventDetailKey returns the cache key for a (date, title) event detail.
func EventDetailKey(date, title string) string {
	return fmt.Sprintf("%s:%s:%s", PrefixEventDetail, date, title)
}

// CategoriesKey returns the cache key for the category list.
func CategoriesKey() string {
	return PrefixCategories + ":all"
}

// YearsKey returns the cache key for the year list.
func YearsKey() string {
	return PrefixYears + ":all"
}

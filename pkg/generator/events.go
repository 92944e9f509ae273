package generator

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"

	"go.uber.org/zap"

	"github.com/tarihce/tarihce-engine/pkg/jsonutil"
	"github.com/tarihce/tarihce-engine/pkg/models"
)

// eventArrayPattern locates a bracketed array-of-objects inside the model
// output, which sometimes wraps the JSON in commentary.
var eventArrayPattern = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)

// isoDatePattern is the required YYYY-MM-DD shape for event dates.
var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// rawEvent is one array element before normalization. Fields stay raw so
// a string importance or a numeric title does not fail the whole parse.
type rawEvent struct {
	EventDate  json.RawMessage `json:"event_date"`
	EventTitle json.RawMessage `json:"event_title"`
	Importance json.RawMessage `json:"importance"`
}

// parseEventList turns raw model output into a normalized, sorted event
// list. The chain is: parse the extracted array substring, else parse the
// whole output, else fall back to a single placeholder event. Per-element
// defaults: a date that is not YYYY-MM-DD becomes {year}-06-15 (the
// mid-year fallback the prompt itself instructs), an importance outside
// [1,5] becomes 3. The result is ordered by importance descending then
// date ascending; callers rely on that ordering.
func parseEventList(raw string, year int, category string, logger *zap.Logger) []models.CandidateEvent {
	parsed, ok := parseEventArray(raw)
	if !ok {
		logger.Warn("Event list output is not parseable JSON, using placeholder",
			zap.Int("year", year),
			zap.String("category", category),
			zap.Int("output_len", len(raw)))
		return []models.CandidateEvent{placeholderEvent(year, category)}
	}

	events := make([]models.CandidateEvent, 0, len(parsed))
	for _, re := range parsed {
		title := jsonutil.FlexibleStringValue(re.EventTitle)
		if title == "" {
			continue
		}

		date := jsonutil.FlexibleStringValue(re.EventDate)
		if !isoDatePattern.MatchString(date) {
			date = fmt.Sprintf("%d-06-15", year)
		}

		importance := models.DefaultImportance
		if v, ok := jsonutil.FlexibleIntValue(re.Importance); ok {
			importance = models.ClampImportance(v)
		}

		events = append(events, models.CandidateEvent{
			EventDate:  date,
			EventTitle: title,
			Importance: importance,
		})
	}

	sortEvents(events)
	return events
}

// parseEventArray tries the extracted array substring first, then the
// entire output.
func parseEventArray(raw string) ([]rawEvent, bool) {
	if match := eventArrayPattern.FindString(raw); match != "" {
		var events []rawEvent
		if err := json.Unmarshal([]byte(match), &events); err == nil {
			return events, true
		}
	}

	var events []rawEvent
	if err := json.Unmarshal([]byte(raw), &events); err == nil {
		return events, true
	}

	return nil, false
}

// placeholderEvent is the guaranteed fallback when the model output cannot
// be parsed at all: one generically titled mid-importance event dated July 1.
func placeholderEvent(year int, category string) models.CandidateEvent {
	return models.CandidateEvent{
		EventDate:  fmt.Sprintf("%d-07-01", year),
		EventTitle: fmt.Sprintf("%d Yılı %s Olayı", year, category),
		Importance: models.DefaultImportance,
	}
}

// sortEvents orders by importance descending, ties broken chronologically.
// ISO dates compare correctly as strings.
func sortEvents(events []models.CandidateEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Importance != events[j].Importance {
			return events[i].Importance > events[j].Importance
		}
		return events[i].EventDate < events[j].EventDate
	})
}

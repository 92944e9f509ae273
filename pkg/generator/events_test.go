package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tarihce/tarihce-engine/pkg/models"
)

func TestParseEventList_ValidJSON(t *testing.T) {
	raw := `[
		{"event_date": "1999-08-17", "event_title": "Marmara Depremi", "importance": 5},
		{"event_date": "1999-11-12", "event_title": "Duzce Depremi", "importance": 4}
	]`

	events := parseEventList(raw, 1999, "Doğal Afet", zap.NewNop())

	require.Len(t, events, 2)
	assert.Equal(t, "Marmara Depremi", events[0].EventTitle)
	assert.Equal(t, "1999-08-17", events[0].EventDate)
	assert.Equal(t, 5, events[0].Importance)
}

func TestParseEventList_ExtractsArrayFromCommentary(t *testing.T) {
	raw := `İşte 1999 yılının olayları:

[{"event_date": "1999-08-17", "event_title": "Marmara Depremi", "importance": 5}]

Umarım yardımcı olur.`

	events := parseEventList(raw, 1999, "Doğal Afet", zap.NewNop())

	require.Len(t, events, 1)
	assert.Equal(t, "Marmara Depremi", events[0].EventTitle)
}

func TestParseEventList_OutOfRangeImportanceDefaultsToMid(t *testing.T) {
	raw := `[{"event_date":"1999-08-17","event_title":"Deprem","importance":9}]`

	events := parseEventList(raw, 1999, "Doğal Afet", zap.NewNop())

	require.Len(t, events, 1)
	assert.Equal(t, models.DefaultImportance, events[0].Importance)
}

func TestParseEventList_StringImportanceIsParsed(t *testing.T) {
	raw := `[{"event_date":"2001-02-19","event_title":"Ekonomik Kriz","importance":"4"}]`

	events := parseEventList(raw, 2001, "Ekonomik", zap.NewNop())

	require.Len(t, events, 1)
	assert.Equal(t, 4, events[0].Importance)
}

func TestParseEventList_MissingImportanceDefaultsToMid(t *testing.T) {
	raw := `[{"event_date":"2001-02-19","event_title":"Ekonomik Kriz"}]`

	events := parseEventList(raw, 2001, "Ekonomik", zap.NewNop())

	require.Len(t, events, 1)
	assert.Equal(t, models.DefaultImportance, events[0].Importance)
}

func TestParseEventList_MissingDateGetsMidYearDefault(t *testing.T) {
	raw := `[{"event_title":"Bir Olay","importance":3}]`

	events := parseEventList(raw, 2001, "Sosyal", zap.NewNop())

	require.Len(t, events, 1)
	assert.Equal(t, "2001-06-15", events[0].EventDate)
}

func TestParseEventList_MalformedDateGetsMidYearDefault(t *testing.T) {
	raw := `[{"event_date":"17 Ağustos 1999","event_title":"Deprem","importance":5}]`

	events := parseEventList(raw, 1999, "Doğal Afet", zap.NewNop())

	require.Len(t, events, 1)
	assert.Equal(t, "1999-06-15", events[0].EventDate)
}

func TestParseEventList_SortsByImportanceThenDate(t *testing.T) {
	raw := `[
		{"event_date":"2001-01-01","event_title":"A","importance":5},
		{"event_date":"1999-01-01","event_title":"B","importance":3},
		{"event_date":"1999-06-01","event_title":"C","importance":5}
	]`

	events := parseEventList(raw, 2001, "Siyasi", zap.NewNop())

	require.Len(t, events, 3)
	assert.Equal(t, "C", events[0].EventTitle) // 5-star, earlier date
	assert.Equal(t, "A", events[1].EventTitle) // 5-star, later date
	assert.Equal(t, "B", events[2].EventTitle) // 3-star
}

func TestParseEventList_UnparseableOutputYieldsPlaceholder(t *testing.T) {
	raw := `Üzgünüm, bu konuda yeterli bilgim yok.`

	events := parseEventList(raw, 1995, "Spor", zap.NewNop())

	require.Len(t, events, 1)
	assert.Equal(t, "1995-07-01", events[0].EventDate)
	assert.Equal(t, "1995 Yılı Spor Olayı", events[0].EventTitle)
	assert.Equal(t, models.DefaultImportance, events[0].Importance)
}

func TestParseEventList_EmptyArrayStaysEmpty(t *testing.T) {
	events := parseEventList("[]", 1995, "Spor", zap.NewNop())

	assert.Empty(t, events)
}

func TestParseEventList_SkipsElementsWithoutTitle(t *testing.T) {
	raw := `[
		{"event_date":"1995-03-01","importance":4},
		{"event_date":"1995-05-01","event_title":"Gerçek Olay","importance":2}
	]`

	events := parseEventList(raw, 1995, "Spor", zap.NewNop())

	require.Len(t, events, 1)
	assert.Equal(t, "Gerçek Olay", events[0].EventTitle)
}

func TestParseEventList_NumericTitleIsStringified(t *testing.T) {
	raw := `[{"event_date":"1995-03-01","event_title":1995,"importance":4}]`

	events := parseEventList(raw, 1995, "Spor", zap.NewNop())

	require.Len(t, events, 1)
	assert.Equal(t, "1995", events[0].EventTitle)
}

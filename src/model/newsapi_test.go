package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsTimeUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		json string
		want time.Time
	}{
		{"rfc3339", `"2025-06-01T08:00:00Z"`, time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)},
		{"millis", `"2025-06-01T08:00:00.000Z"`, time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)},
		{"offset", `"2025-06-01T10:00:00+02:00"`, time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)},
		{"null", `null`, time.Time{}},
		{"empty", `""`, time.Time{}},
		{"garbage string", `"June 1st, 2025"`, time.Time{}},
		{"non-string", `1748764800`, time.Time{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var nt NewsTime
			require.NoError(t, json.Unmarshal([]byte(tc.json), &nt))
			assert.True(t, nt.Time.Equal(tc.want), "got %v, want %v", nt.Time, tc.want)
		})
	}
}

// One article with an unparseable publishedAt must not take down the rest of
// the envelope; it decodes with the zero time and the valid articles survive.
func TestEnvelopeSurvivesMalformedTimestamp(t *testing.T) {
	payload := `{
		"status": "ok",
		"totalResults": 2,
		"articles": [
			{"title": "good", "url": "https://example.com/a", "publishedAt": "2025-06-01T08:00:00Z"},
			{"title": "bad ts", "url": "https://example.com/b", "publishedAt": "June 1st, 2025"}
		]
	}`

	var resp NewsAPIResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))
	require.Len(t, resp.Articles, 2)

	assert.Equal(t, time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), resp.Articles[0].PublishedAt.Time)
	assert.True(t, resp.Articles[1].PublishedAt.IsZero())
}

func TestSourceNameFallsBackToUnknown(t *testing.T) {
	assert.Equal(t, "Test Wire", RawArticle{Source: RawSource{Name: "Test Wire"}}.SourceName())
	assert.Equal(t, "Unknown", RawArticle{}.SourceName())
}

func TestValidSentiment(t *testing.T) {
	assert.True(t, ValidSentiment(SentimentPositive))
	assert.True(t, ValidSentiment(SentimentNegative))
	assert.True(t, ValidSentiment(SentimentNeutral))
	assert.False(t, ValidSentiment("bullish"))
	assert.False(t, ValidSentiment(""))
}

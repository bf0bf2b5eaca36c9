package model

import (
	"strconv"
	"time"
)

// NewsAPIResponse is the envelope returned by newsapi.org /v2/everything.
type NewsAPIResponse struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Code         string       `json:"code,omitempty"`
	Message      string       `json:"message,omitempty"`
	Articles     []RawArticle `json:"articles"`
}

// RawArticle is an article as delivered by the upstream news API. It has no
// identity; identity is assigned when the ingestor persists it.
type RawArticle struct {
	Source      RawSource `json:"source"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Content     string    `json:"content"`
	PublishedAt NewsTime  `json:"publishedAt"`
}

type RawSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SourceName returns the upstream source name, or "Unknown" when the feed
// omits it.
func (a RawArticle) SourceName() string {
	if a.Source.Name == "" {
		return "Unknown"
	}
	return a.Source.Name
}

// NewsTime handles NewsAPI timestamps like:
// - "2025-12-08T16:00:00Z"
// - "2025-12-08T16:00:00.000Z"
//
// Upstream feeds occasionally ship garbage in publishedAt. An unparseable
// value decodes to the zero time instead of an error, so one bad timestamp
// never fails the whole response envelope; the ingestor substitutes the
// ingestion time for zero.
type NewsTime struct {
	time.Time
}

func (t *NewsTime) UnmarshalJSON(b []byte) error {
	t.Time = time.Time{}

	if string(b) == "null" {
		return nil
	}

	s, err := strconv.Unquote(string(b))
	if err != nil || s == "" {
		return nil
	}

	layouts := []string{
		time.RFC3339, // "2006-01-02T15:04:05Z07:00"
		"2006-01-02T15:04:05.000Z",
		"2006-01-02T15:04:05Z",
	}

	for _, layout := range layouts {
		if tt, e := time.Parse(layout, s); e == nil {
			t.Time = tt
			return nil
		}
	}
	return nil
}

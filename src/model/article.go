package model

import "time"

// Sentiment labels assigned to articles and signals.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// ValidSentiment reports whether s is one of the known sentiment labels.
// Used to validate the ?sentiment= query filter before it reaches the repository.
func ValidSentiment(s string) bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// NewsArticle is a financial news article enriched with sentiment and keyword
// tags at ingestion time. Rows are create-only; there is no update path.
type NewsArticle struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content,omitempty"`
	URL         string    `gorm:"not null" json:"url"`
	Source      string    `gorm:"not null" json:"source"`
	PublishedAt time.Time `gorm:"index" json:"published_at"`

	// Sentiment holds one of the Sentiment* labels, always consistent with
	// SentimentScore (score > 1 positive, score < -1 negative, else neutral).
	Sentiment      string `gorm:"size:10;not null;index" json:"sentiment"`
	SentimentScore int    `gorm:"not null" json:"sentiment_score"` // -10 .. 10

	// Keywords are taxonomy tags in taxonomy declaration order.
	Keywords []string `gorm:"type:jsonb;serializer:json" json:"keywords"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName allows you to control the exact table name for news articles.
func (NewsArticle) TableName() string {
	return "news_articles"
}

package model

import "time"

// Signal actions derived from aggregated sentiment.
const (
	SignalBuy  = "buy"
	SignalSell = "sell"
	SignalHold = "hold"
)

// ForexSignal is one directional recommendation for a currency pair, derived
// from the sentiment of every article in one ingestion batch that mentioned
// either leg of the pair. Each batch writes fresh rows; the newest row per
// pair is the current signal and older rows remain as history.
type ForexSignal struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	CurrencyPair string `gorm:"size:7;not null;index" json:"currency_pair"` // "EUR/USD"
	Signal       string `gorm:"size:10;not null" json:"signal"`
	Sentiment    string `gorm:"size:10;not null" json:"sentiment"`

	// SentimentScore is the rounded mean of the contributing articles' scores.
	SentimentScore int `gorm:"not null" json:"sentiment_score"`

	// NewsArticleIDs lists contributing articles in batch processing order.
	// NewsArticleCount always equals len(NewsArticleIDs) and is >= 1.
	NewsArticleIDs   []uint `gorm:"type:jsonb;serializer:json" json:"news_article_ids"`
	NewsArticleCount int    `gorm:"not null" json:"news_article_count"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName allows you to control the exact table name for forex signals.
func (ForexSignal) TableName() string {
	return "forex_signals"
}

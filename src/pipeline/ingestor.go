package pipeline

import (
	"context"

	"forexsignals/src/analysis"
	"forexsignals/src/model"
)

// contribution is one ingested article's input to the signal aggregation:
// its assigned identity, its clamped sentiment score and the pairs it mentions.
type contribution struct {
	articleID uint
	score     int
	pairs     []analysis.CurrencyPair
}

// ingestArticle scores, tags and persists one raw article. On success the
// persisted identity plus the data the aggregator needs is returned; on a
// persistence failure the article contributes nothing.
func (p *Pipeline) ingestArticle(ctx context.Context, raw model.RawArticle) (contribution, error) {
	score := analysis.ArticleScore(raw.Title, raw.Description)
	sentiment := analysis.Label(score, p.thresholds)
	keywords := analysis.ExtractKeywords(raw.Title, raw.Description)

	publishedAt := raw.PublishedAt.Time
	if publishedAt.IsZero() {
		// Upstream feeds occasionally ship articles without a usable
		// timestamp; fall back to ingestion time rather than dropping them.
		publishedAt = p.now()
	}

	article := model.NewsArticle{
		Title:          raw.Title,
		Description:    raw.Description,
		Content:        raw.Content,
		URL:            raw.URL,
		Source:         raw.SourceName(),
		PublishedAt:    publishedAt,
		Sentiment:      sentiment,
		SentimentScore: score,
		Keywords:       keywords,
		CreatedAt:      p.now(),
	}

	if err := p.articles.Create(ctx, &article); err != nil {
		return contribution{}, err
	}

	return contribution{
		articleID: article.ID,
		score:     score,
		pairs:     p.detector.Mentions(raw.Title, raw.Description),
	}, nil
}

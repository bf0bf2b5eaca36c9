package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"

	"forexsignals/src/analysis"
	"forexsignals/src/model"
)

// ArticleStore is the slice of the article repository the pipeline needs.
type ArticleStore interface {
	Create(ctx context.Context, article *model.NewsArticle) error
}

// SignalStore is the slice of the signal repository the pipeline needs.
type SignalStore interface {
	Create(ctx context.Context, signal *model.ForexSignal) error
}

// Broadcaster pushes freshly persisted signals to live subscribers.
type Broadcaster interface {
	BroadcastSignal(signal model.ForexSignal)
}

// Result reports what one batch actually persisted. Counts are rows created,
// not rows attempted.
type Result struct {
	BatchID         string `json:"batch_id"`
	ArticlesCreated int    `json:"articles"`
	SignalsCreated  int    `json:"signals"`
}

// Pipeline turns one batch of raw news articles into persisted, enriched
// articles plus one persisted signal per mentioned currency pair.
type Pipeline struct {
	articles   ArticleStore
	signals    SignalStore
	detector   *analysis.Detector
	thresholds analysis.Thresholds

	broadcaster Broadcaster
	now         func() time.Time
}

func New(
	articles ArticleStore,
	signals SignalStore,
	detector *analysis.Detector,
	thresholds analysis.Thresholds,
) *Pipeline {
	return &Pipeline{
		articles:   articles,
		signals:    signals,
		detector:   detector,
		thresholds: thresholds,
		now:        time.Now,
	}
}

// WithBroadcaster attaches a live signal feed. Optional.
func (p *Pipeline) WithBroadcaster(b Broadcaster) *Pipeline {
	p.broadcaster = b
	return p
}

// WithClock overrides the wall clock. Useful for tests.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// Run processes one batch sequentially: each article is scored, tagged,
// checked for currency mentions and persisted; the per-pair accumulation is
// then folded into signals. A failed article or signal insert is logged and
// skipped, never aborting the rest of the batch.
func (p *Pipeline) Run(ctx context.Context, raw []model.RawArticle) Result {
	batchID := uuid.NewString()

	log := logger.WithFields(map[string]interface{}{
		"component": "Pipeline",
		"batch_id":  batchID,
	})
	log.WithField("raw_articles", len(raw)).Info("Starting ingestion batch")

	var contribs []contribution

	for _, article := range raw {
		contrib, err := p.ingestArticle(ctx, article)
		if err != nil {
			log.WithField("url", article.URL).
				WithError(err).
				Error("Skipping article after failed ingestion")
			continue
		}
		contribs = append(contribs, contrib)
	}

	signalsCreated := p.aggregate(ctx, log, contribs)

	result := Result{
		BatchID:         batchID,
		ArticlesCreated: len(contribs),
		SignalsCreated:  signalsCreated,
	}

	log.WithFields(map[string]interface{}{
		"articles_created": result.ArticlesCreated,
		"signals_created":  result.SignalsCreated,
	}).Info("Ingestion batch finished")

	return result
}

package fetchnews

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"forexsignals/src/analysis"
	"forexsignals/src/connectors"
	"forexsignals/src/database"
	"forexsignals/src/pipeline"
	"forexsignals/src/repository"
)

// batchTimeout bounds the whole one-shot run: the upstream fetch plus every
// article and signal insert.
const batchTimeout = 2 * time.Minute

// FetchNews is the one-shot ingestion job: fetch a batch, run the pipeline,
// exit. The server exposes the same operation via POST /api/fetchAndAnalyze.
type FetchNews struct{}

func (f *FetchNews) Start() error {
	if err := database.InitMainDB(); err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	analysisCfg := analysis.GetConfig()
	pairs, err := analysis.ParsePairs(analysisCfg.CurrencyPairs)
	if err != nil {
		return err
	}
	detector := analysis.NewDetector(pairs, analysisCfg.WordBoundary)

	connCfg := connectors.GetConfig()
	client := connectors.NewNewsAPIClient(connCfg.NewsAPIKey, connCfg.NewsAPIBaseURL)

	raw, err := client.FetchFinancialNews(ctx, connCfg.NewsQuery, connCfg.NewsPageSize)
	if err != nil {
		return err
	}

	logrus.Infof("Fetched %d raw articles", len(raw))

	pipe := pipeline.New(
		repository.NewArticleRepository(),
		repository.NewSignalRepository(),
		detector,
		analysis.DefaultThresholds(),
	)

	result := pipe.Run(ctx, raw)

	logrus.WithFields(map[string]interface{}{
		"batch_id": result.BatchID,
		"articles": result.ArticlesCreated,
		"signals":  result.SignalsCreated,
	}).Info("Batch complete")

	return nil
}

package handler

import (
	"context"
	"errors"
	"net/http"

	logger "github.com/sirupsen/logrus"

	"forexsignals/src/connectors"
	"forexsignals/src/model"
	"forexsignals/src/pipeline"
)

type newsFetcher interface {
	FetchFinancialNews(ctx context.Context, query string, pageSize int) ([]model.RawArticle, error)
}

type batchRunner interface {
	Run(ctx context.Context, raw []model.RawArticle) pipeline.Result
}

// FetchAndAnalyzeHandler returns the handler behind POST /api/fetchAndAnalyze:
// it pulls one batch from the upstream news API and runs the ingestion
// pipeline over it. A missing credential or an upstream failure aborts the
// whole batch with nothing persisted; per-item persistence failures inside the
// pipeline only reduce the reported counts.
func FetchAndAnalyzeHandler(fetcher newsFetcher, runner batchRunner, query string, pageSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := fetcher.FetchFinancialNews(r.Context(), query, pageSize)
		if err != nil {
			switch {
			case errors.Is(err, connectors.ErrMissingAPIKey):
				writeError(w, http.StatusBadRequest, "API key not provided")
			case errors.Is(err, connectors.ErrUpstream):
				logger.WithError(err).Error("failed to fetch news from external API")
				writeError(w, http.StatusBadRequest, "Failed to fetch news from external API")
			default:
				logger.WithError(err).Error("failed to fetch and analyze news")
				writeError(w, http.StatusInternalServerError, "Failed to fetch and analyze news")
			}
			return
		}

		result := runner.Run(r.Context(), raw)

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message":  "Successfully fetched and analyzed news",
			"batch_id": result.BatchID,
			"articles": result.ArticlesCreated,
			"signals":  result.SignalsCreated,
		})
	}
}

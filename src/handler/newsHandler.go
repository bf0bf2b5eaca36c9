package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	logger "github.com/sirupsen/logrus"

	"forexsignals/src/model"
	"forexsignals/src/repository"
)

type articleLister interface {
	FindLatest(ctx context.Context, limit, offset int) ([]model.NewsArticle, error)
	FindBySentiment(ctx context.Context, sentiment string, limit int) ([]model.NewsArticle, error)
}

// ListNewsHandler returns a handler that lists ingested articles newest-first.
// Supports pagination (limit, offset) and an optional sentiment filter; the
// filtered variant is capped at limit with no offset.
func ListNewsHandler(repo articleLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := queryInt(r, "limit", 10)
		offset := queryInt(r, "offset", 0)
		sentiment := r.URL.Query().Get("sentiment")

		var (
			articles []model.NewsArticle
			err      error
		)

		if model.ValidSentiment(sentiment) {
			articles, err = repo.FindBySentiment(r.Context(), sentiment, limit)
		} else {
			articles, err = repo.FindLatest(r.Context(), limit, offset)
		}

		if err != nil {
			logger.WithError(err).Error("failed to fetch news articles")
			writeError(w, http.StatusInternalServerError, "Failed to fetch news articles")
			return
		}

		if articles == nil {
			articles = []model.NewsArticle{}
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{"articles": articles})
	}
}

// DefaultListNewsHandler wires the handler to the production repository.
func DefaultListNewsHandler() http.HandlerFunc {
	return ListNewsHandler(repository.NewArticleRepository())
}

// queryInt parses an integer query parameter, falling back to def on a missing
// or malformed value.
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

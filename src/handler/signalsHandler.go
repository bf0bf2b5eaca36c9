package handler

import (
	"context"
	"net/http"

	logger "github.com/sirupsen/logrus"

	"forexsignals/src/model"
	"forexsignals/src/repository"
)

type signalLister interface {
	FindLatest(ctx context.Context, limit, offset int) ([]model.ForexSignal, error)
	FindByPair(ctx context.Context, currencyPair string) ([]model.ForexSignal, error)
}

// ListSignalsHandler returns a handler that lists signals newest-first.
// Supports pagination (limit, offset) and an exact currency-pair filter; the
// pair-filtered history is unbounded.
func ListSignalsHandler(repo signalLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := queryInt(r, "limit", 10)
		offset := queryInt(r, "offset", 0)
		pair := r.URL.Query().Get("pair")

		var (
			signals []model.ForexSignal
			err     error
		)

		if pair != "" {
			signals, err = repo.FindByPair(r.Context(), pair)
		} else {
			signals, err = repo.FindLatest(r.Context(), limit, offset)
		}

		if err != nil {
			logger.WithError(err).Error("failed to fetch forex signals")
			writeError(w, http.StatusInternalServerError, "Failed to fetch forex signals")
			return
		}

		if signals == nil {
			signals = []model.ForexSignal{}
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{"signals": signals})
	}
}

// DefaultListSignalsHandler wires the handler to the production repository.
func DefaultListSignalsHandler() http.HandlerFunc {
	return ListSignalsHandler(repository.NewSignalRepository())
}

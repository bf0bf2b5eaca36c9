package handler

import (
	"net/http"
	"sort"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"forexsignals/src/model"
	"forexsignals/src/repository"
)

// The dashboard summarizes the most recent slice of data rather than the full
// history.
const dashboardWindow = 100

type countEntry struct {
	name  string
	count int
}

// DashboardEvent is one of the five most recent signals rendered as an event.
type DashboardEvent struct {
	Name      string    `json:"name"` // "EUR/USD BUY"
	Type      string    `json:"type"` // the signal's sentiment label
	Timestamp time.Time `json:"timestamp"`
}

// DashboardHandler returns read-side summary stats over the latest signals and
// articles: per-action signal counts, the five most-mentioned currency codes,
// the five most frequent keyword tags and the five newest signals as events.
func DashboardHandler(signals signalLister, articles articleLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recentSignals, err := signals.FindLatest(r.Context(), dashboardWindow, 0)
		if err != nil {
			logger.WithError(err).Error("failed to fetch signals for dashboard")
			writeError(w, http.StatusInternalServerError, "Failed to fetch dashboard data")
			return
		}

		recentArticles, err := articles.FindLatest(r.Context(), dashboardWindow, 0)
		if err != nil {
			logger.WithError(err).Error("failed to fetch articles for dashboard")
			writeError(w, http.StatusInternalServerError, "Failed to fetch dashboard data")
			return
		}

		signalCounts := map[string]int{
			model.SignalBuy:  0,
			model.SignalSell: 0,
			model.SignalHold: 0,
		}
		currencyMentions := map[string]int{}

		for _, s := range recentSignals {
			signalCounts[s.Signal]++

			base, quote, ok := strings.Cut(s.CurrencyPair, "/")
			if !ok {
				continue
			}
			currencyMentions[base]++
			currencyMentions[quote]++
		}

		keywordCounts := map[string]int{}
		for _, a := range recentArticles {
			for _, kw := range a.Keywords {
				keywordCounts[kw]++
			}
		}

		events := make([]DashboardEvent, 0, 5)
		for _, s := range recentSignals {
			if len(events) == 5 {
				break
			}
			events = append(events, DashboardEvent{
				Name:      s.CurrencyPair + " " + strings.ToUpper(s.Signal),
				Type:      s.Sentiment,
				Timestamp: s.CreatedAt,
			})
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"signalCounts":  signalCounts,
			"topCurrencies": topEntries(currencyMentions, 5, "currency"),
			"topKeywords":   topEntries(keywordCounts, 5, "keyword"),
			"recentEvents":  events,
		})
	}
}

// DefaultDashboardHandler wires the handler to the production repositories.
func DefaultDashboardHandler() http.HandlerFunc {
	return DashboardHandler(repository.NewSignalRepository(), repository.NewArticleRepository())
}

// topEntries ranks counts descending, ties broken by name for deterministic
// output, and renders the top n as {<nameKey>, count} objects.
func topEntries(counts map[string]int, n int, nameKey string) []map[string]interface{} {
	entries := make([]countEntry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, countEntry{name: name, count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})

	if len(entries) > n {
		entries = entries[:n]
	}

	out := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		out = append(out, map[string]interface{}{
			nameKey: e.name,
			"count": e.count,
		})
	}
	return out
}

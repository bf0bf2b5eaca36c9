package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forexsignals/src/model"
)

func TestDashboardHandler(t *testing.T) {
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	signals := &mockSignalLister{signals: []model.ForexSignal{
		{ID: 6, CurrencyPair: "EUR/USD", Signal: model.SignalBuy, Sentiment: model.SentimentPositive, CreatedAt: base.Add(5 * time.Hour)},
		{ID: 5, CurrencyPair: "USD/JPY", Signal: model.SignalSell, Sentiment: model.SentimentNegative, CreatedAt: base.Add(4 * time.Hour)},
		{ID: 4, CurrencyPair: "GBP/USD", Signal: model.SignalHold, Sentiment: model.SentimentNeutral, CreatedAt: base.Add(3 * time.Hour)},
		{ID: 3, CurrencyPair: "USD/CHF", Signal: model.SignalHold, Sentiment: model.SentimentNeutral, CreatedAt: base.Add(2 * time.Hour)},
		{ID: 2, CurrencyPair: "AUD/USD", Signal: model.SignalHold, Sentiment: model.SentimentNeutral, CreatedAt: base.Add(time.Hour)},
		{ID: 1, CurrencyPair: "EUR/USD", Signal: model.SignalBuy, Sentiment: model.SentimentPositive, CreatedAt: base},
	}}
	articles := &mockArticleLister{articles: []model.NewsArticle{
		{ID: 1, Keywords: []string{"inflation", "interest_rate"}},
		{ID: 2, Keywords: []string{"inflation"}},
		{ID: 3, Keywords: []string{"trade"}},
		{ID: 4, Keywords: nil},
	}}

	handler := DashboardHandler(signals, articles)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		SignalCounts  map[string]int `json:"signalCounts"`
		TopCurrencies []struct {
			Currency string `json:"currency"`
			Count    int    `json:"count"`
		} `json:"topCurrencies"`
		TopKeywords []struct {
			Keyword string `json:"keyword"`
			Count   int    `json:"count"`
		} `json:"topKeywords"`
		RecentEvents []DashboardEvent `json:"recentEvents"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	assert.Equal(t, map[string]int{"buy": 2, "sell": 1, "hold": 3}, body.SignalCounts)

	// USD appears in every pair leg; the rest follow by count then name.
	require.NotEmpty(t, body.TopCurrencies)
	assert.Equal(t, "USD", body.TopCurrencies[0].Currency)
	assert.Equal(t, 6, body.TopCurrencies[0].Count)
	assert.Equal(t, "EUR", body.TopCurrencies[1].Currency)
	assert.Equal(t, 2, body.TopCurrencies[1].Count)
	assert.LessOrEqual(t, len(body.TopCurrencies), 5)

	require.Len(t, body.TopKeywords, 3)
	assert.Equal(t, "inflation", body.TopKeywords[0].Keyword)
	assert.Equal(t, 2, body.TopKeywords[0].Count)

	require.Len(t, body.RecentEvents, 5)
	assert.Equal(t, "EUR/USD BUY", body.RecentEvents[0].Name)
	assert.Equal(t, model.SentimentPositive, body.RecentEvents[0].Type)
	assert.Equal(t, "USD/JPY SELL", body.RecentEvents[1].Name)

	assert.Equal(t, 1, signals.latestCalls)
	assert.Equal(t, 100, signals.limit)
	assert.Equal(t, 1, articles.latestCalls)
	assert.Equal(t, 100, articles.limit)
}

func TestDashboardHandler_SignalRepoError(t *testing.T) {
	handler := DashboardHandler(&mockSignalLister{err: assert.AnError}, &mockArticleLister{})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
}

func TestDashboardHandler_EmptyData(t *testing.T) {
	handler := DashboardHandler(&mockSignalLister{}, &mockArticleLister{})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, map[string]interface{}{"buy": float64(0), "sell": float64(0), "hold": float64(0)}, body["signalCounts"])
	assert.Empty(t, body["recentEvents"])
}

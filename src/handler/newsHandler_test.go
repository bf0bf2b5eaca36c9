package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forexsignals/src/model"
)

type mockArticleLister struct {
	articles []model.NewsArticle
	err      error

	latestCalls    int
	limit          int
	offset         int
	sentimentCalls int
	sentiment      string
}

func (m *mockArticleLister) FindLatest(ctx context.Context, limit, offset int) ([]model.NewsArticle, error) {
	m.latestCalls++
	m.limit = limit
	m.offset = offset
	return m.articles, m.err
}

func (m *mockArticleLister) FindBySentiment(ctx context.Context, sentiment string, limit int) ([]model.NewsArticle, error) {
	m.sentimentCalls++
	m.sentiment = sentiment
	m.limit = limit
	return m.articles, m.err
}

func TestListNewsHandler_Defaults(t *testing.T) {
	repo := &mockArticleLister{articles: []model.NewsArticle{{ID: 1, Title: "t", CreatedAt: time.Now()}}}
	handler := ListNewsHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, repo.latestCalls)
	assert.Equal(t, 10, repo.limit)
	assert.Equal(t, 0, repo.offset)

	var body struct {
		Articles []model.NewsArticle `json:"articles"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Articles, 1)
}

func TestListNewsHandler_Pagination(t *testing.T) {
	repo := &mockArticleLister{}
	handler := ListNewsHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/news?limit=25&offset=50", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 25, repo.limit)
	assert.Equal(t, 50, repo.offset)
}

func TestListNewsHandler_SentimentFilter(t *testing.T) {
	repo := &mockArticleLister{}
	handler := ListNewsHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/news?sentiment=negative&limit=5", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, repo.sentimentCalls)
	assert.Equal(t, 0, repo.latestCalls)
	assert.Equal(t, model.SentimentNegative, repo.sentiment)
	assert.Equal(t, 5, repo.limit)
}

func TestListNewsHandler_UnknownSentimentFallsBack(t *testing.T) {
	repo := &mockArticleLister{}
	handler := ListNewsHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/news?sentiment=happy", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 0, repo.sentimentCalls)
	assert.Equal(t, 1, repo.latestCalls)
}

func TestListNewsHandler_MalformedNumbersUseDefaults(t *testing.T) {
	repo := &mockArticleLister{}
	handler := ListNewsHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/news?limit=abc&offset=xyz", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 10, repo.limit)
	assert.Equal(t, 0, repo.offset)
}

func TestListNewsHandler_RepoError(t *testing.T) {
	repo := &mockArticleLister{err: assert.AnError}
	handler := ListNewsHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
}

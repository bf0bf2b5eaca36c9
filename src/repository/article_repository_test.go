package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"forexsignals/src/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func articleRows(articles ...model.NewsArticle) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "title", "description", "url", "source", "published_at",
		"sentiment", "sentiment_score", "keywords", "created_at",
	})
	for _, a := range articles {
		rows.AddRow(
			a.ID, a.Title, a.Description, a.URL, a.Source, a.PublishedAt,
			a.Sentiment, a.SentimentScore, `["inflation"]`, a.CreatedAt,
		)
	}
	return rows
}

func TestArticleRepositoryFindLatest(t *testing.T) {
	mockDB, mock := newMockDB(t)
	repo := (&ArticleRepository{}).WithDB(mockDB)

	createdAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	newest := model.NewsArticle{
		ID: 2, Title: "Euro rallies", URL: "https://example.com/2",
		Source: "Wire", PublishedAt: createdAt, Sentiment: model.SentimentPositive,
		SentimentScore: 4, CreatedAt: createdAt.Add(time.Hour),
	}
	older := model.NewsArticle{
		ID: 1, Title: "Dollar dips", URL: "https://example.com/1",
		Source: "Wire", PublishedAt: createdAt, Sentiment: model.SentimentNegative,
		SentimentScore: -3, CreatedAt: createdAt,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "news_articles" ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`)).
		WithArgs(2, 1).
		WillReturnRows(articleRows(newest, older))

	articles, err := repo.FindLatest(context.Background(), 2, 1)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "Euro rallies", articles[0].Title)
	assert.Equal(t, []string{"inflation"}, articles[0].Keywords)
}

func TestArticleRepositoryFindBySentiment(t *testing.T) {
	mockDB, mock := newMockDB(t)
	repo := (&ArticleRepository{}).WithDB(mockDB)

	createdAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	article := model.NewsArticle{
		ID: 7, Title: "Growth beats forecasts", URL: "https://example.com/7",
		Source: "Wire", PublishedAt: createdAt, Sentiment: model.SentimentPositive,
		SentimentScore: 6, CreatedAt: createdAt,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "news_articles" WHERE sentiment = $1 ORDER BY created_at DESC, id DESC LIMIT $2`)).
		WithArgs(model.SentimentPositive, 5).
		WillReturnRows(articleRows(article))

	articles, err := repo.FindBySentiment(context.Background(), model.SentimentPositive, 5)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, model.SentimentPositive, articles[0].Sentiment)
}

func TestArticleRepositoryFindByIDNotFound(t *testing.T) {
	mockDB, mock := newMockDB(t)
	repo := (&ArticleRepository{}).WithDB(mockDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "news_articles" WHERE "news_articles"."id" = $1 ORDER BY "news_articles"."id" LIMIT $2`)).
		WithArgs(uint(99), 1).
		WillReturnRows(articleRows())

	article, err := repo.FindByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, article)
}

func TestArticleRepositoryDefaultLimit(t *testing.T) {
	mockDB, mock := newMockDB(t)
	repo := (&ArticleRepository{}).WithDB(mockDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "news_articles" ORDER BY created_at DESC, id DESC LIMIT $1`)).
		WithArgs(10).
		WillReturnRows(articleRows())

	articles, err := repo.FindLatest(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, articles)
}

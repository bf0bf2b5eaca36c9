package repository

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"forexsignals/src/database"
	"forexsignals/src/model"
)

// ArticleRepository handles create/read operations for ingested news articles.
// Articles are immutable after creation; there is no update or delete path.
type ArticleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new repository instance using the main
// read/write database.
func NewArticleRepository() *ArticleRepository {
	logger.WithField("component", "ArticleRepository").
		Info("Creating new ArticleRepository with MainDB")

	return &ArticleRepository{
		db: database.MainDB,
	}
}

// WithDB allows overriding the underlying *gorm.DB instance.
// Useful for tests or when using a specific session/transaction.
func (r *ArticleRepository) WithDB(db *gorm.DB) *ArticleRepository {
	logger.WithField("component", "ArticleRepository").
		Debug("Creating ArticleRepository with custom DB instance")

	return &ArticleRepository{db: db}
}

// Create inserts a new article. The given article is updated with the
// generated ID and created_at timestamp.
func (r *ArticleRepository) Create(
	ctx context.Context,
	article *model.NewsArticle,
) error {

	logger.WithFields(map[string]interface{}{
		"repo":      "ArticleRepository",
		"op":        "Create",
		"source":    article.Source,
		"sentiment": article.Sentiment,
		"score":     article.SentimentScore,
	}).Debug("Creating news article")

	err := r.db.WithContext(ctx).Create(article).Error
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"repo": "ArticleRepository",
			"op":   "Create",
			"url":  article.URL,
		}).WithError(err).Error("Failed to create news article")

		return err
	}

	logger.WithFields(map[string]interface{}{
		"repo":       "ArticleRepository",
		"op":         "Create",
		"article_id": article.ID,
	}).Info("News article created successfully")

	return nil
}

// FindByID fetches a single article by its primary ID.
// Returns (nil, nil) if the article is not found.
func (r *ArticleRepository) FindByID(
	ctx context.Context,
	id uint,
) (*model.NewsArticle, error) {

	logger.WithFields(map[string]interface{}{
		"repo": "ArticleRepository",
		"op":   "FindByID",
		"id":   id,
	}).Debug("Fetching news article by ID")

	var article model.NewsArticle

	err := r.db.WithContext(ctx).First(&article, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WithFields(map[string]interface{}{
				"repo": "ArticleRepository",
				"op":   "FindByID",
				"id":   id,
			}).Info("News article not found")

			return nil, nil
		}

		logger.WithFields(map[string]interface{}{
			"repo": "ArticleRepository",
			"op":   "FindByID",
			"id":   id,
		}).WithError(err).Error("Failed to fetch news article by ID")

		return nil, err
	}

	return &article, nil
}

// FindLatest returns articles ordered from newest to oldest, with pagination.
func (r *ArticleRepository) FindLatest(
	ctx context.Context,
	limit int,
	offset int,
) ([]model.NewsArticle, error) {

	if limit <= 0 {
		limit = 10 // default safety limit
	}
	if offset < 0 {
		offset = 0
	}

	logger.WithFields(map[string]interface{}{
		"repo":   "ArticleRepository",
		"op":     "FindLatest",
		"limit":  limit,
		"offset": offset,
	}).Debug("Fetching latest news articles")

	var articles []model.NewsArticle

	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&articles).Error

	if err != nil {
		logger.WithFields(map[string]interface{}{
			"repo":  "ArticleRepository",
			"op":    "FindLatest",
			"limit": limit,
		}).WithError(err).Error("Failed to fetch latest news articles")

		return nil, err
	}

	logger.WithFields(map[string]interface{}{
		"repo":        "ArticleRepository",
		"op":          "FindLatest",
		"limit":       limit,
		"offset":      offset,
		"rows_return": len(articles),
	}).Info("Latest news articles fetched")

	return articles, nil
}

// FindBySentiment returns the newest articles carrying the given sentiment
// label, capped at limit.
func (r *ArticleRepository) FindBySentiment(
	ctx context.Context,
	sentiment string,
	limit int,
) ([]model.NewsArticle, error) {

	if limit <= 0 {
		limit = 10
	}

	logger.WithFields(map[string]interface{}{
		"repo":      "ArticleRepository",
		"op":        "FindBySentiment",
		"sentiment": sentiment,
		"limit":     limit,
	}).Debug("Fetching news articles by sentiment")

	var articles []model.NewsArticle

	err := r.db.WithContext(ctx).
		Where("sentiment = ?", sentiment).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&articles).Error

	if err != nil {
		logger.WithFields(map[string]interface{}{
			"repo":      "ArticleRepository",
			"op":        "FindBySentiment",
			"sentiment": sentiment,
			"limit":     limit,
		}).WithError(err).Error("Failed to fetch news articles by sentiment")

		return nil, err
	}

	logger.WithFields(map[string]interface{}{
		"repo":        "ArticleRepository",
		"op":          "FindBySentiment",
		"sentiment":   sentiment,
		"limit":       limit,
		"rows_return": len(articles),
	}).Info("News articles by sentiment fetched")

	return articles, nil
}

package repository

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"forexsignals/src/database"
	"forexsignals/src/model"
)

// SignalRepository handles create/read operations for forex signals. Signals
// are immutable after creation; each batch appends fresh rows and the newest
// row per pair is the current signal.
type SignalRepository struct {
	db *gorm.DB
}

// NewSignalRepository creates a new repository instance using the main
// read/write database.
func NewSignalRepository() *SignalRepository {
	logger.WithField("component", "SignalRepository").
		Info("Creating new SignalRepository with MainDB")

	return &SignalRepository{
		db: database.MainDB,
	}
}

// WithDB allows overriding the underlying *gorm.DB instance.
// Useful for tests or when using a specific session/transaction.
func (r *SignalRepository) WithDB(db *gorm.DB) *SignalRepository {
	logger.WithField("component", "SignalRepository").
		Debug("Creating SignalRepository with custom DB instance")

	return &SignalRepository{db: db}
}

// Create inserts a new signal. The given signal is updated with the generated
// ID and created_at timestamp.
func (r *SignalRepository) Create(
	ctx context.Context,
	signal *model.ForexSignal,
) error {

	logger.WithFields(map[string]interface{}{
		"repo":     "SignalRepository",
		"op":       "Create",
		"pair":     signal.CurrencyPair,
		"signal":   signal.Signal,
		"score":    signal.SentimentScore,
		"articles": signal.NewsArticleCount,
	}).Debug("Creating forex signal")

	err := r.db.WithContext(ctx).Create(signal).Error
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"repo": "SignalRepository",
			"op":   "Create",
			"pair": signal.CurrencyPair,
		}).WithError(err).Error("Failed to create forex signal")

		return err
	}

	logger.WithFields(map[string]interface{}{
		"repo":      "SignalRepository",
		"op":        "Create",
		"signal_id": signal.ID,
		"pair":      signal.CurrencyPair,
	}).Info("Forex signal created successfully")

	return nil
}

// FindByID fetches a single signal by its primary ID.
// Returns (nil, nil) if the signal is not found.
func (r *SignalRepository) FindByID(
	ctx context.Context,
	id uint,
) (*model.ForexSignal, error) {

	logger.WithFields(map[string]interface{}{
		"repo": "SignalRepository",
		"op":   "FindByID",
		"id":   id,
	}).Debug("Fetching forex signal by ID")

	var signal model.ForexSignal

	err := r.db.WithContext(ctx).First(&signal, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WithFields(map[string]interface{}{
				"repo": "SignalRepository",
				"op":   "FindByID",
				"id":   id,
			}).Info("Forex signal not found")

			return nil, nil
		}

		logger.WithFields(map[string]interface{}{
			"repo": "SignalRepository",
			"op":   "FindByID",
			"id":   id,
		}).WithError(err).Error("Failed to fetch forex signal by ID")

		return nil, err
	}

	return &signal, nil
}

// FindLatest returns signals ordered from newest to oldest, with pagination.
func (r *SignalRepository) FindLatest(
	ctx context.Context,
	limit int,
	offset int,
) ([]model.ForexSignal, error) {

	if limit <= 0 {
		limit = 10 // default safety limit
	}
	if offset < 0 {
		offset = 0
	}

	logger.WithFields(map[string]interface{}{
		"repo":   "SignalRepository",
		"op":     "FindLatest",
		"limit":  limit,
		"offset": offset,
	}).Debug("Fetching latest forex signals")

	var signals []model.ForexSignal

	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&signals).Error

	if err != nil {
		logger.WithFields(map[string]interface{}{
			"repo":  "SignalRepository",
			"op":    "FindLatest",
			"limit": limit,
		}).WithError(err).Error("Failed to fetch latest forex signals")

		return nil, err
	}

	logger.WithFields(map[string]interface{}{
		"repo":        "SignalRepository",
		"op":          "FindLatest",
		"limit":       limit,
		"offset":      offset,
		"rows_return": len(signals),
	}).Info("Latest forex signals fetched")

	return signals, nil
}

// FindByPair returns every signal for the exact currency pair, newest first.
// History for a pair is unbounded, so no limit is applied.
func (r *SignalRepository) FindByPair(
	ctx context.Context,
	currencyPair string,
) ([]model.ForexSignal, error) {

	logger.WithFields(map[string]interface{}{
		"repo": "SignalRepository",
		"op":   "FindByPair",
		"pair": currencyPair,
	}).Debug("Fetching forex signals by currency pair")

	var signals []model.ForexSignal

	err := r.db.WithContext(ctx).
		Where("currency_pair = ?", currencyPair).
		Order("created_at DESC, id DESC").
		Find(&signals).Error

	if err != nil {
		logger.WithFields(map[string]interface{}{
			"repo": "SignalRepository",
			"op":   "FindByPair",
			"pair": currencyPair,
		}).WithError(err).Error("Failed to fetch forex signals by currency pair")

		return nil, err
	}

	logger.WithFields(map[string]interface{}{
		"repo":        "SignalRepository",
		"op":          "FindByPair",
		"pair":        currencyPair,
		"rows_return": len(signals),
	}).Info("Forex signals by currency pair fetched")

	return signals, nil
}

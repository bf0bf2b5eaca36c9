package analysis

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	// Comma-separated "BASE/QUOTE" pairs scanned for mentions, in the order
	// signals are emitted.
	CurrencyPairs string `envconfig:"CURRENCY_PAIRS" default:"EUR/USD,USD/JPY,GBP/USD,USD/CHF,AUD/USD,USD/CAD,NZD/USD"`

	// WordBoundary switches the mention detector from plain substring matching
	// (the default, permissive on purpose) to word-boundary matching.
	WordBoundary bool `envconfig:"ANALYSIS_WORD_BOUNDARY" default:"false"`
}

func GetConfig() Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return config
}

// Thresholds holds the cutoffs that turn scores into labels and actions.
type Thresholds struct {
	Positive int // article label: score > Positive => positive
	Negative int // article label: score < Negative => negative

	Buy  decimal.Decimal // batch average > Buy => buy signal
	Sell decimal.Decimal // batch average < Sell => sell signal
}

// DefaultThresholds returns the production cutoffs. Tests may build their own.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Positive: 1,
		Negative: -1,
		Buy:      decimal.NewFromInt(2),
		Sell:     decimal.NewFromInt(-2),
	}
}

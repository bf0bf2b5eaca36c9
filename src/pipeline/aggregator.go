package pipeline

import (
	"context"

	"github.com/shopspring/decimal"
	logger "github.com/sirupsen/logrus"

	"forexsignals/src/model"
)

// accumulator collects one pair's contributions within a single batch. It is
// built fresh per batch and discarded after signal persistence.
type accumulator struct {
	articleIDs []uint
	total      int
	count      int
}

// aggregate folds the batch contributions into at most one signal per tracked
// pair and persists them. Pairs nobody mentioned produce no row; prior signals
// for those pairs are left untouched. Emission follows the configured pair
// universe order so the output is deterministic.
func (p *Pipeline) aggregate(ctx context.Context, log *logger.Entry, contribs []contribution) int {
	acc := make(map[string]*accumulator)

	for _, c := range contribs {
		for _, pair := range c.pairs {
			key := pair.String()
			a, ok := acc[key]
			if !ok {
				a = &accumulator{}
				acc[key] = a
			}
			a.articleIDs = append(a.articleIDs, c.articleID)
			a.total += c.score
			a.count++
		}
	}

	created := 0

	for _, pair := range p.detector.Pairs() {
		a, ok := acc[pair.String()]
		if !ok || a.count == 0 {
			continue
		}

		avg := decimal.NewFromInt(int64(a.total)).
			Div(decimal.NewFromInt(int64(a.count)))

		action, sentiment := p.decide(avg)

		signal := model.ForexSignal{
			CurrencyPair:     pair.String(),
			Signal:           action,
			Sentiment:        sentiment,
			SentimentScore:   int(avg.Round(0).IntPart()),
			NewsArticleIDs:   a.articleIDs,
			NewsArticleCount: a.count,
			CreatedAt:        p.now(),
		}

		if err := p.signals.Create(ctx, &signal); err != nil {
			log.WithField("pair", pair.String()).
				WithError(err).
				Error("Skipping signal after failed persistence")
			continue
		}

		created++

		if p.broadcaster != nil {
			p.broadcaster.BroadcastSignal(signal)
		}
	}

	return created
}

// decide maps a batch-average score onto an action and its sentiment label.
// The two are always set together, so a buy is always positive, a sell always
// negative and a hold always neutral.
func (p *Pipeline) decide(avg decimal.Decimal) (action, sentiment string) {
	switch {
	case avg.GreaterThan(p.thresholds.Buy):
		return model.SignalBuy, model.SentimentPositive
	case avg.LessThan(p.thresholds.Sell):
		return model.SignalSell, model.SentimentNegative
	default:
		return model.SignalHold, model.SentimentNeutral
	}
}

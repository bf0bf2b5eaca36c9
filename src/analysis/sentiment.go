package analysis

import (
	"strings"
	"unicode"

	"forexsignals/src/model"
)

// Article scores are clamped to this closed interval.
const (
	ScoreMin = -10
	ScoreMax = 10
)

// TitleWeight is the multiplier applied to the title's raw polarity. Headlines
// carry more signal than body snippets.
const TitleWeight = 2

// TokenScore sums the lexicon polarity of every token in text. It is the raw,
// unclamped per-text score.
func TokenScore(text string) int {
	score := 0
	for _, tok := range tokenize(text) {
		score += lexicon[tok]
	}
	return score
}

// ArticleScore combines title and description polarity into a single article
// score in [ScoreMin, ScoreMax]. The title is weighted TitleWeight times the
// description; a missing description contributes zero.
func ArticleScore(title, description string) int {
	combined := TokenScore(title) * TitleWeight
	if description != "" {
		combined += TokenScore(description)
	}
	return clamp(combined, ScoreMin, ScoreMax)
}

// Label maps a clamped article score to a sentiment label using th.
// Total over all int inputs: anything between the cutoffs is neutral.
func Label(score int, th Thresholds) string {
	switch {
	case score > th.Positive:
		return model.SentimentPositive
	case score < th.Negative:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

// CurrencyPair is one tracked "BASE/QUOTE" pair.
type CurrencyPair struct {
	Base  string
	Quote string
}

func (p CurrencyPair) String() string {
	return p.Base + "/" + p.Quote
}

// ParsePairs parses a comma-separated pair universe like
// "EUR/USD,USD/JPY". Each entry must be exactly two 3-letter codes.
func ParsePairs(s string) ([]CurrencyPair, error) {
	var pairs []CurrencyPair
	for _, raw := range strings.Split(s, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		base, quote, ok := strings.Cut(raw, "/")
		if !ok || len(base) != 3 || len(quote) != 3 {
			return nil, fmt.Errorf("invalid currency pair %q", raw)
		}
		pairs = append(pairs, CurrencyPair{
			Base:  strings.ToUpper(base),
			Quote: strings.ToUpper(quote),
		})
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("empty currency pair universe")
	}
	return pairs, nil
}

// Detector finds which tracked pairs a text plausibly concerns. The default
// mode matches currency codes as plain substrings of the lower-cased text,
// which is permissive: "cad" inside an unrelated word still counts as a
// USD/CAD mention. Word-boundary mode tightens that when opted into.
type Detector struct {
	pairs        []CurrencyPair
	wordBoundary bool
	patterns     map[string]*regexp.Regexp // by lower-cased code, boundary mode only
}

func NewDetector(pairs []CurrencyPair, wordBoundary bool) *Detector {
	d := &Detector{
		pairs:        pairs,
		wordBoundary: wordBoundary,
	}
	if wordBoundary {
		d.patterns = make(map[string]*regexp.Regexp)
		for _, p := range pairs {
			for _, code := range []string{p.Base, p.Quote} {
				lc := strings.ToLower(code)
				if _, ok := d.patterns[lc]; !ok {
					d.patterns[lc] = regexp.MustCompile(`\b` + lc + `\b`)
				}
			}
		}
	}
	return d
}

// Pairs returns the tracked universe in declaration order.
func (d *Detector) Pairs() []CurrencyPair {
	return d.pairs
}

// Mentions returns every tracked pair whose base or quote code appears in the
// article text, in universe order.
func (d *Detector) Mentions(title, description string) []CurrencyPair {
	text := CombinedText(title, description)

	var mentioned []CurrencyPair
	for _, p := range d.pairs {
		if d.matches(text, p.Base) || d.matches(text, p.Quote) {
			mentioned = append(mentioned, p)
		}
	}
	return mentioned
}

func (d *Detector) matches(text, code string) bool {
	lc := strings.ToLower(code)
	if d.wordBoundary {
		return d.patterns[lc].MatchString(text)
	}
	return strings.Contains(text, lc)
}

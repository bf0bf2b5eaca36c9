package analysis

import "strings"

// Category maps one taxonomy tag to the phrases that trigger it.
type Category struct {
	Tag     string
	Phrases []string
}

// Taxonomy is the fixed keyword taxonomy. Extraction emits tags in this
// declaration order.
var Taxonomy = []Category{
	{Tag: "interest_rate", Phrases: []string{"interest rate", "rate hike", "rate cut", "federal reserve", "central bank"}},
	{Tag: "inflation", Phrases: []string{"inflation", "cpi", "consumer price", "deflation"}},
	{Tag: "economic_growth", Phrases: []string{"gdp", "economic growth", "economy", "recession"}},
	{Tag: "trade", Phrases: []string{"trade", "export", "import", "tariff", "trade balance"}},
	{Tag: "employment", Phrases: []string{"employment", "unemployment", "jobs", "nonfarm", "labor"}},
}

// ExtractKeywords returns the taxonomy tags whose trigger phrases occur in the
// lower-cased concatenation of title and description. Each tag appears at most
// once regardless of how many of its phrases match.
func ExtractKeywords(title, description string) []string {
	text := CombinedText(title, description)

	var tags []string
	for _, cat := range Taxonomy {
		for _, phrase := range cat.Phrases {
			if strings.Contains(text, phrase) {
				tags = append(tags, cat.Tag)
				break
			}
		}
	}
	return tags
}

// CombinedText is the shared normalization for keyword extraction and currency
// mention detection: "title description", lower-cased.
func CombinedText(title, description string) string {
	return strings.ToLower(title + " " + description)
}

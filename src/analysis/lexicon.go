package analysis

// lexicon maps lower-cased tokens to polarity values in [-5, 5], AFINN style.
// It is fixed at compile time; scoring is deterministic against it. The list
// leans toward vocabulary common in financial headlines.
var lexicon = map[string]int{
	// negative
	"abandon":     -2,
	"aggressive":  -2,
	"alarm":       -2,
	"alarming":    -3,
	"anxious":     -2,
	"bad":         -3,
	"bankrupt":    -3,
	"bankruptcy":  -3,
	"bearish":     -2,
	"blame":       -2,
	"block":       -1,
	"blocked":     -1,
	"breach":      -2,
	"bubble":      -2,
	"burden":      -2,
	"collapse":    -4,
	"collapsed":   -4,
	"concern":     -2,
	"concerned":   -2,
	"concerns":    -2,
	"conflict":    -2,
	"contraction": -2,
	"crash":       -4,
	"crashed":     -4,
	"crisis":      -3,
	"cut":         -1,
	"cuts":        -1,
	"damage":      -3,
	"danger":      -2,
	"dangerous":   -2,
	"debt":        -2,
	"decline":     -2,
	"declined":    -2,
	"declines":    -2,
	"deficit":     -2,
	"depressed":   -2,
	"depression":  -3,
	"disappoint":  -2,
	"disappoints": -2,
	"disaster":    -4,
	"dispute":     -2,
	"doubt":       -1,
	"downgrade":   -3,
	"downgraded":  -3,
	"downturn":    -3,
	"drop":        -2,
	"dropped":     -2,
	"drops":       -2,
	"fail":        -2,
	"failed":      -2,
	"failure":     -2,
	"falling":     -2,
	"falls":       -2,
	"fear":        -2,
	"fears":       -2,
	"fight":       -1,
	"fighting":    -1,
	"fraud":       -4,
	"freeze":      -2,
	"halt":        -2,
	"hurt":        -2,
	"inflation":   -1,
	"instability": -2,
	"layoff":      -3,
	"layoffs":     -3,
	"lose":        -3,
	"loses":       -3,
	"loss":        -3,
	"losses":      -3,
	"miss":        -2,
	"missed":      -2,
	"negative":    -2,
	"panic":       -3,
	"plunge":      -3,
	"plunged":     -3,
	"plunges":     -3,
	"poor":        -2,
	"pressure":    -1,
	"recession":   -3,
	"risk":        -2,
	"risks":       -2,
	"risky":       -2,
	"sanction":    -2,
	"sanctions":   -2,
	"sell":        -1,
	"selloff":     -3,
	"shock":       -2,
	"shortage":    -2,
	"slow":        -2,
	"slowdown":    -2,
	"slump":       -3,
	"slumps":      -3,
	"stagnant":    -2,
	"strike":      -2,
	"struggle":    -2,
	"struggling":  -2,
	"tension":     -2,
	"tensions":    -2,
	"threat":      -2,
	"threatens":   -2,
	"tumble":      -3,
	"tumbles":     -3,
	"turmoil":     -3,
	"uncertain":   -2,
	"uncertainty": -2,
	"unemployment": -2,
	"unstable":    -2,
	"volatile":    -2,
	"volatility":  -2,
	"war":         -3,
	"warn":        -2,
	"warning":     -2,
	"warns":       -2,
	"weak":        -2,
	"weaken":      -2,
	"weakness":    -2,
	"worries":     -2,
	"worry":       -2,
	"worse":       -3,
	"worsen":      -3,

	// positive
	"advance":     1,
	"advances":    1,
	"agreement":   1,
	"beat":        2,
	"beats":       2,
	"benefit":     2,
	"best":        3,
	"boom":        3,
	"boost":       2,
	"boosted":     2,
	"boosts":      2,
	"breakthrough": 3,
	"bullish":     2,
	"calm":        2,
	"climb":       1,
	"climbs":      1,
	"confidence":  2,
	"confident":   2,
	"deal":        1,
	"eases":       1,
	"exceed":      2,
	"exceeds":     2,
	"expand":      1,
	"expansion":   1,
	"gain":        2,
	"gained":      2,
	"gains":       2,
	"good":        3,
	"great":       3,
	"grew":        2,
	"grow":        1,
	"growing":     1,
	"growth":      2,
	"healthy":     2,
	"high":        1,
	"hope":        2,
	"hopes":       2,
	"improve":     2,
	"improved":    2,
	"improves":    2,
	"jump":        2,
	"jumps":       2,
	"opportunity": 2,
	"optimism":    2,
	"optimistic":  2,
	"outperform":  2,
	"positive":    2,
	"profit":      2,
	"profits":     2,
	"progress":    2,
	"rally":       2,
	"rallies":     2,
	"rebound":     2,
	"rebounds":    2,
	"record":      1,
	"recover":     2,
	"recovers":    2,
	"recovery":    2,
	"resilient":   2,
	"rise":        1,
	"rises":       1,
	"robust":      2,
	"soar":        3,
	"soars":       3,
	"solid":       2,
	"stability":   2,
	"stable":      2,
	"steady":      1,
	"strength":    2,
	"strengthen":  2,
	"strengthens": 2,
	"strong":      2,
	"stronger":    2,
	"support":     2,
	"surge":       2,
	"surged":      2,
	"surges":      2,
	"surpass":     2,
	"surplus":     2,
	"upbeat":      2,
	"upgrade":     3,
	"upgraded":    3,
	"win":         4,
	"wins":        4,
}

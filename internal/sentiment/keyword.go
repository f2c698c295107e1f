package sentiment

import (
	"strings"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-signals/internal/types"
)

// IndicatorNewsScanner tags keyword sentiment signals.
const IndicatorNewsScanner = "News Scanner"

var (
	DefaultPositiveKeywords = []string{"surge", "higher", "growth", "positive", "strong", "bull", "earnings", "hit"}
	DefaultNegativeKeywords = []string{"pressure", "lower", "weak", "cut", "negative", "bear", "drag", "drop"}
)

// Keyword scores headlines by counting keyword hits. Each (headline, keyword)
// pair counts once, matched case-insensitively as a substring, so "hit"
// also matches "white".
type Keyword struct {
	positive []string
	negative []string
}

// KeywordOption configures a Keyword scorer.
type KeywordOption func(*Keyword)

// WithPositiveKeywords replaces the bullish keyword set.
func WithPositiveKeywords(words ...string) KeywordOption {
	return func(k *Keyword) {
		k.positive = normalise(words)
	}
}

// WithNegativeKeywords replaces the bearish keyword set.
func WithNegativeKeywords(words ...string) KeywordOption {
	return func(k *Keyword) {
		k.negative = normalise(words)
	}
}

func NewKeyword(opts ...KeywordOption) *Keyword {
	k := &Keyword{
		positive: normalise(DefaultPositiveKeywords),
		negative: normalise(DefaultNegativeKeywords),
	}

	for _, opt := range opts {
		opt(k)
	}

	return k
}

// ScoreKeywords scores headlines with the default keyword sets.
func ScoreKeywords(headlines []string) []types.Signal {
	return NewKeyword().Score(headlines)
}

func (k *Keyword) Name() string {
	return "keyword"
}

// Tally returns positive hits minus negative hits.
func (k *Keyword) Tally(headlines []string) int {
	score := 0

	for _, headline := range headlines {
		lower := strings.ToLower(headline)

		for _, word := range k.positive {
			if strings.Contains(lower, word) {
				score++
			}
		}

		for _, word := range k.negative {
			if strings.Contains(lower, word) {
				score--
			}
		}
	}

	return score
}

func (k *Keyword) Score(headlines []string) []types.Signal {
	score := k.Tally(headlines)

	var label string

	var direction types.Direction

	switch {
	case score > 0:
		label, direction = "Bullish News Sentiment", types.DirectionLong
	case score < 0:
		label, direction = "Bearish News Sentiment", types.DirectionShort
		score = -score
	default:
		return nil
	}

	return []types.Signal{{
		Type:       label,
		Direction:  direction,
		Confidence: clampConfidence(70 + 5*score),
		Reasoning:  "",
		Entry:      optional.None[float64](),
		StopLoss:   optional.None[float64](),
		TakeProfit: optional.None[float64](),
		EntryPrice: optional.Some(0.0),
		Indicator:  IndicatorNewsScanner,
		Strategy:   "",
	}}
}

func normalise(words []string) []string {
	out := make([]string, 0, len(words))

	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			out = append(out, w)
		}
	}

	return out
}

package sentiment

import (
	"fmt"
	"math"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-signals/internal/types"
)

const (
	DefaultMaxHeadlines     = 10
	DefaultLexicalThreshold = 0.10

	// IndicatorVADER tags lexical sentiment signals.
	IndicatorVADER = "VADER"
)

// Lexical averages the compound polarity of the first MaxHeadlines headlines.
// An average above the threshold is bullish, below its negation bearish.
type Lexical struct {
	analyzer     Analyzer
	maxHeadlines int
	threshold    float64
}

// LexicalOption configures a Lexical scorer.
type LexicalOption func(*Lexical)

// WithAnalyzer replaces the VADER analyzer.
func WithAnalyzer(analyzer Analyzer) LexicalOption {
	return func(l *Lexical) {
		if analyzer != nil {
			l.analyzer = analyzer
		}
	}
}

// WithMaxHeadlines caps the number of headlines scored.
func WithMaxHeadlines(n int) LexicalOption {
	return func(l *Lexical) {
		if n > 0 {
			l.maxHeadlines = n
		}
	}
}

// WithThreshold sets the absolute average that must be exceeded to emit.
func WithThreshold(threshold float64) LexicalOption {
	return func(l *Lexical) {
		if threshold >= 0 {
			l.threshold = threshold
		}
	}
}

func NewLexical(opts ...LexicalOption) *Lexical {
	l := &Lexical{
		analyzer:     nil,
		maxHeadlines: DefaultMaxHeadlines,
		threshold:    DefaultLexicalThreshold,
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.analyzer == nil {
		l.analyzer = DefaultAnalyzer()
	}

	return l
}

// ScoreLexical scores headlines with the default VADER settings.
func ScoreLexical(headlines []string) []types.Signal {
	return NewLexical().Score(headlines)
}

func (l *Lexical) Name() string {
	return "lexical"
}

func (l *Lexical) Score(headlines []string) []types.Signal {
	if len(headlines) > l.maxHeadlines {
		headlines = headlines[:l.maxHeadlines]
	}

	if len(headlines) == 0 {
		return nil
	}

	total := 0.0
	for _, headline := range headlines {
		total += l.analyzer.Compound(headline)
	}

	avg := total / float64(len(headlines))

	var label string

	var direction types.Direction

	switch {
	case avg > l.threshold:
		label, direction = "Institutional Bullish Sentiment", types.DirectionLong
	case avg < -l.threshold:
		label, direction = "Institutional Bearish Sentiment", types.DirectionShort
	default:
		return nil
	}

	return []types.Signal{{
		Type:       label,
		Direction:  direction,
		Confidence: lexicalConfidence(avg),
		Reasoning:  fmt.Sprintf("Analyzed %d news sources. VADER score: %.2f", len(headlines), avg),
		Entry:      optional.None[float64](),
		StopLoss:   optional.None[float64](),
		TakeProfit: optional.None[float64](),
		EntryPrice: optional.Some(0.0),
		Indicator:  IndicatorVADER,
		Strategy:   "",
	}}
}

func lexicalConfidence(avg float64) int {
	return clampConfidence(int(math.Round(70 + math.Abs(avg)*30)))
}

package sentiment

import (
	"sync"

	"github.com/jonreiter/govader"
)

// VaderAnalyzer scores text with the VADER lexicon.
type VaderAnalyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderAnalyzer loads the VADER lexicon.
func NewVaderAnalyzer() *VaderAnalyzer {
	return &VaderAnalyzer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

var defaultVader = sync.OnceValue(NewVaderAnalyzer)

// DefaultAnalyzer returns a process-wide VADER analyzer, loading the lexicon
// on first use.
func DefaultAnalyzer() *VaderAnalyzer {
	return defaultVader()
}

// Compound returns the VADER compound score of text.
func (v *VaderAnalyzer) Compound(text string) float64 {
	return v.analyzer.PolarityScores(text).Compound
}

// Package sentiment turns lists of news headlines into sentiment signals.
//
// Two independent scorers are provided: Lexical averages a per-headline
// compound polarity from an Analyzer (VADER by default) and Keyword counts
// positive and negative keyword hits. Both are pure and safe for concurrent
// use; an empty headline list yields no signal.
package sentiment

import (
	"github.com/rxtech-lab/argo-signals/internal/types"
)

// Scorer evaluates a list of headlines.
type Scorer interface {
	// Name is the scorer's identifier.
	Name() string
	// Score returns at most one signal for the headlines.
	Score(headlines []string) []types.Signal
}

// Analyzer assigns a compound polarity in [-1, 1] to a piece of text.
type Analyzer interface {
	Compound(text string) float64
}

// clampConfidence keeps confidence on the 0-100 scale.
func clampConfidence(c int) int {
	return max(0, min(100, c))
}

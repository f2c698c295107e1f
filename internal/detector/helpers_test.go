package detector

import (
	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/mocks"
)

// walk builds a close path from start by applying each step in turn.
func walk(start float64, steps ...[]float64) []float64 {
	closes := []float64{start}

	for _, segment := range steps {
		for _, d := range segment {
			closes = append(closes, closes[len(closes)-1]+d)
		}
	}

	return closes
}

func repeat(step float64, n int) []float64 {
	return mocks.Constant(step, n)
}

func zigzag(up, down float64, n int) []float64 {
	steps := make([]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		steps = append(steps, up, down)
	}

	return steps
}

// raiseReboundLows lifts the low of every bar that follows a local close
// bottom, so that the bottom bar alone holds the price trough.
func raiseReboundLows(bars []types.MarketData) []types.MarketData {
	for i := 1; i+1 < len(bars); i++ {
		if bars[i].Close < bars[i-1].Close && bars[i].Close < bars[i+1].Close {
			bars[i+1].Low += 0.25
		}
	}

	return bars
}

func clone(bars []types.MarketData) []types.MarketData {
	out := make([]types.MarketData, len(bars))
	copy(out, bars)

	return out
}

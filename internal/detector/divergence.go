package detector

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-signals/internal/indicator"
	"github.com/rxtech-lab/argo-signals/internal/types"
)

const (
	divergenceMinBars = 50
	divergenceRSI     = 14
	defaultLookback   = 5
	regularConfidence = 85
	hiddenConfidence  = 75
	regularDivergence = "Regular Bullish Divergence"
	hiddenDivergence  = "Hidden Bullish Divergence"

	// IndicatorRSI tags divergence signals.
	IndicatorRSI = "RSI"
)

// Divergence compares the two most recent bars that are troughs of both the
// low price and RSI(14).
//
// A lower price trough with a higher RSI trough is a regular bullish
// divergence; a higher price trough with a lower RSI trough is a hidden one.
type Divergence struct {
	lookback int
	cache    *indicator.Cache
}

// NewDivergence creates a divergence detector whose troughs must be the
// minimum of lookback bars on each side. Non-positive values use 5.
func NewDivergence(lookback int, opts ...Option) *Divergence {
	o := buildOptions(opts)

	if lookback <= 0 {
		lookback = defaultLookback
	}

	return &Divergence{
		lookback: lookback,
		cache:    o.cache,
	}
}

// DetectDivergence runs the RSI divergence detector without a shared cache.
func DetectDivergence(bars []types.MarketData, lookback int) []types.Signal {
	return NewDivergence(lookback).Detect(bars)
}

func (d *Divergence) Name() string {
	return "divergence"
}

func (d *Divergence) MinBars() int {
	return divergenceMinBars
}

// Lookback returns the trough half-window.
func (d *Divergence) Lookback() int {
	return d.lookback
}

func (d *Divergence) Detect(bars []types.MarketData) []types.Signal {
	if len(bars) < divergenceMinBars {
		return nil
	}

	rsi := d.cache.RSI(bars, divergenceRSI)
	from := rsi.FirstValid()

	rsiValues, ok := rsi.Values(from)
	if !ok {
		return nil
	}

	lows := types.Lows(bars)[from:]

	kind, found := classifyDivergence(lows, rsiValues, d.lookback)
	if !found {
		return nil
	}

	confidence := regularConfidence
	if kind == hiddenDivergence {
		confidence = hiddenConfidence
	}

	return []types.Signal{{
		Type:       kind,
		Direction:  types.DirectionLong,
		Confidence: confidence,
		Reasoning:  "",
		Entry:      optional.None[float64](),
		StopLoss:   optional.None[float64](),
		TakeProfit: optional.None[float64](),
		EntryPrice: optional.Some(bars[len(bars)-1].Close),
		Indicator:  IndicatorRSI,
		Strategy:   "",
	}}
}

// classifyDivergence pairs price and RSI troughs over aligned series and
// labels the relationship of the last two pairs.
func classifyDivergence(lows, rsi []float64, lookback int) (string, bool) {
	if len(lows) < 2*lookback+1 || len(lows) != len(rsi) {
		return "", false
	}

	priceTroughs := indicator.Troughs(lows, lookback)
	rsiTroughs := indicator.Troughs(rsi, lookback)

	prev, curr := -1, -1

	for i := range lows {
		if priceTroughs[i] && rsiTroughs[i] {
			prev, curr = curr, i
		}
	}

	if prev < 0 {
		return "", false
	}

	switch {
	case lows[curr] < lows[prev] && rsi[curr] > rsi[prev]:
		return regularDivergence, true
	case lows[curr] > lows[prev] && rsi[curr] < rsi[prev]:
		return hiddenDivergence, true
	}

	return "", false
}

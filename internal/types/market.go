package types

import (
	"fmt"
	"time"
)

// MarketData is a single OHLCV bar. Detectors treat a []MarketData as a
// time-ordered series and work positionally.
type MarketData struct {
	Id     string    `json:"id" csv:"id"`
	Symbol string    `json:"symbol" csv:"symbol"`
	Time   time.Time `json:"time" csv:"time"`
	Open   float64   `json:"open" csv:"open"`
	High   float64   `json:"high" csv:"high"`
	Low    float64   `json:"low" csv:"low"`
	Close  float64   `json:"close" csv:"close"`
	Volume float64   `json:"volume" csv:"volume"`
}

// Validate reports a bar whose prices break the OHLC envelope
// (low <= open, close <= high). Detectors never call it; bar providers do.
func (m MarketData) Validate() error {
	if m.High < m.Low {
		return fmt.Errorf("bar %s at %s: high %.4f below low %.4f", m.Symbol, m.Time.Format(time.RFC3339), m.High, m.Low)
	}

	if m.Open > m.High || m.Close > m.High {
		return fmt.Errorf("bar %s at %s: open/close above high %.4f", m.Symbol, m.Time.Format(time.RFC3339), m.High)
	}

	if m.Open < m.Low || m.Close < m.Low {
		return fmt.Errorf("bar %s at %s: open/close below low %.4f", m.Symbol, m.Time.Format(time.RFC3339), m.Low)
	}

	return nil
}

// Closes returns the close column of a bar series.
func Closes(bars []MarketData) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}

	return out
}

// Highs returns the high column of a bar series.
func Highs(bars []MarketData) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.High
	}

	return out
}

// Lows returns the low column of a bar series.
func Lows(bars []MarketData) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Low
	}

	return out
}

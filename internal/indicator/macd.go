package indicator

import (
	talib "github.com/markcheno/go-talib"
)

const (
	MACDFast   = 12
	MACDSlow   = 26
	MACDSignal = 9
)

// MACDResult holds the three aligned MACD series.
type MACDResult struct {
	Line      Series
	Signal    Series
	Histogram Series
}

// MACD computes line = EMA(fast) - EMA(slow), signal = EMA(signal) of the
// line over its defined range, and histogram = line - signal.
func MACD(closes []float64, fast, slow, signal int) MACDResult {
	n := len(closes)
	result := MACDResult{
		Line:      Missing(n),
		Signal:    Missing(n),
		Histogram: Missing(n),
	}

	if fast <= 0 || slow <= 0 || signal <= 0 {
		return result
	}

	lineFrom := max(fast, slow) - 1
	if n <= lineFrom {
		return result
	}

	fastEMA := talib.Ema(closes, fast)
	slowEMA := talib.Ema(closes, slow)

	line := make([]float64, n)
	for i := lineFrom; i < n; i++ {
		line[i] = fastEMA[i] - slowEMA[i]
	}

	result.Line = NewSeries(line, lineFrom)

	if n-lineFrom < signal {
		return result
	}

	signalEMA := talib.Ema(line[lineFrom:], signal)
	signalFrom := lineFrom + signal - 1

	signals := make([]float64, n)
	histogram := make([]float64, n)

	for i := signalFrom; i < n; i++ {
		signals[i] = signalEMA[i-lineFrom]
		histogram[i] = line[i] - signals[i]
	}

	result.Signal = NewSeries(signals, signalFrom)
	result.Histogram = NewSeries(histogram, signalFrom)

	return result
}

package indicator

import (
	talib "github.com/markcheno/go-talib"
)

// EMA is the exponential moving average with smoothing 2/(period+1), seeded
// with the simple average of the first period values. The first period-1
// positions are missing.
func EMA(values []float64, period int) Series {
	if period <= 0 || len(values) < period {
		return Missing(len(values))
	}

	return NewSeries(talib.Ema(values, period), period-1)
}

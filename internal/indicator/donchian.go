package indicator

import (
	talib "github.com/markcheno/go-talib"
	"github.com/rxtech-lab/argo-signals/internal/types"
)

// RollingMax returns the maximum of each trailing window of the given size,
// including the current position.
func RollingMax(values []float64, window int) Series {
	if window <= 0 || len(values) < window {
		return Missing(len(values))
	}

	if window == 1 {
		return NewSeries(values, 0)
	}

	return NewSeries(talib.Max(values, window), window-1)
}

// RollingMin returns the minimum of each trailing window of the given size,
// including the current position.
func RollingMin(values []float64, window int) Series {
	if window <= 0 || len(values) < window {
		return Missing(len(values))
	}

	if window == 1 {
		return NewSeries(values, 0)
	}

	return NewSeries(talib.Min(values, window), window-1)
}

// DonchianHigh is the highest high of the window bars strictly before each
// position. The current bar never contributes to its own channel.
func DonchianHigh(bars []types.MarketData, window int) Series {
	return RollingMax(types.Highs(bars), window).Shift(1)
}

// DonchianLow is the lowest low of the window bars strictly before each position.
func DonchianLow(bars []types.MarketData, window int) Series {
	return RollingMin(types.Lows(bars), window).Shift(1)
}

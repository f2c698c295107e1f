package indicator

import (
	talib "github.com/markcheno/go-talib"
	"github.com/rxtech-lab/argo-signals/internal/types"
)

const (
	TenkanPeriod = 9
	KijunPeriod  = 26
)

// Midpoint is (highest high + lowest low) / 2 over a trailing window that
// includes the current bar.
func Midpoint(bars []types.MarketData, window int) Series {
	if window <= 0 || len(bars) < window {
		return Missing(len(bars))
	}

	return NewSeries(talib.MidPrice(types.Highs(bars), types.Lows(bars), window), window-1)
}

// Tenkan is the 9-bar conversion line.
func Tenkan(bars []types.MarketData) Series {
	return Midpoint(bars, TenkanPeriod)
}

// Kijun is the 26-bar base line.
func Kijun(bars []types.MarketData) Series {
	return Midpoint(bars, KijunPeriod)
}

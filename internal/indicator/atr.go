package indicator

import (
	talib "github.com/markcheno/go-talib"
	"github.com/rxtech-lab/argo-signals/internal/types"
)

const ATRPeriod = 20

// ATR is the Wilder-smoothed average true range. True range at bar i is
// max(high-low, |high-prevClose|, |low-prevClose|), so the first bar has no
// true range and the first period positions are missing.
func ATR(bars []types.MarketData, period int) Series {
	if period <= 0 || len(bars) <= period {
		return Missing(len(bars))
	}

	return NewSeries(talib.Atr(types.Highs(bars), types.Lows(bars), types.Closes(bars), period), period)
}

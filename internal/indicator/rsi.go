package indicator

import (
	talib "github.com/markcheno/go-talib"
	"github.com/rxtech-lab/argo-signals/internal/types"
)

const RSIPeriod = 14

// RSI is Wilder's relative strength index of closing prices, bounded to
// [0, 100]. The first period positions are missing.
func RSI(bars []types.MarketData, period int) Series {
	if period < 2 || len(bars) <= period {
		return Missing(len(bars))
	}

	return NewSeries(talib.Rsi(types.Closes(bars), period), period)
}

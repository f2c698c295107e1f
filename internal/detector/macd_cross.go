package detector

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-signals/internal/indicator"
	"github.com/rxtech-lab/argo-signals/internal/types"
)

const (
	macdCrossMinBars    = 200
	macdCrossEMAPeriod  = 200
	macdCrossConfidence = 82

	// IndicatorMACDEMA tags MACD cross signals.
	IndicatorMACDEMA = "MACD/EMA200"
)

// MACDCross detects a bullish MACD histogram cross below the zero line while
// price holds above its 200-bar EMA. There is no bearish counterpart.
type MACDCross struct {
	cache *indicator.Cache
}

func NewMACDCross(opts ...Option) *MACDCross {
	o := buildOptions(opts)

	return &MACDCross{cache: o.cache}
}

// DetectMACDCross runs the MACD/EMA200 cross detector without a shared cache.
func DetectMACDCross(bars []types.MarketData) []types.Signal {
	return NewMACDCross().Detect(bars)
}

func (d *MACDCross) Name() string {
	return "macd_cross"
}

func (d *MACDCross) MinBars() int {
	return macdCrossMinBars
}

func (d *MACDCross) Detect(bars []types.MarketData) []types.Signal {
	if len(bars) < macdCrossMinBars {
		return nil
	}

	macd := d.cache.MACD(bars, indicator.MACDFast, indicator.MACDSlow, indicator.MACDSignal)

	prevHist, err1 := macd.Histogram.Prev().Take()
	lastHist, err2 := macd.Histogram.Last().Take()
	line, err3 := macd.Line.Last().Take()
	signal, err4 := macd.Signal.Last().Take()
	ema, err5 := d.cache.EMA(bars, macdCrossEMAPeriod).Last().Take()

	if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
		return nil
	}

	price := bars[len(bars)-1].Close

	if prevHist < 0 && lastHist > 0 && line < 0 && signal < 0 && price > ema {
		return []types.Signal{{
			Type:       "MACD Bullish Cross",
			Direction:  types.DirectionLong,
			Confidence: macdCrossConfidence,
			Reasoning:  "",
			Entry:      optional.None[float64](),
			StopLoss:   optional.None[float64](),
			TakeProfit: optional.None[float64](),
			EntryPrice: optional.Some(price),
			Indicator:  IndicatorMACDEMA,
			Strategy:   "",
		}}
	}

	return nil
}

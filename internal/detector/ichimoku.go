package detector

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-signals/internal/indicator"
	"github.com/rxtech-lab/argo-signals/internal/types"
)

const (
	ichimokuMinBars    = 52
	ichimokuConfidence = 78

	// IndicatorTenkanKijun tags Ichimoku cross signals.
	IndicatorTenkanKijun = "Tenkan/Kijun"
)

// Ichimoku detects a Tenkan/Kijun cross between the last two bars.
type Ichimoku struct {
	cache *indicator.Cache
}

func NewIchimoku(opts ...Option) *Ichimoku {
	o := buildOptions(opts)

	return &Ichimoku{cache: o.cache}
}

// DetectIchimoku runs the Tenkan/Kijun cross detector without a shared cache.
func DetectIchimoku(bars []types.MarketData) []types.Signal {
	return NewIchimoku().Detect(bars)
}

func (d *Ichimoku) Name() string {
	return "ichimoku"
}

func (d *Ichimoku) MinBars() int {
	return ichimokuMinBars
}

func (d *Ichimoku) Detect(bars []types.MarketData) []types.Signal {
	if len(bars) < ichimokuMinBars {
		return nil
	}

	tenkan := d.cache.Tenkan(bars)
	kijun := d.cache.Kijun(bars)

	prevTenkan, err1 := tenkan.Prev().Take()
	prevKijun, err2 := kijun.Prev().Take()
	lastTenkan, err3 := tenkan.Last().Take()
	lastKijun, err4 := kijun.Last().Take()

	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return nil
	}

	switch {
	case prevTenkan <= prevKijun && lastTenkan > lastKijun:
		return []types.Signal{crossSignal("Ichimoku Bullish Cross", types.DirectionLong)}
	case prevTenkan >= prevKijun && lastTenkan < lastKijun:
		return []types.Signal{crossSignal("Ichimoku Bearish Cross", types.DirectionShort)}
	}

	return nil
}

func crossSignal(label string, direction types.Direction) types.Signal {
	return types.Signal{
		Type:       label,
		Direction:  direction,
		Confidence: ichimokuConfidence,
		Reasoning:  "",
		Entry:      optional.None[float64](),
		StopLoss:   optional.None[float64](),
		TakeProfit: optional.None[float64](),
		EntryPrice: optional.None[float64](),
		Indicator:  IndicatorTenkanKijun,
		Strategy:   "",
	}
}

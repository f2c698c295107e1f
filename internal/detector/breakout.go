package detector

import (
	"fmt"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-signals/internal/indicator"
	"github.com/rxtech-lab/argo-signals/internal/types"
)

const (
	breakoutMinBars   = 60
	breakoutATRPeriod = 20

	// StrategyTrendFollowing tags breakout signals.
	StrategyTrendFollowing = "Trend Following"
)

// Channels are the Donchian channels of a Turtle system aligned with the bars.
type Channels struct {
	EntryHigh indicator.Series
	EntryLow  indicator.Series
	ExitHigh  indicator.Series
	ExitLow   indicator.Series
}

// Breakout detects Turtle channel breakouts on the last bar.
//
// System 1 trades the 20-bar channel (exit 10) with confidence 85. Every
// other system number uses the 55-bar channel (exit 20) with confidence 92.
type Breakout struct {
	system      int
	entryWindow int
	exitWindow  int
	confidence  int
	cache       *indicator.Cache
}

// NewBreakout creates a Turtle breakout detector.
func NewBreakout(system int, opts ...Option) *Breakout {
	o := buildOptions(opts)

	b := &Breakout{
		system:      system,
		entryWindow: 55,
		exitWindow:  20,
		confidence:  92,
		cache:       o.cache,
	}

	if system == 1 {
		b.entryWindow = 20
		b.exitWindow = 10
		b.confidence = 85
	}

	return b
}

// DetectBreakout runs a Turtle breakout detector without a shared cache.
func DetectBreakout(bars []types.MarketData, system int) []types.Signal {
	return NewBreakout(system).Detect(bars)
}

func (b *Breakout) Name() string {
	return fmt.Sprintf("turtle_system_%d", b.system)
}

func (b *Breakout) MinBars() int {
	return breakoutMinBars
}

// Windows returns the entry and exit channel lengths.
func (b *Breakout) Windows() (entry, exit int) {
	return b.entryWindow, b.exitWindow
}

// Channels computes the entry and exit Donchian channels. The exit channel is
// informational only; Detect never consults it.
func (b *Breakout) Channels(bars []types.MarketData) Channels {
	return Channels{
		EntryHigh: b.cache.DonchianHigh(bars, b.entryWindow),
		EntryLow:  b.cache.DonchianLow(bars, b.entryWindow),
		ExitHigh:  b.cache.DonchianHigh(bars, b.exitWindow),
		ExitLow:   b.cache.DonchianLow(bars, b.exitWindow),
	}
}

func (b *Breakout) Detect(bars []types.MarketData) []types.Signal {
	if len(bars) < breakoutMinBars {
		return nil
	}

	channels := b.Channels(bars)

	high, err := channels.EntryHigh.Last().Take()
	if err != nil {
		return nil
	}

	atr, err := b.cache.ATR(bars, breakoutATRPeriod).Last().Take()
	if err != nil {
		return nil
	}

	price := bars[len(bars)-1].Close

	if price > high {
		entry, sl, tp := breakoutLevels(price, atr, types.DirectionLong)

		return []types.Signal{b.signal(types.DirectionLong, entry, sl, tp,
			fmt.Sprintf("Price broke above %d-day resistance level of $%.2f", b.entryWindow, high))}
	}

	low, err := channels.EntryLow.Last().Take()
	if err != nil {
		return nil
	}

	if price < low {
		entry, sl, tp := breakoutLevels(price, atr, types.DirectionShort)

		return []types.Signal{b.signal(types.DirectionShort, entry, sl, tp,
			fmt.Sprintf("Price broke below %d-day support level of $%.2f", b.entryWindow, low))}
	}

	return nil
}

func (b *Breakout) signal(direction types.Direction, entry, sl, tp float64, reasoning string) types.Signal {
	label := "Long"
	if direction == types.DirectionShort {
		label = "Short"
	}

	return types.Signal{
		Type:       fmt.Sprintf("Turtle System %d %s breakout", b.system, label),
		Direction:  direction,
		Confidence: b.confidence,
		Reasoning:  reasoning,
		Entry:      optional.Some(entry),
		StopLoss:   optional.Some(sl),
		TakeProfit: optional.Some(tp),
		EntryPrice: optional.None[float64](),
		Indicator:  "",
		Strategy:   StrategyTrendFollowing,
	}
}

// breakoutLevels places the entry 0.1% through the close, the stop 2 ATR
// against the trade and the target 4 ATR with it.
func breakoutLevels(price, atr float64, direction types.Direction) (entry, sl, tp float64) {
	if direction == types.DirectionShort {
		return price * 0.999, price + 2*atr, price - 4*atr
	}

	return price * 1.001, price - 2*atr, price + 4*atr
}

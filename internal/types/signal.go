package types

import (
	"github.com/moznion/go-optional"
)

// Direction is the trade bias a signal expresses.
type Direction string

const (
	// DirectionLong is a bullish signal
	DirectionLong Direction = "long"
	// DirectionShort is a bearish signal
	DirectionShort Direction = "short"
)

// Signal is the record a detector or sentiment scorer emits. It is a plain
// value: it holds no reference to the series that produced it.
type Signal struct {
	// Type is the human label, e.g. "Turtle System 1 Long breakout"
	Type string `json:"type"`
	// Direction is the bias of the signal
	Direction Direction `json:"direction"`
	// Confidence is an informal 0-100 score, not a calibrated probability
	Confidence int `json:"confidence"`
	// Reasoning explains why the signal fired
	Reasoning string `json:"reasoning,omitempty"`
	// Entry is the suggested entry price, set for breakout signals only
	Entry optional.Option[float64] `json:"entry,omitempty"`
	// StopLoss is the suggested stop, set for breakout signals only
	StopLoss optional.Option[float64] `json:"sl,omitempty"`
	// TakeProfit is the suggested target, set for breakout signals only
	TakeProfit optional.Option[float64] `json:"tp,omitempty"`
	// EntryPrice is the reference price of oscillator, divergence and
	// sentiment signals. Sentiment signals carry 0.
	EntryPrice optional.Option[float64] `json:"entry_price,omitempty"`
	// Indicator tags the indicator behind the signal
	Indicator string `json:"indicator,omitempty"`
	// Strategy tags the strategy family behind the signal
	Strategy string `json:"strategy,omitempty"`
}

// IsBullish reports whether the signal carries a long bias.
func (s Signal) IsBullish() bool {
	return s.Direction == DirectionLong
}

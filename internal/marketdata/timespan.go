package marketdata

import (
	"sort"
	"time"

	"github.com/polygon-io/client-go/rest/models"
)

// Timespan is a bar interval written the way exchanges spell it ("1m", "4h", "1d").
type Timespan string

const (
	TimespanOneSecond      Timespan = "1s"
	TimespanOneMinute      Timespan = "1m"
	TimespanThreeMinutes   Timespan = "3m"
	TimespanFiveMinutes    Timespan = "5m"
	TimespanFifteenMinutes Timespan = "15m"
	TimespanThirtyMinutes  Timespan = "30m"
	TimespanOneHour        Timespan = "1h"
	TimespanTwoHours       Timespan = "2h"
	TimespanFourHours      Timespan = "4h"
	TimespanSixHours       Timespan = "6h"
	TimespanEightHours     Timespan = "8h"
	TimespanTwelveHours    Timespan = "12h"
	TimespanOneDay         Timespan = "1d"
	TimespanThreeDays      Timespan = "3d"
	TimespanOneWeek        Timespan = "1w"
	TimespanOneMonth       Timespan = "1M"
)

type timespanUnit struct {
	multiplier int
	unit       models.Timespan
	duration   time.Duration
}

var timespans = map[Timespan]timespanUnit{
	TimespanOneSecond:      {1, models.Second, time.Second},
	TimespanOneMinute:      {1, models.Minute, time.Minute},
	TimespanThreeMinutes:   {3, models.Minute, time.Minute},
	TimespanFiveMinutes:    {5, models.Minute, time.Minute},
	TimespanFifteenMinutes: {15, models.Minute, time.Minute},
	TimespanThirtyMinutes:  {30, models.Minute, time.Minute},
	TimespanOneHour:        {1, models.Hour, time.Hour},
	TimespanTwoHours:       {2, models.Hour, time.Hour},
	TimespanFourHours:      {4, models.Hour, time.Hour},
	TimespanSixHours:       {6, models.Hour, time.Hour},
	TimespanEightHours:     {8, models.Hour, time.Hour},
	TimespanTwelveHours:    {12, models.Hour, time.Hour},
	TimespanOneDay:         {1, models.Day, 24 * time.Hour},
	TimespanThreeDays:      {3, models.Day, 24 * time.Hour},
	TimespanOneWeek:        {1, models.Week, 7 * 24 * time.Hour},
	TimespanOneMonth:       {1, models.Month, 30 * 24 * time.Hour},
}

// Timespans lists every supported interval, shortest first.
func Timespans() []Timespan {
	out := make([]Timespan, 0, len(timespans))
	for t := range timespans {
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Duration() < out[j].Duration()
	})

	return out
}

// Valid reports whether t is a supported interval.
func (t Timespan) Valid() bool {
	_, ok := timespans[t]
	return ok
}

// Multiplier is the number of base units in one bar. Unknown values use 1.
func (t Timespan) Multiplier() int {
	if u, ok := timespans[t]; ok {
		return u.multiplier
	}

	return 1
}

// Timespan is the Polygon aggregate unit. Unknown values use days.
func (t Timespan) Timespan() models.Timespan {
	if u, ok := timespans[t]; ok {
		return u.unit
	}

	return models.Day
}

// Duration is the approximate wall-clock length of one bar. Months count as 30 days.
func (t Timespan) Duration() time.Duration {
	if u, ok := timespans[t]; ok {
		return time.Duration(u.multiplier) * u.duration
	}

	return 24 * time.Hour
}

// BinanceInterval is the kline interval name. Binance spells every
// supported timespan the same way.
func (t Timespan) BinanceInterval() string {
	return string(t)
}

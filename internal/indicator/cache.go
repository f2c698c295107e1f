package indicator

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/rxtech-lab/argo-signals/internal/types"
)

// Fingerprint identifies a bar series by content.
type Fingerprint uint64

// FingerprintOf hashes the symbol, timestamps and OHLCV values of bars.
func FingerprintOf(bars []types.MarketData) Fingerprint {
	digest := xxhash.New()
	buf := make([]byte, 8)

	for _, bar := range bars {
		_, _ = digest.WriteString(bar.Symbol)

		binary.LittleEndian.PutUint64(buf, uint64(bar.Time.UnixNano()))
		_, _ = digest.Write(buf)

		for _, v := range []float64{bar.Open, bar.High, bar.Low, bar.Close, bar.Volume} {
			binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
			_, _ = digest.Write(buf)
		}
	}

	return Fingerprint(digest.Sum64())
}

type cacheKey struct {
	fingerprint Fingerprint
	indicator   types.IndicatorType
	params      string
}

// Cache memoises indicator series per bar series so that detectors sharing
// an indicator compute it once. It is safe for concurrent use. A nil *Cache
// computes every request directly.
type Cache struct {
	entries map[cacheKey]any
	hits    atomic.Uint64
	misses  atomic.Uint64
	mu      sync.RWMutex
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[cacheKey]any),
		hits:    atomic.Uint64{},
		misses:  atomic.Uint64{},
		mu:      sync.RWMutex{},
	}
}

// Clear drops every cached series.
func (c *Cache) Clear() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[cacheKey]any)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Stats returns the number of cache hits and misses so far.
func (c *Cache) Stats() (hits, misses uint64) {
	if c == nil {
		return 0, 0
	}

	return c.hits.Load(), c.misses.Load()
}

func (c *Cache) load(bars []types.MarketData, indicator types.IndicatorType, params []int, compute func() any) any {
	if c == nil {
		return compute()
	}

	key := cacheKey{
		fingerprint: FingerprintOf(bars),
		indicator:   indicator,
		params:      fmt.Sprint(params),
	}

	c.mu.RLock()
	if value, ok := c.entries[key]; ok {
		c.mu.RUnlock()
		c.hits.Add(1)

		return value
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if value, ok := c.entries[key]; ok {
		c.hits.Add(1)
		return value
	}

	value := compute()
	c.entries[key] = value
	c.misses.Add(1)

	return value
}

// ATR returns the cached ATR series.
func (c *Cache) ATR(bars []types.MarketData, period int) Series {
	return c.load(bars, types.IndicatorTypeATR, []int{period}, func() any {
		return ATR(bars, period)
	}).(Series)
}

// RSI returns the cached RSI series.
func (c *Cache) RSI(bars []types.MarketData, period int) Series {
	return c.load(bars, types.IndicatorTypeRSI, []int{period}, func() any {
		return RSI(bars, period)
	}).(Series)
}

// EMA returns the cached EMA of closing prices.
func (c *Cache) EMA(bars []types.MarketData, period int) Series {
	return c.load(bars, types.IndicatorTypeEMA, []int{period}, func() any {
		return EMA(types.Closes(bars), period)
	}).(Series)
}

// MACD returns the cached MACD of closing prices.
func (c *Cache) MACD(bars []types.MarketData, fast, slow, signal int) MACDResult {
	return c.load(bars, types.IndicatorTypeMACD, []int{fast, slow, signal}, func() any {
		return MACD(types.Closes(bars), fast, slow, signal)
	}).(MACDResult)
}

// DonchianHigh returns the cached upper Donchian channel.
func (c *Cache) DonchianHigh(bars []types.MarketData, window int) Series {
	return c.load(bars, types.IndicatorTypeDonchianHigh, []int{window}, func() any {
		return DonchianHigh(bars, window)
	}).(Series)
}

// DonchianLow returns the cached lower Donchian channel.
func (c *Cache) DonchianLow(bars []types.MarketData, window int) Series {
	return c.load(bars, types.IndicatorTypeDonchianLow, []int{window}, func() any {
		return DonchianLow(bars, window)
	}).(Series)
}

// Tenkan returns the cached conversion line.
func (c *Cache) Tenkan(bars []types.MarketData) Series {
	return c.load(bars, types.IndicatorTypeTenkan, []int{TenkanPeriod}, func() any {
		return Tenkan(bars)
	}).(Series)
}

// Kijun returns the cached base line.
func (c *Cache) Kijun(bars []types.MarketData) Series {
	return c.load(bars, types.IndicatorTypeKijun, []int{KijunPeriod}, func() any {
		return Kijun(bars)
	}).(Series)
}

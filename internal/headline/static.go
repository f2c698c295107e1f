package headline

import (
	"context"
)

// DefaultFallback is served for tickers missing from a static table.
var DefaultFallback = []string{"Market remains cautious ahead of central bank meeting"}

// DefaultTable returns the canned headlines used when no live news source is
// configured.
func DefaultTable() map[string][]string {
	return map[string][]string{
		"BTCUSDT": {"Bitcoin surges as ETF inflows hit record highs", "Adoption of BTC increasing in emerging markets"},
		"EURUSD":  {"Euro under pressure as ECB hints at rate cuts", "Weak manufacturing data from Germany drags Euro"},
		"AMZN":    {"Amazon reports better than expected earnings", "AWS growth continues to outpace competitors"},
	}
}

// StaticProvider serves headlines from a fixed table.
type StaticProvider struct {
	table    map[string][]string
	fallback []string
}

// NewStaticProvider copies table and fallback into a provider.
func NewStaticProvider(table map[string][]string, fallback []string) *StaticProvider {
	copied := make(map[string][]string, len(table))
	for symbol, headlines := range table {
		copied[symbol] = append([]string(nil), headlines...)
	}

	return &StaticProvider{
		table:    copied,
		fallback: append([]string(nil), fallback...),
	}
}

func (p *StaticProvider) Headlines(_ context.Context, symbol string, limit int) ([]string, error) {
	headlines, ok := p.table[symbol]
	if !ok {
		headlines = p.fallback
	}

	out := append([]string(nil), capHeadlines(headlines, limit)...)

	return out, nil
}

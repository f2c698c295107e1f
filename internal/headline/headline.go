// Package headline retrieves news headlines for an instrument.
package headline

import (
	"context"
	"strings"
)

// Provider returns up to limit headlines for a ticker, newest first when the
// source orders them. A non-positive limit means no cap.
type Provider interface {
	Headlines(ctx context.Context, symbol string, limit int) ([]string, error)
}

// SearchQuery builds the news search phrase for a ticker. Tickers naming a
// USD pair are searched as crypto.
func SearchQuery(symbol string) string {
	if strings.Contains(symbol, "USD") {
		return strings.ReplaceAll(symbol, "-USD", "") + " crypto price news"
	}

	return symbol + " stock price market news"
}

func capHeadlines(headlines []string, limit int) []string {
	if limit > 0 && len(headlines) > limit {
		return headlines[:limit]
	}

	return headlines
}

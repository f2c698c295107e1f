// Package marketdata loads bar history for the detectors from a local
// DuckDB/parquet store, Polygon.io or Binance.
package marketdata

import (
	"context"
	"sort"
	"time"

	"github.com/rxtech-lab/argo-signals/internal/logger"
	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
)

// Provider returns the most recent bars of a symbol in ascending time order.
type Provider interface {
	Bars(ctx context.Context, symbol string, horizon Horizon) ([]types.MarketData, error)
}

// Horizon describes which bars to load: the last Count bars of the given
// interval ending at End. A zero End means now.
type Horizon struct {
	Interval Timespan
	Count    int
	End      time.Time
	// Strict fails with an insufficient data error when fewer than Count bars exist.
	Strict bool
}

// EndOrNow resolves the horizon end.
func (h Horizon) EndOrNow() time.Time {
	if h.End.IsZero() {
		return time.Now().UTC()
	}

	return h.End
}

// Start estimates the earliest time needed to cover Count bars, padded for
// weekends and market holidays.
func (h Horizon) Start() time.Time {
	span := time.Duration(h.Count) * h.Interval.Duration()
	return h.EndOrNow().Add(-span * 2)
}

// Validate checks the horizon parameters.
func (h Horizon) Validate() error {
	if !h.Interval.Valid() {
		return errors.Newf(errors.ErrCodeInvalidTimespan, "unsupported interval %q", h.Interval)
	}

	if h.Count <= 0 {
		return errors.Newf(errors.ErrCodeInvalidParameter, "bar count must be positive, got %d", h.Count)
	}

	return nil
}

type ProviderType string

const (
	ProviderDuckDB  ProviderType = "duckdb"
	ProviderPolygon ProviderType = "polygon"
	ProviderBinance ProviderType = "binance"
)

// ProviderInfo contains metadata about a bar provider.
type ProviderInfo struct {
	Name         string `json:"name"`
	DisplayName  string `json:"displayName"`
	Description  string `json:"description"`
	RequiresAuth bool   `json:"requiresAuth"`
}

var providerRegistry = map[ProviderType]ProviderInfo{
	ProviderDuckDB: {
		Name:         string(ProviderDuckDB),
		DisplayName:  "DuckDB",
		Description:  "Local parquet bar history queried through DuckDB",
		RequiresAuth: false,
	},
	ProviderPolygon: {
		Name:         string(ProviderPolygon),
		DisplayName:  "Polygon.io",
		Description:  "US stock market aggregates",
		RequiresAuth: true,
	},
	ProviderBinance: {
		Name:         string(ProviderBinance),
		DisplayName:  "Binance",
		Description:  "Cryptocurrency klines from the Binance spot API",
		RequiresAuth: false,
	},
}

// GetSupportedProviders returns the provider names in alphabetical order.
func GetSupportedProviders() []string {
	providers := make([]string, 0, len(providerRegistry))
	for providerType := range providerRegistry {
		providers = append(providers, string(providerType))
	}

	sort.Strings(providers)

	return providers
}

// GetProviderInfo returns metadata for a specific provider.
func GetProviderInfo(providerName string) (ProviderInfo, error) {
	info, exists := providerRegistry[ProviderType(providerName)]
	if !exists {
		return ProviderInfo{}, errors.Newf(errors.ErrCodeInvalidProvider, "unsupported provider: %s", providerName)
	}

	return info, nil
}

// Settings selects and configures a provider.
type Settings struct {
	Provider      ProviderType
	DataPath      string
	PolygonAPIKey string
	BinanceAPIKey string
	BinanceSecret string
	BinanceURL    string
}

// New creates the provider named by settings.
func New(settings Settings, log *logger.Logger) (Provider, error) {
	switch settings.Provider {
	case ProviderDuckDB:
		provider, err := NewDuckDBProvider(settings.DataPath, log)
		if err != nil {
			return nil, err
		}

		return provider, nil
	case ProviderPolygon:
		provider, err := NewPolygonProvider(settings.PolygonAPIKey, log)
		if err != nil {
			return nil, err
		}

		return provider, nil
	case ProviderBinance:
		var opts []BinanceOption
		if settings.BinanceURL != "" {
			opts = append(opts, WithBinanceBaseURL(settings.BinanceURL))
		}

		return NewBinanceProvider(settings.BinanceAPIKey, settings.BinanceSecret, log, opts...), nil
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidProvider, "unsupported provider: %s", settings.Provider)
	}
}

// finalize sorts bars by time, keeps the last count, validates every bar and
// applies the horizon's strictness.
func finalize(symbol string, bars []types.MarketData, horizon Horizon) ([]types.MarketData, error) {
	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].Time.Before(bars[j].Time)
	})

	if len(bars) > horizon.Count {
		bars = bars[len(bars)-horizon.Count:]
	}

	for _, bar := range bars {
		if err := bar.Validate(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidBar, "provider returned an invalid bar", err)
		}
	}

	if len(bars) == 0 {
		return nil, errors.Newf(errors.ErrCodeNoDataFound, "no bars found for %s", symbol)
	}

	if horizon.Strict && len(bars) < horizon.Count {
		return nil, errors.NewInsufficientDataErrorf(horizon.Count, len(bars), symbol,
			"only %d of %d bars available for %s", len(bars), horizon.Count, symbol)
	}

	return bars, nil
}

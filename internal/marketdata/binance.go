package marketdata

import (
	"context"
	"strconv"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/rxtech-lab/argo-signals/internal/logger"
	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
	"go.uber.org/zap"
)

// binancePageLimit is the largest kline page the spot API returns.
const binancePageLimit = 1000

// BinanceProvider loads spot klines from Binance. Public market data needs no credentials.
type BinanceProvider struct {
	client *binance.Client
	logger *logger.Logger
}

type BinanceOption func(*binance.Client)

// WithBinanceBaseURL points the client at another endpoint, such as the testnet.
func WithBinanceBaseURL(url string) BinanceOption {
	return func(c *binance.Client) {
		c.BaseURL = url
	}
}

func NewBinanceProvider(apiKey, secret string, log *logger.Logger, opts ...BinanceOption) *BinanceProvider {
	client := binance.NewClient(apiKey, secret)
	for _, opt := range opts {
		opt(client)
	}

	return &BinanceProvider{
		client: client,
		logger: log.Named("binance"),
	}
}

// Bars implements Provider. Pages walk backwards from the horizon end until
// enough klines are collected or the exchange runs out of history.
func (b *BinanceProvider) Bars(ctx context.Context, symbol string, horizon Horizon) ([]types.MarketData, error) {
	if err := horizon.Validate(); err != nil {
		return nil, err
	}

	endMillis := horizon.EndOrNow().UnixMilli()

	var bars []types.MarketData

	for len(bars) < horizon.Count {
		limit := min(horizon.Count-len(bars), binancePageLimit)

		klines, err := b.client.NewKlinesService().
			Symbol(symbol).
			Interval(horizon.Interval.BinanceInterval()).
			EndTime(endMillis).
			Limit(limit).
			Do(ctx)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeMarketDataFetchFailed, err, "failed to fetch klines for %s", symbol)
		}

		page, err := convertKlines(symbol, klines)
		if err != nil {
			return nil, err
		}

		bars = append(page, bars...)

		if len(klines) < limit {
			break
		}

		endMillis = klines[0].OpenTime - 1
	}

	b.logger.Debug("Fetched klines",
		zap.String("symbol", symbol),
		zap.String("interval", horizon.Interval.BinanceInterval()),
		zap.Int("count", len(bars)),
	)

	return finalize(symbol, bars, horizon)
}

// convertKlines turns Binance klines into bars timed at their open.
func convertKlines(symbol string, klines []*binance.Kline) ([]types.MarketData, error) {
	out := make([]types.MarketData, 0, len(klines))

	for _, k := range klines {
		fields := [5]string{k.Open, k.High, k.Low, k.Close, k.Volume}

		var values [5]float64

		for i, raw := range fields {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "invalid kline value %q for %s", raw, symbol)
			}

			values[i] = v
		}

		out = append(out, types.MarketData{
			Id:     "",
			Symbol: symbol,
			Time:   time.UnixMilli(k.OpenTime).UTC(),
			Open:   values[0],
			High:   values[1],
			Low:    values[2],
			Close:  values[3],
			Volume: values[4],
		})
	}

	return out, nil
}

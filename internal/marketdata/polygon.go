package marketdata

import (
	"context"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"
	"github.com/rxtech-lab/argo-signals/internal/logger"
	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
	"go.uber.org/zap"
)

const polygonPageLimit = 50000

// PolygonProvider loads stock aggregates from Polygon.io.
type PolygonProvider struct {
	client *polygon.Client
	logger *logger.Logger
}

func NewPolygonProvider(apiKey string, log *logger.Logger) (*PolygonProvider, error) {
	if apiKey == "" {
		return nil, errors.New(errors.ErrCodeMissingParameter, "polygon provider requires an api key")
	}

	return &PolygonProvider{
		client: polygon.New(apiKey),
		logger: log.Named("polygon"),
	}, nil
}

// Bars implements Provider.
func (p *PolygonProvider) Bars(ctx context.Context, symbol string, horizon Horizon) ([]types.MarketData, error) {
	if err := horizon.Validate(); err != nil {
		return nil, err
	}

	end := horizon.EndOrNow()

	//nolint:exhaustruct // third-party struct with many optional fields
	params := models.ListAggsParams{
		Ticker:     symbol,
		Multiplier: horizon.Interval.Multiplier(),
		Timespan:   horizon.Interval.Timespan(),
		From:       models.Millis(horizon.Start()),
		To:         models.Millis(end),
	}.WithLimit(polygonPageLimit)

	iter := p.client.ListAggs(ctx, params)

	var bars []types.MarketData

	for iter.Next() {
		agg := iter.Item()
		bars = append(bars, types.MarketData{
			Id:     "",
			Symbol: symbol,
			Time:   time.Time(agg.Timestamp).UTC(),
			Open:   agg.Open,
			High:   agg.High,
			Low:    agg.Low,
			Close:  agg.Close,
			Volume: agg.Volume,
		})
	}

	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeMarketDataFetchFailed, err, "failed to list polygon aggregates for %s", symbol)
	}

	p.logger.Debug("Fetched aggregates",
		zap.String("symbol", symbol),
		zap.String("interval", string(horizon.Interval)),
		zap.Int("count", len(bars)),
	)

	return finalize(symbol, bars, horizon)
}

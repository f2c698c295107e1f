package marketdata

import (
	"testing"
	"time"

	"github.com/rxtech-lab/argo-signals/internal/logger"
	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type ProviderTestSuite struct {
	suite.Suite
}

func TestProviderSuite(t *testing.T) {
	suite.Run(t, new(ProviderTestSuite))
}

func dailyBars(symbol string, n int) []types.MarketData {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]types.MarketData, n)

	for i := range bars {
		price := 100 + float64(i)
		bars[i] = types.MarketData{
			Id:     "",
			Symbol: symbol,
			Time:   start.AddDate(0, 0, i),
			Open:   price,
			High:   price + 1,
			Low:    price - 1,
			Close:  price,
			Volume: 1000,
		}
	}

	return bars
}

func (suite *ProviderTestSuite) TestSupportedProviders() {
	suite.Equal([]string{"binance", "duckdb", "polygon"}, GetSupportedProviders())

	info, err := GetProviderInfo("polygon")
	suite.Require().NoError(err)
	suite.True(info.RequiresAuth)
	suite.Equal("Polygon.io", info.DisplayName)

	info, err = GetProviderInfo("duckdb")
	suite.Require().NoError(err)
	suite.False(info.RequiresAuth)

	_, err = GetProviderInfo("yahoo")
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidProvider))
}

func (suite *ProviderTestSuite) TestHorizon() {
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	h := Horizon{Interval: TimespanOneDay, Count: 10, End: end, Strict: false}

	suite.NoError(h.Validate())
	suite.Equal(end, h.EndOrNow())
	suite.Equal(end.AddDate(0, 0, -20), h.Start())

	suite.WithinDuration(time.Now(), Horizon{Interval: TimespanOneDay, Count: 1}.EndOrNow(), time.Minute)

	err := Horizon{Interval: "2d", Count: 10}.Validate()
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidTimespan))

	err = Horizon{Interval: TimespanOneDay, Count: 0}.Validate()
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))
}

func (suite *ProviderTestSuite) TestFinalizeSortsAndTrims() {
	bars := dailyBars("AMZN", 5)
	shuffled := []types.MarketData{bars[3], bars[0], bars[4], bars[1], bars[2]}

	out, err := finalize("AMZN", shuffled, Horizon{Interval: TimespanOneDay, Count: 3})
	suite.Require().NoError(err)
	suite.Equal(bars[2:], out)
}

func (suite *ProviderTestSuite) TestFinalizeRejectsInvalidBar() {
	bars := dailyBars("AMZN", 3)
	bars[1].High = bars[1].Low - 1

	_, err := finalize("AMZN", bars, Horizon{Interval: TimespanOneDay, Count: 3})
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidBar))
}

func (suite *ProviderTestSuite) TestFinalizeEmpty() {
	_, err := finalize("AMZN", nil, Horizon{Interval: TimespanOneDay, Count: 3})
	suite.True(errors.HasCode(err, errors.ErrCodeNoDataFound))
}

func (suite *ProviderTestSuite) TestFinalizeStrict() {
	bars := dailyBars("AMZN", 3)

	out, err := finalize("AMZN", bars, Horizon{Interval: TimespanOneDay, Count: 5, Strict: false})
	suite.NoError(err)
	suite.Len(out, 3)

	_, err = finalize("AMZN", bars, Horizon{Interval: TimespanOneDay, Count: 5, Strict: true})
	suite.True(errors.IsInsufficientDataError(err))
}

func (suite *ProviderTestSuite) TestNewFactory() {
	log := logger.NewNopLogger()

	p, err := New(Settings{Provider: ProviderBinance}, log)
	suite.Require().NoError(err)
	suite.IsType(&BinanceProvider{}, p)

	_, err = New(Settings{Provider: ProviderPolygon}, log)
	suite.True(errors.HasCode(err, errors.ErrCodeMissingParameter))

	p, err = New(Settings{Provider: ProviderPolygon, PolygonAPIKey: "key"}, log)
	suite.Require().NoError(err)
	suite.IsType(&PolygonProvider{}, p)

	_, err = New(Settings{Provider: ProviderDuckDB}, log)
	suite.True(errors.HasCode(err, errors.ErrCodeMissingParameter))

	_, err = New(Settings{Provider: "csv"}, log)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidProvider))
}

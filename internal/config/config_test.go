package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rxtech-lab/argo-signals/internal/headline"
	"github.com/rxtech-lab/argo-signals/internal/logger"
	"github.com/rxtech-lab/argo-signals/internal/marketdata"
	"github.com/rxtech-lab/argo-signals/internal/sentiment"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestDefault() {
	cfg := Default()

	suite.NoError(cfg.Validate())
	suite.Equal("binance", cfg.MarketData.Provider)
	suite.Equal("1d", cfg.MarketData.Interval)
	suite.Equal(300, cfg.MarketData.Bars)
	suite.Equal([]int{1, 2}, cfg.Detectors.BreakoutSystems)
	suite.Equal(5, cfg.Detectors.DivergenceLookback)
	suite.Equal(10, cfg.Headlines.MaxHeadlines)
	suite.Equal(0.10, cfg.Sentiment.LexicalThreshold)
	suite.Equal([]string{"Market remains cautious ahead of central bank meeting"}, cfg.Headlines.Static.Fallback)
	suite.Len(cfg.Headlines.Static.Table, 3)
	suite.Contains(cfg.Headlines.Static.Table, "BTCUSDT")
}

func (suite *ConfigTestSuite) TestParseOverridesDefaults() {
	cfg, err := Parse([]byte(`
version: 1.0.0
log_level: debug
market_data:
  provider: duckdb
  data_path: data/bars.parquet
  interval: 4h
  bars: 500
  strict: true
headlines:
  provider: rss
  max_headlines: 5
  static:
    table:
      TSLA: ["Tesla deliveries drop"]
detectors:
  breakout_systems: [2]
  macd_cross: false
  divergence_lookback: 3
sentiment:
  keyword: false
  lexical_threshold: 0.2
`))
	suite.Require().NoError(err)

	suite.Equal("debug", cfg.LogLevel)
	suite.Equal("duckdb", cfg.MarketData.Provider)
	suite.Equal("data/bars.parquet", cfg.MarketData.DataPath)
	suite.Equal(marketdata.Horizon{Interval: marketdata.TimespanFourHours, Count: 500, Strict: true}, cfg.Horizon())

	suite.Equal("rss", cfg.Headlines.Provider)
	suite.Equal(headline.DefaultRSSURLTemplate, cfg.Headlines.RSSURLTemplate)
	suite.Len(cfg.Headlines.Static.Table, 4)
	suite.Equal([]string{"Tesla deliveries drop"}, cfg.Headlines.Static.Table["TSLA"])

	settings := cfg.DetectorSettings()
	suite.Equal([]int{2}, settings.BreakoutSystems)
	suite.True(settings.Ichimoku)
	suite.False(settings.MACDCross)
	suite.True(settings.Divergence)
	suite.Equal(3, settings.DivergenceLookback)

	scorers := cfg.Scorers()
	suite.Require().Len(scorers, 1)
	suite.Equal("lexical", scorers[0].Name())
}

func (suite *ConfigTestSuite) TestParseEmptyUsesDefaults() {
	cfg, err := Parse(nil)
	suite.Require().NoError(err)
	suite.Equal(Default(), cfg)
}

func (suite *ConfigTestSuite) TestParseRejects() {
	tests := []struct {
		name string
		yaml string
		code errors.ErrorCode
	}{
		{"unknown key", "colour: blue\n", errors.ErrCodeConfigDecodeFailed},
		{"malformed", "market_data: [\n", errors.ErrCodeConfigDecodeFailed},
		{"bad provider", "market_data:\n  provider: yahoo\n", errors.ErrCodeInvalidConfiguration},
		{"duckdb without path", "market_data:\n  provider: duckdb\n", errors.ErrCodeInvalidConfiguration},
		{"bad interval", "market_data:\n  interval: 2d\n", errors.ErrCodeInvalidConfiguration},
		{"zero bars", "market_data:\n  bars: 0\n", errors.ErrCodeInvalidConfiguration},
		{"bad binance url", "market_data:\n  binance_url: not a url\n", errors.ErrCodeInvalidConfiguration},
		{"duplicate systems", "detectors:\n  breakout_systems: [1, 1]\n", errors.ErrCodeInvalidConfiguration},
		{"system zero", "detectors:\n  breakout_systems: [0]\n", errors.ErrCodeInvalidConfiguration},
		{"threshold too high", "sentiment:\n  lexical_threshold: 1.5\n", errors.ErrCodeInvalidConfiguration},
		{"rss template without placeholder", "headlines:\n  provider: rss\n  rss_url_template: https://example.com/rss\n", errors.ErrCodeInvalidConfiguration},
		{"bad log level", "log_level: loud\n", errors.ErrCodeInvalidConfiguration},
		{"newer config", "version: 1.4.0\n", errors.ErrCodeVersionMismatch},
		{"other major", "version: 2.0.0\n", errors.ErrCodeVersionMismatch},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			_, err := Parse([]byte(tc.yaml))
			suite.Require().Error(err)
			suite.True(errors.HasCode(err, tc.code), "got %v", err)
		})
	}
}

func (suite *ConfigTestSuite) TestLoad() {
	path := filepath.Join(suite.T().TempDir(), "signals.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte("market_data:\n  provider: polygon\n"), 0o600))

	cfg, err := Load(path)
	suite.Require().NoError(err)
	suite.Equal("polygon", cfg.MarketData.Provider)

	_, err = Load(filepath.Join(suite.T().TempDir(), "missing.yaml"))
	suite.True(errors.HasCode(err, errors.ErrCodeConfigReadFailed))
}

func (suite *ConfigTestSuite) TestScorersWithCustomKeywords() {
	cfg := Default()
	cfg.Sentiment.Lexical = false
	cfg.Sentiment.PositiveKeywords = []string{"Moon"}

	scorers := cfg.Scorers()
	suite.Require().Len(scorers, 1)

	keyword, ok := scorers[0].(*sentiment.Keyword)
	suite.Require().True(ok)
	suite.Equal(1, keyword.Tally([]string{"to the moon"}))
	suite.Equal(-1, keyword.Tally([]string{"prices drop"}))
}

func (suite *ConfigTestSuite) TestHeadlineProvider() {
	cfg := Default()
	log := logger.NewNopLogger()

	suite.IsType(&headline.StaticProvider{}, cfg.HeadlineProvider(log))

	cfg.Headlines.Provider = HeadlinesRSS
	suite.IsType(&headline.RSSProvider{}, cfg.HeadlineProvider(log))

	cfg.Headlines.Provider = HeadlinesNone
	suite.Nil(cfg.HeadlineProvider(log))
}

func (suite *ConfigTestSuite) TestMarketDataSettings() {
	cfg := Default()
	cfg.MarketData.BinanceURL = "https://testnet.binance.vision"

	settings := cfg.MarketDataSettings(Secrets{PolygonAPIKey: "pk", BinanceAPIKey: "bk", BinanceSecret: "bs"})
	suite.Equal(marketdata.ProviderBinance, settings.Provider)
	suite.Equal("pk", settings.PolygonAPIKey)
	suite.Equal("bk", settings.BinanceAPIKey)
	suite.Equal("bs", settings.BinanceSecret)
	suite.Equal("https://testnet.binance.vision", settings.BinanceURL)
}

func (suite *ConfigTestSuite) TestSchema() {
	schema, err := Schema()
	suite.Require().NoError(err)

	var decoded map[string]any
	suite.Require().NoError(json.Unmarshal([]byte(schema), &decoded))

	properties, ok := decoded["properties"].(map[string]any)
	suite.Require().True(ok)
	suite.Contains(properties, "market_data")
	suite.Contains(properties, "log_level")

	marketData, ok := properties["market_data"].(map[string]any)
	suite.Require().True(ok)
	suite.Contains(marketData["properties"], "data_path")
}

// Package config loads the YAML configuration of a signal scan.
package config

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-signals/internal/detector"
	"github.com/rxtech-lab/argo-signals/internal/headline"
	"github.com/rxtech-lab/argo-signals/internal/logger"
	"github.com/rxtech-lab/argo-signals/internal/marketdata"
	"github.com/rxtech-lab/argo-signals/internal/sentiment"
	"github.com/rxtech-lab/argo-signals/internal/version"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	HeadlinesRSS    = "rss"
	HeadlinesStatic = "static"
	HeadlinesNone   = "none"
)

// Config is the root of the configuration file.
type Config struct {
	Version    string     `yaml:"version" jsonschema:"title=Version,description=Configuration format version,required" validate:"required"`
	LogLevel   string     `yaml:"log_level" jsonschema:"title=Log Level,enum=debug,enum=info,enum=warn,enum=error" validate:"omitempty,oneof=debug info warn error"`
	MarketData MarketData `yaml:"market_data" jsonschema:"title=Market Data,required"`
	Headlines  Headlines  `yaml:"headlines" jsonschema:"title=Headlines"`
	Detectors  Detectors  `yaml:"detectors" jsonschema:"title=Detectors"`
	Sentiment  Sentiment  `yaml:"sentiment" jsonschema:"title=Sentiment"`
}

// MarketData selects the bar provider and the bars loaded per scan.
type MarketData struct {
	Provider   string `yaml:"provider" jsonschema:"title=Provider,enum=duckdb,enum=polygon,enum=binance,required" validate:"required,oneof=duckdb polygon binance"`
	DataPath   string `yaml:"data_path,omitempty" jsonschema:"title=Data Path,description=Parquet file or glob read by the duckdb provider" validate:"required_if=Provider duckdb"`
	Interval   string `yaml:"interval" jsonschema:"title=Interval,enum=1s,enum=1m,enum=3m,enum=5m,enum=15m,enum=30m,enum=1h,enum=2h,enum=4h,enum=6h,enum=8h,enum=12h,enum=1d,enum=3d,enum=1w,enum=1M" validate:"required,oneof=1s 1m 3m 5m 15m 30m 1h 2h 4h 6h 8h 12h 1d 3d 1w 1M"`
	Bars       int    `yaml:"bars" jsonschema:"title=Bars,description=Number of most recent bars evaluated,minimum=1" validate:"min=1,max=50000"`
	Strict     bool   `yaml:"strict" jsonschema:"title=Strict,description=Fail when fewer bars than requested exist"`
	BinanceURL string `yaml:"binance_url,omitempty" jsonschema:"title=Binance URL,description=Override of the Binance API endpoint" validate:"omitempty,url"`
}

// Headlines selects the headline provider.
type Headlines struct {
	Provider       string          `yaml:"provider" jsonschema:"title=Provider,enum=rss,enum=static,enum=none" validate:"required,oneof=rss static none"`
	MaxHeadlines   int             `yaml:"max_headlines" jsonschema:"title=Max Headlines,minimum=1" validate:"min=1,max=100"`
	RSSURLTemplate string          `yaml:"rss_url_template,omitempty" jsonschema:"title=RSS URL Template,description=Feed URL with a %s placeholder for the escaped query" validate:"required_if=Provider rss,omitempty,contains=%s"`
	UserAgent      string          `yaml:"user_agent,omitempty" jsonschema:"title=User Agent"`
	Static         StaticHeadlines `yaml:"static" jsonschema:"title=Static Headlines"`
}

// StaticHeadlines is the lookup table used by the static provider. Entries
// in the file extend the built-in table.
type StaticHeadlines struct {
	Fallback []string            `yaml:"fallback" jsonschema:"title=Fallback,description=Headlines for symbols missing from the table"`
	Table    map[string][]string `yaml:"table" jsonschema:"title=Table"`
}

// Detectors enables detectors.
type Detectors struct {
	BreakoutSystems    []int `yaml:"breakout_systems" jsonschema:"title=Breakout Systems,description=Turtle systems to run (1 = 20/10 days and any other number = 55/20 days)" validate:"unique,dive,min=1"`
	Ichimoku           bool  `yaml:"ichimoku" jsonschema:"title=Ichimoku"`
	MACDCross          bool  `yaml:"macd_cross" jsonschema:"title=MACD Cross"`
	Divergence         bool  `yaml:"divergence" jsonschema:"title=Divergence"`
	DivergenceLookback int   `yaml:"divergence_lookback" jsonschema:"title=Divergence Lookback,minimum=1" validate:"min=1,max=50"`
}

// Sentiment enables scorers.
type Sentiment struct {
	Lexical          bool     `yaml:"lexical" jsonschema:"title=Lexical"`
	Keyword          bool     `yaml:"keyword" jsonschema:"title=Keyword"`
	LexicalThreshold float64  `yaml:"lexical_threshold" jsonschema:"title=Lexical Threshold,minimum=0,maximum=1" validate:"gte=0,lte=1"`
	PositiveKeywords []string `yaml:"positive_keywords,omitempty" jsonschema:"title=Positive Keywords" validate:"dive,required"`
	NegativeKeywords []string `yaml:"negative_keywords,omitempty" jsonschema:"title=Negative Keywords" validate:"dive,required"`
}

// Default returns a configuration reading daily bars from Binance with every
// detector and scorer enabled and the built-in static headline table.
func Default() Config {
	settings := detector.DefaultSettings()

	return Config{
		Version:  version.ConfigVersion,
		LogLevel: "info",
		MarketData: MarketData{
			Provider:   string(marketdata.ProviderBinance),
			DataPath:   "",
			Interval:   string(marketdata.TimespanOneDay),
			Bars:       300,
			Strict:     false,
			BinanceURL: "",
		},
		Headlines: Headlines{
			Provider:       HeadlinesStatic,
			MaxHeadlines:   sentiment.DefaultMaxHeadlines,
			RSSURLTemplate: headline.DefaultRSSURLTemplate,
			UserAgent:      "",
			Static: StaticHeadlines{
				Fallback: append([]string(nil), headline.DefaultFallback...),
				Table:    headline.DefaultTable(),
			},
		},
		Detectors: Detectors{
			BreakoutSystems:    settings.BreakoutSystems,
			Ichimoku:           settings.Ichimoku,
			MACDCross:          settings.MACDCross,
			Divergence:         settings.Divergence,
			DivergenceLookback: settings.DivergenceLookback,
		},
		Sentiment: Sentiment{
			Lexical:          true,
			Keyword:          true,
			LexicalThreshold: sentiment.DefaultLexicalThreshold,
			PositiveKeywords: nil,
			NegativeKeywords: nil,
		},
	}
}

// Load reads the file at path over Default, validates the result and checks
// that its version is readable by this binary.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeConfigReadFailed, err, "failed to read config %s", path)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates it. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(errors.ErrCodeConfigDecodeFailed, "failed to decode config", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints and version compatibility.
func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	return version.CheckConfigCompatibility(version.ConfigVersion, c.Version)
}

// Horizon is the bar window loaded for each scan, ending now.
func (c Config) Horizon() marketdata.Horizon {
	return marketdata.Horizon{
		Interval: marketdata.Timespan(c.MarketData.Interval),
		Count:    c.MarketData.Bars,
		End:      time.Time{},
		Strict:   c.MarketData.Strict,
	}
}

// DetectorSettings converts the detectors section.
func (c Config) DetectorSettings() detector.Settings {
	return detector.Settings{
		BreakoutSystems:    c.Detectors.BreakoutSystems,
		Ichimoku:           c.Detectors.Ichimoku,
		MACDCross:          c.Detectors.MACDCross,
		Divergence:         c.Detectors.Divergence,
		DivergenceLookback: c.Detectors.DivergenceLookback,
	}
}

// MarketDataSettings combines the market data section with secrets.
func (c Config) MarketDataSettings(secrets Secrets) marketdata.Settings {
	return marketdata.Settings{
		Provider:      marketdata.ProviderType(c.MarketData.Provider),
		DataPath:      c.MarketData.DataPath,
		PolygonAPIKey: secrets.PolygonAPIKey,
		BinanceAPIKey: secrets.BinanceAPIKey,
		BinanceSecret: secrets.BinanceSecret,
		BinanceURL:    c.MarketData.BinanceURL,
	}
}

// Scorers builds the enabled sentiment scorers, lexical first.
func (c Config) Scorers() []sentiment.Scorer {
	var scorers []sentiment.Scorer

	if c.Sentiment.Lexical {
		scorers = append(scorers, sentiment.NewLexical(
			sentiment.WithMaxHeadlines(c.Headlines.MaxHeadlines),
			sentiment.WithThreshold(c.Sentiment.LexicalThreshold),
		))
	}

	if c.Sentiment.Keyword {
		var opts []sentiment.KeywordOption
		if len(c.Sentiment.PositiveKeywords) > 0 {
			opts = append(opts, sentiment.WithPositiveKeywords(c.Sentiment.PositiveKeywords...))
		}

		if len(c.Sentiment.NegativeKeywords) > 0 {
			opts = append(opts, sentiment.WithNegativeKeywords(c.Sentiment.NegativeKeywords...))
		}

		scorers = append(scorers, sentiment.NewKeyword(opts...))
	}

	return scorers
}

// HeadlineProvider builds the configured headline provider, or nil when
// headlines are disabled.
func (c Config) HeadlineProvider(log *logger.Logger) headline.Provider {
	switch c.Headlines.Provider {
	case HeadlinesRSS:
		var opts []headline.RSSOption
		if c.Headlines.UserAgent != "" {
			opts = append(opts, headline.WithUserAgent(c.Headlines.UserAgent))
		}

		return headline.NewRSSProvider(c.Headlines.RSSURLTemplate, log, opts...)
	case HeadlinesStatic:
		return headline.NewStaticProvider(c.Headlines.Static.Table, c.Headlines.Static.Fallback)
	default:
		return nil
	}
}

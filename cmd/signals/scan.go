package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rxtech-lab/argo-signals/internal/config"
	"github.com/rxtech-lab/argo-signals/internal/detector"
	"github.com/rxtech-lab/argo-signals/internal/indicator"
	"github.com/rxtech-lab/argo-signals/internal/logger"
	"github.com/rxtech-lab/argo-signals/internal/marketdata"
	"github.com/rxtech-lab/argo-signals/internal/scanner"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func scanAction(ctx context.Context, cmd *cli.Command) error {
	cfg := config.Default()

	if path := cmd.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}

	secrets, err := config.LoadSecrets(cmd.String("env-file"))
	if err != nil {
		return err
	}

	log, err := logger.NewLogger(cfg.LogLevel, "stderr")
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	defer func() { _ = log.Sync() }()

	horizon := cfg.Horizon()
	if cmd.IsSet("as-of") {
		horizon.End = cmd.Timestamp("as-of").UTC()
	}

	registry := prometheus.NewRegistry()

	s, closeProvider, err := buildScanner(cfg, secrets, horizon, registry, log)
	if err != nil {
		return err
	}

	defer closeProvider()

	symbols := cmd.StringSlice("symbol")
	out := cmd.Root().Writer
	asJSON := cmd.Bool("json")

	var bar *progressbar.ProgressBar
	if len(symbols) > 1 && !asJSON {
		bar = progressbar.NewOptions(len(symbols),
			progressbar.OptionSetWriter(cmd.Root().ErrWriter),
			progressbar.OptionSetDescription("Scanning"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	reports, scanErr := s.ScanMany(ctx, symbols, func(done, total int, symbol string) {
		log.Debug("Scanned symbol", zap.String("symbol", symbol), zap.Int("done", done), zap.Int("total", total))

		if bar != nil {
			_ = bar.Set(done)
		}
	})

	if bar != nil {
		_ = bar.Finish()
	}

	if err := writeReports(out, reports, asJSON); err != nil {
		return err
	}

	if path := cmd.String("metrics-file"); path != "" {
		if err := prometheus.WriteToTextfile(path, registry); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	return scanErr
}

// buildScanner wires providers, detectors and scorers from cfg. The returned
// function releases the bar provider.
func buildScanner(
	cfg config.Config,
	secrets config.Secrets,
	horizon marketdata.Horizon,
	registry prometheus.Registerer,
	log *logger.Logger,
) (*scanner.Scanner, func(), error) {
	provider, err := marketdata.New(cfg.MarketDataSettings(secrets), log)
	if err != nil {
		return nil, nil, err
	}

	closeProvider := func() {
		if closer, ok := provider.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				log.Warn("Failed to close bar provider", zap.Error(err))
			}
		}
	}

	cache := indicator.NewCache()

	detectors, err := detector.Build(cfg.DetectorSettings(), cache)
	if err != nil {
		closeProvider()
		return nil, nil, err
	}

	metrics, err := scanner.NewMetrics(registry)
	if err != nil {
		closeProvider()
		return nil, nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	opts := []scanner.Option{
		scanner.WithRegistry(detectors),
		scanner.WithScorers(cfg.Scorers()...),
		scanner.WithBarProvider(provider),
		scanner.WithHorizon(horizon),
		scanner.WithMaxHeadlines(cfg.Headlines.MaxHeadlines),
		scanner.WithCache(cache),
		scanner.WithMetrics(metrics),
		scanner.WithLogger(log),
	}

	if headlines := cfg.HeadlineProvider(log); headlines != nil {
		opts = append(opts, scanner.WithHeadlineProvider(headlines))
	}

	return scanner.New(opts...), closeProvider, nil
}

func writeReports(w io.Writer, reports []scanner.Report, asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(reports)
	}

	for _, report := range reports {
		if _, err := fmt.Fprintln(w, RenderReport(report)); err != nil {
			return err
		}
	}

	return nil
}

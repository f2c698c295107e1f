// Package scanner runs the registered detectors and sentiment scorers over a
// symbol and concatenates their signals into a report.
package scanner

import (
	"context"
	stderrors "errors"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rxtech-lab/argo-signals/internal/detector"
	"github.com/rxtech-lab/argo-signals/internal/headline"
	"github.com/rxtech-lab/argo-signals/internal/indicator"
	"github.com/rxtech-lab/argo-signals/internal/logger"
	"github.com/rxtech-lab/argo-signals/internal/marketdata"
	"github.com/rxtech-lab/argo-signals/internal/sentiment"
	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultBars is the default number of bars loaded per scan.
const DefaultBars = 300

// Report is the outcome of scanning one symbol.
type Report struct {
	RunID  uuid.UUID `json:"run_id"`
	Symbol string    `json:"symbol"`
	Bars   int       `json:"bars"`
	// AsOf is the time of the last bar evaluated.
	AsOf        time.Time      `json:"as_of"`
	Signals     []types.Signal `json:"signals"`
	GeneratedAt time.Time      `json:"generated_at"`
	// HeadlineError is set when headlines could not be fetched and sentiment was skipped.
	HeadlineError string `json:"headline_error,omitempty"`
}

// ProgressFunc is called by ScanMany after each symbol.
type ProgressFunc func(done, total int, symbol string)

// Scanner composes bar and headline providers with detectors and scorers.
type Scanner struct {
	registry     detector.Registry
	scorers      []sentiment.Scorer
	bars         marketdata.Provider
	headlines    headline.Provider
	horizon      marketdata.Horizon
	maxHeadlines int
	cache        *indicator.Cache
	metrics      *Metrics
	logger       *logger.Logger
	now          func() time.Time
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithRegistry sets the detectors to run.
func WithRegistry(registry detector.Registry) Option {
	return func(s *Scanner) {
		s.registry = registry
	}
}

// WithScorers sets the sentiment scorers to run after the detectors.
func WithScorers(scorers ...sentiment.Scorer) Option {
	return func(s *Scanner) {
		s.scorers = scorers
	}
}

func WithBarProvider(provider marketdata.Provider) Option {
	return func(s *Scanner) {
		s.bars = provider
	}
}

func WithHeadlineProvider(provider headline.Provider) Option {
	return func(s *Scanner) {
		s.headlines = provider
	}
}

// WithHorizon sets which bars are loaded for each scan.
func WithHorizon(horizon marketdata.Horizon) Option {
	return func(s *Scanner) {
		s.horizon = horizon
	}
}

func WithMaxHeadlines(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.maxHeadlines = n
		}
	}
}

// WithCache sets the indicator cache shared by the registered detectors. It
// is cleared after every scan.
func WithCache(cache *indicator.Cache) Option {
	return func(s *Scanner) {
		s.cache = cache
	}
}

func WithMetrics(metrics *Metrics) Option {
	return func(s *Scanner) {
		s.metrics = metrics
	}
}

func WithLogger(log *logger.Logger) Option {
	return func(s *Scanner) {
		s.logger = log.Named("scanner")
	}
}

// WithClock overrides the report timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Scanner) {
		s.now = now
	}
}

// New creates a Scanner. Without options it has no detectors, no scorers and
// no providers, so only Evaluate is useful.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		registry:     detector.NewRegistry(),
		scorers:      nil,
		bars:         nil,
		headlines:    nil,
		horizon:      marketdata.Horizon{Interval: marketdata.TimespanOneDay, Count: DefaultBars, End: time.Time{}, Strict: false},
		maxHeadlines: sentiment.DefaultMaxHeadlines,
		cache:        nil,
		metrics:      nil,
		logger:       logger.NewNopLogger(),
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Evaluate runs every detector on bars and every scorer on headlines and
// concatenates the signals: detectors in registration order, then scorers.
// Detectors run concurrently on the same slice, which is never modified.
func (s *Scanner) Evaluate(bars []types.MarketData, headlines []string) []types.Signal {
	type source struct {
		name string
		run  func() []types.Signal
	}

	var sources []source

	for _, d := range s.registry.Detectors() {
		sources = append(sources, source{name: d.Name(), run: func() []types.Signal { return d.Detect(bars) }})
	}

	for _, sc := range s.scorers {
		sources = append(sources, source{name: sc.Name(), run: func() []types.Signal { return sc.Score(headlines) }})
	}

	results := make([][]types.Signal, len(sources))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, src := range sources {
		g.Go(func() error {
			start := time.Now()
			results[i] = src.run()
			s.metrics.observeSource(src.name, len(results[i]), time.Since(start))

			return nil
		})
	}

	_ = g.Wait()

	var signals []types.Signal

	for i, res := range results {
		if len(res) > 0 {
			s.logger.Debug("Source emitted signals", zap.String("detector", sources[i].name), zap.Int("signals", len(res)))
		}

		signals = append(signals, res...)
	}

	return signals
}

// Scan loads bars and headlines for symbol and evaluates them. A bar provider
// failure aborts the scan; a headline failure only skips sentiment scoring.
func (s *Scanner) Scan(ctx context.Context, symbol string) (Report, error) {
	report, err := s.scan(ctx, symbol)
	s.metrics.observeScan(err)

	return report, err
}

func (s *Scanner) scan(ctx context.Context, symbol string) (Report, error) {
	if s.bars == nil {
		return Report{}, errors.New(errors.ErrCodeDataSourceUnavailable, "scanner has no bar provider")
	}

	runID := uuid.New()
	log := s.logger.With(zap.String("run_id", runID.String()), zap.String("symbol", symbol))

	bars, err := s.bars.Bars(ctx, symbol, s.horizon)
	if err != nil {
		log.Error("Failed to load bars", zap.Error(err))
		return Report{}, err
	}

	s.metrics.observeBars(len(bars))

	report := Report{
		RunID:         runID,
		Symbol:        symbol,
		Bars:          len(bars),
		AsOf:          time.Time{},
		Signals:       nil,
		GeneratedAt:   time.Time{},
		HeadlineError: "",
	}

	if len(bars) > 0 {
		report.AsOf = bars[len(bars)-1].Time
	}

	var headlines []string

	if len(s.scorers) > 0 && s.headlines != nil {
		headlines, err = s.headlines.Headlines(ctx, symbol, s.maxHeadlines)
		if err != nil {
			log.Warn("Failed to load headlines, skipping sentiment", zap.Error(err))
			s.metrics.observeHeadlineFailure()
			report.HeadlineError = err.Error()
			headlines = nil
		}
	}

	hitsBefore, missesBefore := s.cache.Stats()

	report.Signals = s.Evaluate(bars, headlines)
	report.GeneratedAt = s.now().UTC()

	hits, misses := s.cache.Stats()
	s.metrics.observeCache(hits-hitsBefore, misses-missesBefore)
	s.cache.Clear()

	log.Info("Scan complete", zap.Int("bars", len(bars)), zap.Int("signals", len(report.Signals)))

	return report, nil
}

// ScanMany scans symbols one after another. Reports are returned for the
// symbols that succeeded together with the joined errors of those that failed.
// Cancelling ctx stops before the next symbol.
func (s *Scanner) ScanMany(ctx context.Context, symbols []string, progress ProgressFunc) ([]Report, error) {
	reports := make([]Report, 0, len(symbols))

	var errs []error

	for i, symbol := range symbols {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		report, err := s.Scan(ctx, symbol)
		if err != nil {
			errs = append(errs, errors.Wrapf(errors.GetCode(err), err, "scan %s", symbol))
		} else {
			reports = append(reports, report)
		}

		if progress != nil {
			progress(i+1, len(symbols), symbol)
		}
	}

	return reports, stderrors.Join(errs...)
}

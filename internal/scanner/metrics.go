package scanner

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors updated by a Scanner. A nil
// *Metrics records nothing.
type Metrics struct {
	ScansTotal        *prometheus.CounterVec   // labels: status=ok|error
	SignalsTotal      *prometheus.CounterVec   // labels: source
	DetectorDuration  *prometheus.HistogramVec // labels: source
	HeadlineFailures  prometheus.Counter
	BarsLoaded        prometheus.Histogram
	IndicatorCacheHit prometheus.Gauge
}

// NewMetrics creates the scanner collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		ScansTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "signals_scans_total",
			Help: "Symbol scans by outcome",
		}, []string{"status"}),
		SignalsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "signals_emitted_total",
			Help: "Signals emitted by detector or scorer",
		}, []string{"source"}),
		DetectorDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "signals_evaluation_duration_seconds",
			Help:    "Time spent in a single detector or scorer",
			Buckets: []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"source"}),
		HeadlineFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "signals_headline_failures_total",
			Help: "Headline fetches that failed and skipped sentiment scoring",
		}),
		BarsLoaded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "signals_bars_loaded",
			Help:    "Bars returned by the bar provider per scan",
			Buckets: []float64{50, 100, 200, 300, 500, 1000, 5000},
		}),
		IndicatorCacheHit: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "signals_indicator_cache_hit_ratio",
			Help: "Hit ratio of the shared indicator cache in the last scan",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.ScansTotal,
		m.SignalsTotal,
		m.DetectorDuration,
		m.HeadlineFailures,
		m.BarsLoaded,
		m.IndicatorCacheHit,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observeScan(err error) {
	if m == nil {
		return
	}

	status := "ok"
	if err != nil {
		status = "error"
	}

	m.ScansTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) observeSource(source string, signals int, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.DetectorDuration.WithLabelValues(source).Observe(elapsed.Seconds())
	m.SignalsTotal.WithLabelValues(source).Add(float64(signals))
}

func (m *Metrics) observeHeadlineFailure() {
	if m == nil {
		return
	}

	m.HeadlineFailures.Inc()
}

func (m *Metrics) observeBars(n int) {
	if m == nil {
		return
	}

	m.BarsLoaded.Observe(float64(n))
}

func (m *Metrics) observeCache(hits, misses uint64) {
	if m == nil || hits+misses == 0 {
		return
	}

	m.IndicatorCacheHit.Set(float64(hits) / float64(hits+misses))
}

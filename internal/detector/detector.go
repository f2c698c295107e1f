// Package detector holds the technical pattern detectors. Each detector is a
// pure function of an ordered bar series: it emits zero or more signals about
// the latest bar and never returns an error. Insufficient history and missing
// indicator values produce no signal.
package detector

import (
	"github.com/rxtech-lab/argo-signals/internal/indicator"
	"github.com/rxtech-lab/argo-signals/internal/types"
)

// Detector evaluates a bar series and reports signals for its last bar.
type Detector interface {
	// Name is the registry key of the detector.
	Name() string
	// MinBars is the shortest series the detector will evaluate.
	MinBars() int
	// Detect runs the detector. The bars must not be modified.
	Detect(bars []types.MarketData) []types.Signal
}

type options struct {
	cache *indicator.Cache
}

// Option configures a detector.
type Option func(*options)

// WithCache shares indicator computations between detectors evaluating the
// same bars.
func WithCache(cache *indicator.Cache) Option {
	return func(o *options) {
		o.cache = cache
	}
}

func buildOptions(opts []Option) options {
	o := options{cache: nil}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

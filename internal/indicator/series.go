// Package indicator derives numeric series from an ordered bar series.
//
// Every series returned here is aligned 1:1 with the input bars. Positions
// that fall inside an indicator's look-back are missing (optional.None) and
// never zero. Inputs shorter than an indicator's warm-up produce a series
// that is missing everywhere rather than an error.
package indicator

import (
	"github.com/moznion/go-optional"
)

// Series is a derived numeric series aligned with its source bars.
// Series values handed out by a Cache are shared and must not be modified.
type Series []optional.Option[float64]

// NewSeries wraps raw values, marking every index before validFrom missing.
func NewSeries(values []float64, validFrom int) Series {
	series := make(Series, len(values))
	for i, v := range values {
		if i < validFrom {
			series[i] = optional.None[float64]()
			continue
		}

		series[i] = optional.Some(v)
	}

	return series
}

// Missing returns a series of length n with no values.
func Missing(n int) Series {
	series := make(Series, n)
	for i := range series {
		series[i] = optional.None[float64]()
	}

	return series
}

// Len returns the number of positions in the series.
func (s Series) Len() int {
	return len(s)
}

// At returns the value at index i. Out-of-range indices are missing.
func (s Series) At(i int) optional.Option[float64] {
	if i < 0 || i >= len(s) {
		return optional.None[float64]()
	}

	return s[i]
}

// Last returns the value at the final position.
func (s Series) Last() optional.Option[float64] {
	return s.At(len(s) - 1)
}

// Prev returns the value one position before the final one.
func (s Series) Prev() optional.Option[float64] {
	return s.At(len(s) - 2)
}

// FirstValid returns the index of the first present value, or Len() when
// the series is missing everywhere.
func (s Series) FirstValid() int {
	for i, v := range s {
		if v.IsSome() {
			return i
		}
	}

	return len(s)
}

// Shift moves every value n positions later. The first n positions become missing.
func (s Series) Shift(n int) Series {
	shifted := Missing(len(s))
	for i := n; i < len(s); i++ {
		if i-n >= 0 {
			shifted[i] = s[i-n]
		}
	}

	return shifted
}

// Values returns the present values from index from onward. Missing
// positions are reported as zero together with ok=false.
func (s Series) Values(from int) (values []float64, ok bool) {
	if from < 0 {
		from = 0
	}

	ok = true
	values = make([]float64, 0, max(len(s)-from, 0))

	for i := from; i < len(s); i++ {
		v, err := s[i].Take()
		if err != nil {
			ok = false
		}

		values = append(values, v)
	}

	return values, ok
}

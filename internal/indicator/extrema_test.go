package indicator

import (
	"testing"

	"github.com/rxtech-lab/argo-signals/mocks"
	"github.com/stretchr/testify/suite"
)

type ExtremaTestSuite struct {
	suite.Suite
}

func TestExtremaSuite(t *testing.T) {
	suite.Run(t, new(ExtremaTestSuite))
}

func marked(flags []bool) []int {
	var idx []int

	for i, f := range flags {
		if f {
			idx = append(idx, i)
		}
	}

	return idx
}

func (suite *ExtremaTestSuite) TestTroughs() {
	values := []float64{5, 4, 3, 4, 5, 6, 2, 6}
	suite.Equal([]int{2}, marked(Troughs(values, 2)))
}

func (suite *ExtremaTestSuite) TestTroughTieKeepsLatest() {
	suite.Equal([]int{2}, marked(Troughs([]float64{3, 1, 1, 3, 3}, 1)))
	suite.Equal([]int{1, 3}, marked(Troughs([]float64{3, 1, 2, 1, 3, 3, 3}, 1)))
}

func (suite *ExtremaTestSuite) TestPeaks() {
	suite.Equal([]int{1, 3}, marked(Peaks([]float64{1, 3, 2, 3, 1}, 1)))
	suite.Equal([]int{2}, marked(Peaks([]float64{1, 3, 3, 1, 0}, 1)))
}

func (suite *ExtremaTestSuite) TestEdgesNeverQualify() {
	values := []float64{0, 5, 5, 5, 0}
	suite.Empty(marked(Troughs(values, 2)))
	suite.Empty(marked(Troughs(values[:3], 2)))
	suite.Empty(marked(Troughs(values, 0)))
}

func (suite *ExtremaTestSuite) TestMatchesBruteForce() {
	gen := mocks.NewDataGenerator(99)
	config := mocks.DefaultConfig()
	config.Count = 400

	values := make([]float64, 0, config.Count)
	for _, bar := range gen.Generate(config) {
		values = append(values, bar.Low)
	}

	for _, k := range []int{1, 3, 5} {
		troughs := Troughs(values, k)

		for i := range values {
			expected := false

			if i >= k && i+k < len(values) {
				last := i - k
				for j := i - k; j <= i+k; j++ {
					if values[j] <= values[last] {
						last = j
					}
				}

				expected = last == i
			}

			suite.Equal(expected, troughs[i], "k=%d i=%d", k, i)
		}
	}
}

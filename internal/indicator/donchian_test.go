package indicator

import (
	"testing"

	"github.com/rxtech-lab/argo-signals/mocks"
	"github.com/stretchr/testify/suite"
)

type DonchianTestSuite struct {
	suite.Suite
}

func TestDonchianSuite(t *testing.T) {
	suite.Run(t, new(DonchianTestSuite))
}

func (suite *DonchianTestSuite) TestRollingMaxMin() {
	values := []float64{3, 1, 4, 1, 5, 9, 2, 6}

	maxes := RollingMax(values, 3)
	suite.True(maxes.At(1).IsNone())
	suite.Equal(4.0, maxes.At(2).Unwrap())
	suite.Equal(9.0, maxes.At(5).Unwrap())
	suite.Equal(9.0, maxes.At(7).Unwrap())

	mins := RollingMin(values, 3)
	suite.True(mins.At(1).IsNone())
	suite.Equal(1.0, mins.At(2).Unwrap())
	suite.Equal(1.0, mins.At(4).Unwrap())
	suite.Equal(2.0, mins.At(7).Unwrap())
}

func (suite *DonchianTestSuite) TestRollingWindowOfOne() {
	values := []float64{3, 1, 4}
	suite.Equal(1.0, RollingMax(values, 1).At(1).Unwrap())
	suite.Equal(4.0, RollingMin(values, 1).At(2).Unwrap())
}

func (suite *DonchianTestSuite) TestRollingInvalidWindow() {
	values := []float64{3, 1, 4}
	suite.Equal(3, RollingMax(values, 0).FirstValid())
	suite.Equal(3, RollingMin(values, -1).FirstValid())
	suite.Equal(3, RollingMax(values, 4).FirstValid())
}

func (suite *DonchianTestSuite) TestDonchianExcludesCurrentBar() {
	bars := mocks.BarsFromCloses("TEST", mocks.Linear(1, 1, 30), 0)

	high := DonchianHigh(bars, 20)
	suite.True(high.At(19).IsNone())
	suite.Equal(20.0, high.At(20).Unwrap())

	low := DonchianLow(bars, 20)
	suite.Equal(1.0, low.At(20).Unwrap())
	suite.Equal(5.0, low.At(25).Unwrap())

	bars[25].High = 1000
	high = DonchianHigh(bars, 20)
	suite.Equal(25.0, high.At(25).Unwrap())
	suite.Equal(1000.0, high.At(26).Unwrap())
}

func (suite *DonchianTestSuite) TestDonchianShortInput() {
	bars := mocks.BarsFromCloses("TEST", mocks.Linear(1, 1, 10), 0)
	suite.Equal(10, DonchianHigh(bars, 20).FirstValid())
	suite.Equal(10, DonchianLow(bars, 20).FirstValid())
}

package indicator

import (
	"testing"

	"github.com/rxtech-lab/argo-signals/mocks"
	"github.com/stretchr/testify/suite"
)

type ATRTestSuite struct {
	suite.Suite
}

func TestATRSuite(t *testing.T) {
	suite.Run(t, new(ATRTestSuite))
}

func (suite *ATRTestSuite) TestConstantRange() {
	bars := mocks.BarsFromCloses("TEST", mocks.Constant(100, 40), 1)
	atr := ATR(bars, ATRPeriod)

	suite.True(atr.At(ATRPeriod - 1).IsNone())

	for i := ATRPeriod; i < len(bars); i++ {
		suite.InDelta(2.0, atr.At(i).Unwrap(), 1e-9)
	}
}

func (suite *ATRTestSuite) TestGapUsesPreviousClose() {
	bars := mocks.BarsFromCloses("TEST", mocks.Constant(100, 3), 1)
	// A gap up: true range reaches back to the previous close.
	bars[2].Open, bars[2].High, bars[2].Low, bars[2].Close = 110, 111, 109, 110

	atr := ATR(bars, 2)
	suite.True(atr.At(1).IsNone())
	// (2 + max(2, 11, 9)) / 2
	suite.InDelta(6.5, atr.At(2).Unwrap(), 1e-9)
}

func (suite *ATRTestSuite) TestNonNegative() {
	gen := mocks.NewDataGenerator(11)
	config := mocks.DefaultConfig()
	config.Count = 300

	atr := ATR(gen.Generate(config), ATRPeriod)
	for i := atr.FirstValid(); i < atr.Len(); i++ {
		suite.GreaterOrEqual(atr.At(i).Unwrap(), 0.0)
	}
}

func (suite *ATRTestSuite) TestShortInput() {
	bars := mocks.BarsFromCloses("TEST", mocks.Constant(100, ATRPeriod), 1)
	suite.Equal(ATRPeriod, ATR(bars, ATRPeriod).FirstValid())
	suite.Equal(ATRPeriod, ATR(bars, 0).FirstValid())
}

package detector

import (
	"testing"

	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/mocks"
	"github.com/stretchr/testify/suite"
)

type MACDCrossTestSuite struct {
	suite.Suite
}

func TestMACDCrossSuite(t *testing.T) {
	suite.Run(t, new(MACDCrossTestSuite))
}

// pullbackBounce rises 0.5 per bar for 219 bars, pulls back 27 bars and
// bounces 10 on the last bar: histogram crosses above zero while MACD and
// signal are still negative and price is far above the 200 EMA.
func pullbackBounce() []types.MarketData {
	closes := walk(100, repeat(0.5, 219), repeat(-0.5, 27), []float64{10})
	return mocks.BarsFromCloses("TEST", closes, 0.5)
}

func (suite *MACDCrossTestSuite) TestBullishCross() {
	bars := pullbackBounce()
	suite.Len(bars, 248)

	signals := DetectMACDCross(bars)
	suite.Require().Len(signals, 1)

	s := signals[0]
	suite.Equal("MACD Bullish Cross", s.Type)
	suite.Equal(types.DirectionLong, s.Direction)
	suite.Equal(82, s.Confidence)
	suite.Equal("MACD/EMA200", s.Indicator)
	suite.InDelta(206.0, s.EntryPrice.Unwrap(), 1e-9)
}

func (suite *MACDCrossTestSuite) TestNoCrossBeforeBounce() {
	bars := pullbackBounce()
	suite.Empty(DetectMACDCross(bars[:len(bars)-1]))
}

func (suite *MACDCrossTestSuite) TestTrendFilter() {
	// Same histogram cross in a downtrend: price sits below the 200 EMA.
	closes := walk(300, repeat(-0.5, 219), repeat(-1, 5), []float64{6})
	bars := mocks.BarsFromCloses("TEST", closes, 0.5)

	suite.Len(bars, 226)
	suite.Empty(DetectMACDCross(bars))
}

func (suite *MACDCrossTestSuite) TestInsufficientHistory() {
	bars := pullbackBounce()
	suite.Empty(DetectMACDCross(bars[len(bars)-199:]))
}

func (suite *MACDCrossTestSuite) TestNoBearishVariant() {
	// Mirror image of the bullish fixture.
	closes := walk(300, repeat(-0.5, 219), repeat(0.5, 27), []float64{-10})
	suite.Empty(DetectMACDCross(mocks.BarsFromCloses("TEST", closes, 0.5)))
}

package indicator

import (
	"testing"

	"github.com/rxtech-lab/argo-signals/mocks"
	"github.com/stretchr/testify/suite"
)

type RSITestSuite struct {
	suite.Suite
}

func TestRSISuite(t *testing.T) {
	suite.Run(t, new(RSITestSuite))
}

func (suite *RSITestSuite) TestWarmup() {
	bars := mocks.BarsFromCloses("TEST", mocks.Linear(100, 1, 30), 0.5)
	rsi := RSI(bars, RSIPeriod)

	suite.Equal(RSIPeriod, rsi.FirstValid())
	suite.True(rsi.At(RSIPeriod - 1).IsNone())
}

func (suite *RSITestSuite) TestMonotonicPaths() {
	up := RSI(mocks.BarsFromCloses("TEST", mocks.Linear(100, 1, 30), 0.5), RSIPeriod)
	suite.InDelta(100.0, up.Last().Unwrap(), 1e-9)

	down := RSI(mocks.BarsFromCloses("TEST", mocks.Linear(100, -1, 30), 0.5), RSIPeriod)
	suite.InDelta(0.0, down.Last().Unwrap(), 1e-9)
}

func (suite *RSITestSuite) TestBounded() {
	gen := mocks.NewDataGenerator(7)
	config := mocks.DefaultConfig()
	config.Count = 500

	rsi := RSI(gen.Generate(config), RSIPeriod)

	for i := rsi.FirstValid(); i < rsi.Len(); i++ {
		v := rsi.At(i).Unwrap()
		suite.GreaterOrEqual(v, 0.0)
		suite.LessOrEqual(v, 100.0)
	}
}

func (suite *RSITestSuite) TestShortInput() {
	bars := mocks.BarsFromCloses("TEST", mocks.Linear(100, 1, RSIPeriod), 0.5)
	suite.Equal(RSIPeriod, RSI(bars, RSIPeriod).FirstValid())
	suite.Equal(RSIPeriod, RSI(bars, 1).FirstValid())
}

package sentiment_test

import (
	"testing"

	"github.com/rxtech-lab/argo-signals/internal/sentiment"
	"github.com/rxtech-lab/argo-signals/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScorerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	analyzer *mocks.MockAnalyzer
}

func TestScorerSuite(t *testing.T) {
	suite.Run(t, new(ScorerTestSuite))
}

func (suite *ScorerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.analyzer = mocks.NewMockAnalyzer(suite.ctrl)
}

func (suite *ScorerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ScorerTestSuite) TestAnalyzerCalledOncePerHeadline() {
	suite.analyzer.EXPECT().Compound("up").Return(0.8).Times(2)
	suite.analyzer.EXPECT().Compound("flat").Return(0.0).Times(1)

	scorer := sentiment.NewLexical(sentiment.WithAnalyzer(suite.analyzer))

	signals := scorer.Score([]string{"up", "flat", "up"})
	suite.Require().Len(signals, 1)
	// avg 0.5333 -> round(86.0)
	suite.Equal(86, signals[0].Confidence)
}

func (suite *ScorerTestSuite) TestAnalyzerNotCalledBeyondCap() {
	suite.analyzer.EXPECT().Compound(gomock.Any()).Return(-0.5).Times(3)

	scorer := sentiment.NewLexical(sentiment.WithAnalyzer(suite.analyzer), sentiment.WithMaxHeadlines(3))

	signals := scorer.Score([]string{"a", "b", "c", "d", "e"})
	suite.Require().Len(signals, 1)
	suite.Equal("Institutional Bearish Sentiment", signals[0].Type)
}

func (suite *ScorerTestSuite) TestScorersAreInterchangeable() {
	suite.analyzer.EXPECT().Compound(gomock.Any()).Return(0.9).AnyTimes()

	scorers := []sentiment.Scorer{
		sentiment.NewLexical(sentiment.WithAnalyzer(suite.analyzer)),
		sentiment.NewKeyword(),
	}

	headlines := []string{"Bitcoin surges as ETF inflows hit record highs"}
	for _, scorer := range scorers {
		signals := scorer.Score(headlines)
		suite.Require().Len(signals, 1, scorer.Name())
		suite.True(signals[0].IsBullish())
	}
}

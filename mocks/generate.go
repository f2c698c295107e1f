package mocks

//go:generate mockgen -destination=./mock_analyzer.go -package=mocks github.com/rxtech-lab/argo-signals/internal/sentiment Analyzer
//go:generate mockgen -destination=./mock_bar_provider.go -package=mocks -mock_names=Provider=MockBarProvider github.com/rxtech-lab/argo-signals/internal/marketdata Provider
//go:generate mockgen -destination=./mock_headline_provider.go -package=mocks -mock_names=Provider=MockHeadlineProvider github.com/rxtech-lab/argo-signals/internal/headline Provider

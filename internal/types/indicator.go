package types

// IndicatorType names a derived series computed from a bar series.
type IndicatorType string

const (
	IndicatorTypeDonchianHigh IndicatorType = "donchian_high"
	IndicatorTypeDonchianLow  IndicatorType = "donchian_low"
	IndicatorTypeATR          IndicatorType = "atr"
	IndicatorTypeRSI          IndicatorType = "rsi"
	IndicatorTypeMACD         IndicatorType = "macd"
	IndicatorTypeMACDSignal   IndicatorType = "macd_signal"
	IndicatorTypeMACDHist     IndicatorType = "macd_hist"
	IndicatorTypeEMA          IndicatorType = "ema"
	IndicatorTypeTenkan       IndicatorType = "tenkan"
	IndicatorTypeKijun        IndicatorType = "kijun"
)

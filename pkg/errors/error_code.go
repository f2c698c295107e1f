package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInsufficientData     ErrorCode = 106
	ErrCodeInvalidPeriod        ErrorCode = 108
	ErrCodeMissingParameter     ErrorCode = 109
	ErrCodeInvalidVersion       ErrorCode = 110
	ErrCodeInvalidBar           ErrorCode = 120

	// Data/Resource errors (200-299)
	ErrCodeDataNotFound          ErrorCode = 200
	ErrCodeDataSourceUnavailable ErrorCode = 201
	ErrCodeQueryFailed           ErrorCode = 202
	ErrCodeNoDataFound           ErrorCode = 204

	// Indicator errors (300-399)
	ErrCodeIndicatorNotFound    ErrorCode = 300
	ErrCodeIndicatorCalculation ErrorCode = 302

	// Detector errors (400-499)
	ErrCodeDetectorNotFound      ErrorCode = 400
	ErrCodeDetectorAlreadyExists ErrorCode = 401
	ErrCodeUnsupportedDetector   ErrorCode = 403

	// Market data errors (700-799)
	ErrCodeMarketDataFetchFailed ErrorCode = 700
	ErrCodeMarketDataParseFailed ErrorCode = 702
	ErrCodeInvalidTimespan       ErrorCode = 703
	ErrCodeInvalidProvider       ErrorCode = 704

	// Headline errors (800-899)
	ErrCodeHeadlineFetchFailed ErrorCode = 800
	ErrCodeHeadlineParseFailed ErrorCode = 801

	// Config errors (900-999)
	ErrCodeConfigReadFailed   ErrorCode = 900
	ErrCodeConfigDecodeFailed ErrorCode = 901
	ErrCodeVersionMismatch    ErrorCode = 902
)

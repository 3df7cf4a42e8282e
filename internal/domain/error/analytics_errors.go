// Package error defines domain-specific errors for the Budget Guy application.
package error

import "errors"

// Analytics domain errors.
var (
	// ErrInvalidYear is returned when the requested year cannot be parsed.
	ErrInvalidYear = errors.New("invalid year")

	// ErrInvalidPeriod is returned when the requested month/year pair is invalid.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInvalidDateRange is returned when end date precedes start date.
	ErrInvalidDateRange = errors.New("end_date must not be before start_date")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidYear      AnalyticsErrorCode = "ANL-010001"
	ErrCodeInvalidPeriod    AnalyticsErrorCode = "ANL-010002"
	ErrCodeInvalidDateRange AnalyticsErrorCode = "ANL-010003"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

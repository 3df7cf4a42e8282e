// Package error defines domain-specific errors for the Budget Guy application.
package error

import "errors"

// Investment domain errors.
var (
	// ErrInvestmentNotFound is returned when an investment is not found in the system.
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrInvalidInvestmentType is returned when the investment type is invalid.
	ErrInvalidInvestmentType = errors.New("invalid investment type")

	// ErrOthersDetailRequired is returned when type is "others" and no detail was supplied.
	ErrOthersDetailRequired = errors.New("detail is required when investment type is others")

	// ErrNotAuthorizedToModifyInvestment is returned when user is not authorized to modify an investment.
	ErrNotAuthorizedToModifyInvestment = errors.New("not authorized to modify investment")

	// ErrMissingInvestmentFields is returned when required investment fields are absent.
	ErrMissingInvestmentFields = errors.New("missing required investment fields")

	// ErrInvestmentNameTooLong is returned when the investment name exceeds the maximum length.
	ErrInvestmentNameTooLong = errors.New("investment name too long")
)

// InvestmentErrorCode defines error codes for investment errors.
// Format: INV-XXYYYY where XX is category and YYYY is specific error.
type InvestmentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidInvestmentType   InvestmentErrorCode = "INV-010001"
	ErrCodeOthersDetailRequired    InvestmentErrorCode = "INV-010002"
	ErrCodeInvestmentNotFound      InvestmentErrorCode = "INV-010003"
	ErrCodeNotAuthorizedInvestment InvestmentErrorCode = "INV-010004"
	ErrCodeMissingInvestmentFields InvestmentErrorCode = "INV-010005"
	ErrCodeInvestmentNameTooLong   InvestmentErrorCode = "INV-010006"
)

// InvestmentError represents an investment error with code and message.
type InvestmentError struct {
	Code    InvestmentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InvestmentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InvestmentError) Unwrap() error {
	return e.Err
}

// NewInvestmentError creates a new InvestmentError with the given code and message.
func NewInvestmentError(code InvestmentErrorCode, message string, err error) *InvestmentError {
	return &InvestmentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

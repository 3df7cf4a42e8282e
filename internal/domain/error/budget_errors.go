// Package error defines domain-specific errors for the Budget Guy application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrDuplicateBudget is returned when a budget already exists for the same
	// category, month and year.
	ErrDuplicateBudget = errors.New("a budget for this category, month, and year already exists")

	// ErrNonPositiveLimit is returned when the monthly limit is zero or negative.
	ErrNonPositiveLimit = errors.New("monthly limit must be greater than zero")

	// ErrInvalidMonth is returned when the month is outside 1..12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrNotAuthorizedToModifyBudget is returned when user is not authorized to modify a budget.
	ErrNotAuthorizedToModifyBudget = errors.New("not authorized to modify budget")

	// ErrBudgetCategoryNotOwned is returned when the budget's category does not belong to the user.
	ErrBudgetCategoryNotOwned = errors.New("category does not belong to user")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNonPositiveLimit      BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidMonth          BudgetErrorCode = "BGT-010002"
	ErrCodeBudgetNotFound        BudgetErrorCode = "BGT-010003"
	ErrCodeNotAuthorizedBudget   BudgetErrorCode = "BGT-010004"
	ErrCodeBudgetCategoryMissing BudgetErrorCode = "BGT-010005"
	ErrCodeMissingBudgetFields   BudgetErrorCode = "BGT-010006"

	// Conflict errors (02XXXX)
	ErrCodeDuplicateBudget BudgetErrorCode = "BGT-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

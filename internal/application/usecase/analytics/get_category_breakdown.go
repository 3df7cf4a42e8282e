// Package analytics contains report use cases.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mos3c/budget-guy/internal/application/adapter"
	domainerror "github.com/mos3c/budget-guy/internal/domain/error"
)

// GetCategoryBreakdownInput represents the input for the category breakdown
// report. Both date bounds are optional and inclusive.
type GetCategoryBreakdownInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// GetCategoryBreakdownOutput represents the category breakdown report.
type GetCategoryBreakdownOutput struct {
	StartDate          *time.Time
	EndDate            *time.Time
	IncomeByCategory   []CategoryTotal
	ExpensesByCategory []CategoryTotal
}

// GetCategoryBreakdownUseCase assembles per-category totals over a date range.
type GetCategoryBreakdownUseCase struct {
	analyticsRepo adapter.AnalyticsRepository
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(analyticsRepo adapter.AnalyticsRepository) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		analyticsRepo: analyticsRepo,
	}
}

// Execute assembles the category breakdown report.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	rows, err := uc.analyticsRepo.TransactionRows(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	income, expenses := CategoryBreakdown(rows)

	return &GetCategoryBreakdownOutput{
		StartDate:          input.StartDate,
		EndDate:            input.EndDate,
		IncomeByCategory:   income,
		ExpensesByCategory: expenses,
	}, nil
}

// Package analytics contains report use cases.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mos3c/budget-guy/internal/application/adapter"
	domainerror "github.com/mos3c/budget-guy/internal/domain/error"
)

// GetBudgetProgressInput represents the input for the budget progress report.
// Zero Month and Year default to the current period.
type GetBudgetProgressInput struct {
	UserID uuid.UUID
	Month  int
	Year   int
}

// BudgetOverallSummary aggregates all budgets of the period.
type BudgetOverallSummary struct {
	TotalBudgeted             decimal.Decimal
	TotalSpent                decimal.Decimal
	TotalRemaining            decimal.Decimal
	OverallProgressPercentage decimal.Decimal
	IsOverOverallBudget       bool
}

// BudgetProgressEntry is one category's budget progress including the days
// remaining in the period.
type BudgetProgressEntry struct {
	BudgetProgressRow
	DaysLeftInMonth int
}

// GetBudgetProgressOutput represents the budget progress report.
type GetBudgetProgressOutput struct {
	Month                   int
	Year                    int
	OverallSummary          BudgetOverallSummary
	CategoryProgress        []BudgetProgressEntry
	CategoriesWithoutBudget []CategorySpend
}

// GetBudgetProgressUseCase assembles the budget progress report.
type GetBudgetProgressUseCase struct {
	analyticsRepo adapter.AnalyticsRepository
}

// NewGetBudgetProgressUseCase creates a new GetBudgetProgressUseCase instance.
func NewGetBudgetProgressUseCase(analyticsRepo adapter.AnalyticsRepository) *GetBudgetProgressUseCase {
	return &GetBudgetProgressUseCase{
		analyticsRepo: analyticsRepo,
	}
}

// Execute assembles the budget progress report for the requested period.
func (uc *GetBudgetProgressUseCase) Execute(ctx context.Context, input GetBudgetProgressInput) (*GetBudgetProgressOutput, error) {
	now := time.Now().UTC()
	month, year := input.Month, input.Year
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidPeriod,
			"month must be between 1 and 12 and year a four digit number",
			domainerror.ErrInvalidPeriod,
		)
	}

	start, end := MonthBounds(month, year, time.UTC)

	rows, err := uc.analyticsRepo.TransactionRows(ctx, input.UserID, &start, &end)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	budgets, err := uc.analyticsRepo.BudgetRows(ctx, input.UserID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	progress := BudgetProgress(budgets, rows)
	daysLeft := DaysLeftInMonth(month, year, now)

	overall := BudgetOverallSummary{
		TotalBudgeted:             decimal.Zero,
		TotalSpent:                decimal.Zero,
		TotalRemaining:            decimal.Zero,
		OverallProgressPercentage: decimal.Zero,
	}
	entries := make([]BudgetProgressEntry, 0, len(progress))
	for _, row := range progress {
		overall.TotalBudgeted = overall.TotalBudgeted.Add(row.BudgetAmount)
		overall.TotalSpent = overall.TotalSpent.Add(row.SpentAmount)
		entries = append(entries, BudgetProgressEntry{
			BudgetProgressRow: row,
			DaysLeftInMonth:   daysLeft,
		})
	}
	overall.TotalRemaining = overall.TotalBudgeted.Sub(overall.TotalSpent)
	if overall.TotalBudgeted.IsPositive() {
		overall.OverallProgressPercentage = overall.TotalSpent.Div(overall.TotalBudgeted).Mul(oneHundred)
	}
	overall.IsOverOverallBudget = overall.TotalSpent.GreaterThan(overall.TotalBudgeted) && overall.TotalBudgeted.IsPositive()

	return &GetBudgetProgressOutput{
		Month:                   month,
		Year:                    year,
		OverallSummary:          overall,
		CategoryProgress:        entries,
		CategoriesWithoutBudget: CategoriesWithoutBudget(rows, budgets),
	}, nil
}

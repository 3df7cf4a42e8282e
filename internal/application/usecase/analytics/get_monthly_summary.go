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

// GetMonthlySummaryInput represents the input for the monthly summary report.
// A zero Year means the current year.
type GetMonthlySummaryInput struct {
	UserID uuid.UUID
	Year   int
}

// GetMonthlySummaryOutput represents the monthly summary report. Monthly
// always holds twelve rows, one per calendar month.
type GetMonthlySummaryOutput struct {
	Year    int
	Monthly []MonthlyRow
}

// GetMonthlySummaryUseCase assembles the per-month summary for a year.
type GetMonthlySummaryUseCase struct {
	analyticsRepo adapter.AnalyticsRepository
}

// NewGetMonthlySummaryUseCase creates a new GetMonthlySummaryUseCase instance.
func NewGetMonthlySummaryUseCase(analyticsRepo adapter.AnalyticsRepository) *GetMonthlySummaryUseCase {
	return &GetMonthlySummaryUseCase{
		analyticsRepo: analyticsRepo,
	}
}

// Execute assembles the monthly summary for the requested year.
func (uc *GetMonthlySummaryUseCase) Execute(ctx context.Context, input GetMonthlySummaryInput) (*GetMonthlySummaryOutput, error) {
	year := input.Year
	if year == 0 {
		year = time.Now().UTC().Year()
	}
	if year < 1 || year > 9999 {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidYear,
			"year must be a four digit number",
			domainerror.ErrInvalidYear,
		)
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0).Add(-time.Nanosecond)

	rows, err := uc.analyticsRepo.TransactionRows(ctx, input.UserID, &start, &end)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return &GetMonthlySummaryOutput{
		Year:    year,
		Monthly: MonthlySeries(rows, year),
	}, nil
}

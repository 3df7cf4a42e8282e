// Package analytics contains report use cases.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mos3c/budget-guy/internal/application/adapter"
	"github.com/mos3c/budget-guy/internal/domain/entity"
)

// TopSpendingLimit is how many expense categories the dashboard highlights.
const TopSpendingLimit = 5

// RecentTransactionsLimit is how many recent transactions the dashboard shows.
const RecentTransactionsLimit = 5

// GetDashboardInput represents the input for the dashboard report.
type GetDashboardInput struct {
	UserID uuid.UUID
}

// OverallSummary aggregates the user's full history and portfolio.
type OverallSummary struct {
	TotalBalance      decimal.Decimal
	TotalInvested     decimal.Decimal
	PortfolioValue    decimal.Decimal
	PortfolioGainLoss decimal.Decimal
}

// GetDashboardOutput represents the dashboard report.
type GetDashboardOutput struct {
	Month                 int
	Year                  int
	CurrentMonthSummary   Totals
	OverallSummary        OverallSummary
	TopSpendingCategories []CategoryTotal
	RecentTransactions    []adapter.TransactionRow
	BudgetProgress        []BudgetProgressRow
}

// GetDashboardUseCase assembles the dashboard report.
type GetDashboardUseCase struct {
	analyticsRepo  adapter.AnalyticsRepository
	investmentRepo adapter.InvestmentRepository
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	analyticsRepo adapter.AnalyticsRepository,
	investmentRepo adapter.InvestmentRepository,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		analyticsRepo:  analyticsRepo,
		investmentRepo: investmentRepo,
	}
}

// Execute assembles the dashboard from per-request snapshots.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	now := time.Now().UTC()
	month, year := int(now.Month()), now.Year()
	monthStart, monthEnd := MonthBounds(month, year, time.UTC)

	monthRows, err := uc.analyticsRepo.TransactionRows(ctx, input.UserID, &monthStart, &monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load current month transactions: %w", err)
	}

	allRows, err := uc.analyticsRepo.TransactionRows(ctx, input.UserID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	recentRows, err := uc.analyticsRepo.RecentTransactionRows(ctx, input.UserID, RecentTransactionsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}

	budgets, err := uc.analyticsRepo.BudgetRows(ctx, input.UserID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	investments, err := uc.investmentRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments: %w", err)
	}

	portfolio, _ := InvestmentPerformance(investments)

	return &GetDashboardOutput{
		Month:               month,
		Year:                year,
		CurrentMonthSummary: MonthlyTotals(monthRows),
		OverallSummary: OverallSummary{
			TotalBalance:      NetBalance(allRows),
			TotalInvested:     portfolio.TotalInvested,
			PortfolioValue:    portfolio.TotalCurrentValue,
			PortfolioGainLoss: portfolio.TotalProfitLoss,
		},
		TopSpendingCategories: TopCategories(monthRows, entity.TransactionTypeExpense, TopSpendingLimit),
		RecentTransactions:    recentRows,
		BudgetProgress:        BudgetProgress(budgets, monthRows),
	}, nil
}

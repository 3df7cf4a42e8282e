// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/mos3c/budget-guy/internal/application/usecase/analytics"
)

// CategoryAmountResponse is a (category, amount) pair in report responses.
type CategoryAmountResponse struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// CurrentMonthSummaryResponse summarizes the current month on the dashboard.
type CurrentMonthSummaryResponse struct {
	Income    float64 `json:"income"`
	Expenses  float64 `json:"expenses"`
	NetIncome float64 `json:"net_income"`
	Month     int     `json:"month"`
	Year      int     `json:"year"`
}

// OverallSummaryResponse summarizes the user's full history and portfolio.
type OverallSummaryResponse struct {
	TotalBalance      float64 `json:"total_balance"`
	TotalInvested     float64 `json:"total_invested"`
	PortfolioValue    float64 `json:"portfolio_value"`
	PortfolioGainLoss float64 `json:"portfolio_gain_loss"`
}

// RecentTransactionResponse is a transaction row on the dashboard.
type RecentTransactionResponse struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

// DashboardBudgetProgressResponse is one budget's progress on the dashboard.
type DashboardBudgetProgressResponse struct {
	Category           string  `json:"category"`
	Budgeted           float64 `json:"budgeted"`
	Spent              float64 `json:"spent"`
	Remaining          float64 `json:"remaining"`
	ProgressPercentage float64 `json:"progress_percentage"`
	IsOverBudget       bool    `json:"is_over_budget"`
}

// DashboardResponse represents the dashboard report.
type DashboardResponse struct {
	CurrentMonthSummary   CurrentMonthSummaryResponse       `json:"current_month_summary"`
	OverallSummary        OverallSummaryResponse            `json:"overall_summary"`
	TopSpendingCategories []CategoryAmountResponse          `json:"top_spending_categories"`
	RecentTransactions    []RecentTransactionResponse       `json:"recent_transactions"`
	BudgetProgress        []DashboardBudgetProgressResponse `json:"budget_progress"`
}

// ToDashboardResponse converts the dashboard report to a response.
func ToDashboardResponse(output *analytics.GetDashboardOutput) DashboardResponse {
	top := make([]CategoryAmountResponse, len(output.TopSpendingCategories))
	for i, entry := range output.TopSpendingCategories {
		top[i] = CategoryAmountResponse{
			Category: entry.CategoryName,
			Amount:   money(entry.Total),
		}
	}

	recent := make([]RecentTransactionResponse, len(output.RecentTransactions))
	for i, row := range output.RecentTransactions {
		recent[i] = RecentTransactionResponse{
			ID:          row.ID.String(),
			Amount:      money(row.Amount),
			Type:        string(row.Type),
			Category:    row.CategoryName,
			Description: row.Description,
			Date:        row.Date.Format(dateLayout),
		}
	}

	progress := make([]DashboardBudgetProgressResponse, len(output.BudgetProgress))
	for i, row := range output.BudgetProgress {
		progress[i] = DashboardBudgetProgressResponse{
			Category:           row.CategoryName,
			Budgeted:           money(row.BudgetAmount),
			Spent:              money(row.SpentAmount),
			Remaining:          money(row.RemainingAmount),
			ProgressPercentage: money(row.ProgressPercentage),
			IsOverBudget:       row.IsOverBudget,
		}
	}

	return DashboardResponse{
		CurrentMonthSummary: CurrentMonthSummaryResponse{
			Income:    money(output.CurrentMonthSummary.Income),
			Expenses:  money(output.CurrentMonthSummary.Expenses),
			NetIncome: money(output.CurrentMonthSummary.Net),
			Month:     output.Month,
			Year:      output.Year,
		},
		OverallSummary: OverallSummaryResponse{
			TotalBalance:      money(output.OverallSummary.TotalBalance),
			TotalInvested:     money(output.OverallSummary.TotalInvested),
			PortfolioValue:    money(output.OverallSummary.PortfolioValue),
			PortfolioGainLoss: money(output.OverallSummary.PortfolioGainLoss),
		},
		TopSpendingCategories: top,
		RecentTransactions:    recent,
		BudgetProgress:        progress,
	}
}

// MonthlySummaryRowResponse is one month in the yearly summary.
type MonthlySummaryRowResponse struct {
	Month     int     `json:"month"`
	Income    float64 `json:"income"`
	Expenses  float64 `json:"expenses"`
	NetIncome float64 `json:"net_income"`
}

// MonthlySummaryResponse represents the monthly summary report.
type MonthlySummaryResponse struct {
	Year           int                         `json:"year"`
	MonthlySummary []MonthlySummaryRowResponse `json:"monthly_summary"`
}

// ToMonthlySummaryResponse converts the monthly summary report to a response.
func ToMonthlySummaryResponse(output *analytics.GetMonthlySummaryOutput) MonthlySummaryResponse {
	rows := make([]MonthlySummaryRowResponse, len(output.Monthly))
	for i, row := range output.Monthly {
		rows[i] = MonthlySummaryRowResponse{
			Month:     row.Month,
			Income:    money(row.Income),
			Expenses:  money(row.Expenses),
			NetIncome: money(row.NetIncome),
		}
	}
	return MonthlySummaryResponse{
		Year:           output.Year,
		MonthlySummary: rows,
	}
}

// DateRangeResponse echoes the requested date bounds.
type DateRangeResponse struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// CategoryBreakdownResponse represents the category breakdown report.
type CategoryBreakdownResponse struct {
	DateRange          DateRangeResponse        `json:"date_range"`
	IncomeByCategory   []CategoryAmountResponse `json:"income_by_category"`
	ExpensesByCategory []CategoryAmountResponse `json:"expenses_by_category"`
}

// ToCategoryBreakdownResponse converts the breakdown report to a response.
func ToCategoryBreakdownResponse(output *analytics.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	response := CategoryBreakdownResponse{
		IncomeByCategory:   toCategoryAmounts(output.IncomeByCategory),
		ExpensesByCategory: toCategoryAmounts(output.ExpensesByCategory),
	}
	if output.StartDate != nil {
		start := output.StartDate.Format(dateLayout)
		response.DateRange.StartDate = &start
	}
	if output.EndDate != nil {
		end := output.EndDate.Format(dateLayout)
		response.DateRange.EndDate = &end
	}
	return response
}

func toCategoryAmounts(totals []analytics.CategoryTotal) []CategoryAmountResponse {
	result := make([]CategoryAmountResponse, len(totals))
	for i, entry := range totals {
		result[i] = CategoryAmountResponse{
			Category: entry.CategoryName,
			Amount:   money(entry.Total),
		}
	}
	return result
}

// PortfolioSummaryResponse summarizes the whole portfolio.
type PortfolioSummaryResponse struct {
	TotalInvested           float64 `json:"total_invested"`
	TotalCurrentValue       float64 `json:"total_current_value"`
	TotalProfitLoss         float64 `json:"total_profit_loss"`
	OverallReturnPercentage float64 `json:"overall_return_percentage"`
}

// TypePerformanceResponse aggregates investments of one type.
type TypePerformanceResponse struct {
	Type              string  `json:"type"`
	Count             int     `json:"count"`
	TotalInvested     float64 `json:"total_invested"`
	TotalCurrentValue float64 `json:"total_current_value"`
	ProfitLoss        float64 `json:"profit_loss"`
	ReturnPercentage  float64 `json:"return_percentage"`
}

// InvestmentPerformanceResponse represents the investment performance report.
type InvestmentPerformanceResponse struct {
	PortfolioSummary      PortfolioSummaryResponse  `json:"portfolio_summary"`
	IndividualInvestments []InvestmentResponse      `json:"individual_investments"`
	PerformanceByType     []TypePerformanceResponse `json:"performance_by_type"`
}

// ToInvestmentPerformanceResponse converts the performance report to a response.
func ToInvestmentPerformanceResponse(output *analytics.GetInvestmentPerformanceOutput) InvestmentPerformanceResponse {
	individual := make([]InvestmentResponse, len(output.IndividualInvestments))
	for i, investment := range output.IndividualInvestments {
		individual[i] = ToInvestmentResponse(investment)
	}

	byType := make([]TypePerformanceResponse, len(output.PerformanceByType))
	for i, entry := range output.PerformanceByType {
		byType[i] = TypePerformanceResponse{
			Type:              string(entry.Type),
			Count:             entry.Count,
			TotalInvested:     money(entry.TotalInvested),
			TotalCurrentValue: money(entry.TotalCurrentValue),
			ProfitLoss:        money(entry.ProfitLoss),
			ReturnPercentage:  money(entry.ReturnPercentage),
		}
	}

	return InvestmentPerformanceResponse{
		PortfolioSummary: PortfolioSummaryResponse{
			TotalInvested:           money(output.PortfolioSummary.TotalInvested),
			TotalCurrentValue:       money(output.PortfolioSummary.TotalCurrentValue),
			TotalProfitLoss:         money(output.PortfolioSummary.TotalProfitLoss),
			OverallReturnPercentage: money(output.PortfolioSummary.OverallReturnPercentage),
		},
		IndividualInvestments: individual,
		PerformanceByType:     byType,
	}
}

// PeriodResponse identifies a (month, year) pair.
type PeriodResponse struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// BudgetOverallSummaryResponse aggregates all budgets of the period.
type BudgetOverallSummaryResponse struct {
	TotalBudgeted             float64 `json:"total_budgeted"`
	TotalSpent                float64 `json:"total_spent"`
	TotalRemaining            float64 `json:"total_remaining"`
	OverallProgressPercentage float64 `json:"overall_progress_percentage"`
	IsOverOverallBudget       bool    `json:"is_over_overall_budget"`
}

// CategoryProgressResponse is one category's budget progress.
type CategoryProgressResponse struct {
	CategoryID         string  `json:"category_id"`
	CategoryName       string  `json:"category_name"`
	BudgetedAmount     float64 `json:"budgeted_amount"`
	SpentAmount        float64 `json:"spent_amount"`
	RemainingAmount    float64 `json:"remaining_amount"`
	ProgressPercentage float64 `json:"progress_percentage"`
	IsOverBudget       bool    `json:"is_over_budget"`
	DaysLeftInMonth    int     `json:"days_left_in_month"`
}

// CategoryWithoutBudgetResponse flags expense activity with no budget.
type CategoryWithoutBudgetResponse struct {
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	SpentAmount  float64 `json:"spent_amount"`
}

// BudgetProgressResponse represents the budget progress report.
type BudgetProgressResponse struct {
	Period                  PeriodResponse                  `json:"period"`
	OverallSummary          BudgetOverallSummaryResponse    `json:"overall_summary"`
	CategoryProgress        []CategoryProgressResponse      `json:"category_progress"`
	CategoriesWithoutBudget []CategoryWithoutBudgetResponse `json:"categories_without_budget"`
}

// ToBudgetProgressResponse converts the budget progress report to a response.
func ToBudgetProgressResponse(output *analytics.GetBudgetProgressOutput) BudgetProgressResponse {
	progress := make([]CategoryProgressResponse, len(output.CategoryProgress))
	for i, entry := range output.CategoryProgress {
		progress[i] = CategoryProgressResponse{
			CategoryID:         entry.CategoryID.String(),
			CategoryName:       entry.CategoryName,
			BudgetedAmount:     money(entry.BudgetAmount),
			SpentAmount:        money(entry.SpentAmount),
			RemainingAmount:    money(entry.RemainingAmount),
			ProgressPercentage: money(entry.ProgressPercentage),
			IsOverBudget:       entry.IsOverBudget,
			DaysLeftInMonth:    entry.DaysLeftInMonth,
		}
	}

	without := make([]CategoryWithoutBudgetResponse, len(output.CategoriesWithoutBudget))
	for i, entry := range output.CategoriesWithoutBudget {
		without[i] = CategoryWithoutBudgetResponse{
			CategoryID:   entry.CategoryID.String(),
			CategoryName: entry.CategoryName,
			SpentAmount:  money(entry.SpentAmount),
		}
	}

	return BudgetProgressResponse{
		Period: PeriodResponse{
			Month: output.Month,
			Year:  output.Year,
		},
		OverallSummary: BudgetOverallSummaryResponse{
			TotalBudgeted:             money(output.OverallSummary.TotalBudgeted),
			TotalSpent:                money(output.OverallSummary.TotalSpent),
			TotalRemaining:            money(output.OverallSummary.TotalRemaining),
			OverallProgressPercentage: money(output.OverallSummary.OverallProgressPercentage),
			IsOverOverallBudget:       output.OverallSummary.IsOverOverallBudget,
		},
		CategoryProgress:        progress,
		CategoriesWithoutBudget: without,
	}
}

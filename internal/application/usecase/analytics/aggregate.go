// Package analytics contains report use cases. All aggregation is done by
// pure functions over snapshot slices: deterministic, zero-valued on empty
// input, and unrounded. Rounding to two decimal places happens only when
// results are serialized.
package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mos3c/budget-guy/internal/application/adapter"
	"github.com/mos3c/budget-guy/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// Totals holds income and expense sums over a set of transactions.
type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// CategoryTotal is a per-category transaction sum.
type CategoryTotal struct {
	CategoryID   uuid.UUID
	CategoryName string
	Total        decimal.Decimal
}

// MonthlyRow is one month of a yearly series.
type MonthlyRow struct {
	Month     int
	Income    decimal.Decimal
	Expenses  decimal.Decimal
	NetIncome decimal.Decimal
}

// BudgetProgressRow describes spending against one budget.
type BudgetProgressRow struct {
	BudgetID           uuid.UUID
	CategoryID         uuid.UUID
	CategoryName       string
	BudgetAmount       decimal.Decimal
	SpentAmount        decimal.Decimal
	RemainingAmount    decimal.Decimal
	ProgressPercentage decimal.Decimal
	IsOverBudget       bool
}

// CategorySpend describes expense activity in a category that has no budget.
type CategorySpend struct {
	CategoryID   uuid.UUID
	CategoryName string
	SpentAmount  decimal.Decimal
}

// PortfolioSummary aggregates a whole investment portfolio.
type PortfolioSummary struct {
	TotalInvested           decimal.Decimal
	TotalCurrentValue       decimal.Decimal
	TotalProfitLoss         decimal.Decimal
	OverallReturnPercentage decimal.Decimal
}

// TypePerformance aggregates investments of a single type.
type TypePerformance struct {
	Type              entity.InvestmentType
	Count             int
	TotalInvested     decimal.Decimal
	TotalCurrentValue decimal.Decimal
	ProfitLoss        decimal.Decimal
	ReturnPercentage  decimal.Decimal
}

// MonthlyTotals sums income and expenses over the rows.
func MonthlyTotals(rows []adapter.TransactionRow) Totals {
	t := Totals{Income: decimal.Zero, Expenses: decimal.Zero, Net: decimal.Zero}
	for _, row := range rows {
		switch row.Type {
		case entity.TransactionTypeIncome:
			t.Income = t.Income.Add(row.Amount)
		case entity.TransactionTypeExpense:
			t.Expenses = t.Expenses.Add(row.Amount)
		}
	}
	t.Net = t.Income.Sub(t.Expenses)
	return t
}

// NetBalance returns total income minus total expenses over the rows.
func NetBalance(rows []adapter.TransactionRow) decimal.Decimal {
	return MonthlyTotals(rows).Net
}

// TopCategories groups rows of the given type by category and returns up to
// limit entries ordered by total descending, category name ascending on ties.
// A limit of zero or less means no limit.
func TopCategories(rows []adapter.TransactionRow, txType entity.TransactionType, limit int) []CategoryTotal {
	totals := make(map[uuid.UUID]*CategoryTotal)
	for _, row := range rows {
		if row.Type != txType {
			continue
		}
		entry, ok := totals[row.CategoryID]
		if !ok {
			entry = &CategoryTotal{
				CategoryID:   row.CategoryID,
				CategoryName: row.CategoryName,
				Total:        decimal.Zero,
			}
			totals[row.CategoryID] = entry
		}
		entry.Total = entry.Total.Add(row.Amount)
	}

	result := make([]CategoryTotal, 0, len(totals))
	for _, entry := range totals {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		cmp := result[i].Total.Cmp(result[j].Total)
		if cmp != 0 {
			return cmp > 0
		}
		return result[i].CategoryName < result[j].CategoryName
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// CategoryBreakdown splits the rows into per-category income and expense
// totals, each ordered by total descending.
func CategoryBreakdown(rows []adapter.TransactionRow) (income, expenses []CategoryTotal) {
	return TopCategories(rows, entity.TransactionTypeIncome, 0),
		TopCategories(rows, entity.TransactionTypeExpense, 0)
}

// MonthlySeries produces exactly twelve rows for the year, one per calendar
// month, with zero totals for months that have no transactions. Rows whose
// date falls outside the year are ignored.
func MonthlySeries(rows []adapter.TransactionRow, year int) []MonthlyRow {
	series := make([]MonthlyRow, 12)
	for i := range series {
		series[i] = MonthlyRow{
			Month:     i + 1,
			Income:    decimal.Zero,
			Expenses:  decimal.Zero,
			NetIncome: decimal.Zero,
		}
	}

	for _, row := range rows {
		if row.Date.Year() != year {
			continue
		}
		m := &series[int(row.Date.Month())-1]
		switch row.Type {
		case entity.TransactionTypeIncome:
			m.Income = m.Income.Add(row.Amount)
		case entity.TransactionTypeExpense:
			m.Expenses = m.Expenses.Add(row.Amount)
		}
	}

	for i := range series {
		series[i].NetIncome = series[i].Income.Sub(series[i].Expenses)
	}
	return series
}

// BudgetProgress computes spending against each budget from the expense rows.
// Remaining may go negative; the progress percentage is zero when the limit
// is not positive.
func BudgetProgress(budgets []adapter.BudgetRow, rows []adapter.TransactionRow) []BudgetProgressRow {
	spentByCategory := make(map[uuid.UUID]decimal.Decimal)
	for _, row := range rows {
		if row.Type != entity.TransactionTypeExpense {
			continue
		}
		spentByCategory[row.CategoryID] = spentByCategory[row.CategoryID].Add(row.Amount)
	}

	result := make([]BudgetProgressRow, 0, len(budgets))
	for _, budget := range budgets {
		spent, ok := spentByCategory[budget.CategoryID]
		if !ok {
			spent = decimal.Zero
		}

		progress := decimal.Zero
		if budget.MonthlyLimit.IsPositive() {
			progress = spent.Div(budget.MonthlyLimit).Mul(oneHundred)
		}

		result = append(result, BudgetProgressRow{
			BudgetID:           budget.BudgetID,
			CategoryID:         budget.CategoryID,
			CategoryName:       budget.CategoryName,
			BudgetAmount:       budget.MonthlyLimit,
			SpentAmount:        spent,
			RemainingAmount:    budget.MonthlyLimit.Sub(spent),
			ProgressPercentage: progress,
			IsOverBudget:       spent.GreaterThan(budget.MonthlyLimit),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CategoryName < result[j].CategoryName
	})
	return result
}

// CategoriesWithoutBudget lists categories with expense activity in the rows
// that have no budget in the given set, ordered by category name.
func CategoriesWithoutBudget(rows []adapter.TransactionRow, budgets []adapter.BudgetRow) []CategorySpend {
	budgeted := make(map[uuid.UUID]bool, len(budgets))
	for _, budget := range budgets {
		budgeted[budget.CategoryID] = true
	}

	spent := make(map[uuid.UUID]*CategorySpend)
	for _, row := range rows {
		if row.Type != entity.TransactionTypeExpense || budgeted[row.CategoryID] {
			continue
		}
		entry, ok := spent[row.CategoryID]
		if !ok {
			entry = &CategorySpend{
				CategoryID:   row.CategoryID,
				CategoryName: row.CategoryName,
				SpentAmount:  decimal.Zero,
			}
			spent[row.CategoryID] = entry
		}
		entry.SpentAmount = entry.SpentAmount.Add(row.Amount)
	}

	result := make([]CategorySpend, 0, len(spent))
	for _, entry := range spent {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CategoryName < result[j].CategoryName
	})
	return result
}

// InvestmentPerformance aggregates the portfolio and breaks it down by
// investment type. The per-type slice is ordered by type name.
func InvestmentPerformance(investments []*entity.Investment) (PortfolioSummary, []TypePerformance) {
	summary := PortfolioSummary{
		TotalInvested:           decimal.Zero,
		TotalCurrentValue:       decimal.Zero,
		TotalProfitLoss:         decimal.Zero,
		OverallReturnPercentage: decimal.Zero,
	}

	byType := make(map[entity.InvestmentType]*TypePerformance)
	for _, inv := range investments {
		summary.TotalInvested = summary.TotalInvested.Add(inv.AmountInvested)
		summary.TotalCurrentValue = summary.TotalCurrentValue.Add(inv.CurrentValue)

		entry, ok := byType[inv.Type]
		if !ok {
			entry = &TypePerformance{
				Type:              inv.Type,
				TotalInvested:     decimal.Zero,
				TotalCurrentValue: decimal.Zero,
			}
			byType[inv.Type] = entry
		}
		entry.Count++
		entry.TotalInvested = entry.TotalInvested.Add(inv.AmountInvested)
		entry.TotalCurrentValue = entry.TotalCurrentValue.Add(inv.CurrentValue)
	}

	summary.TotalProfitLoss = summary.TotalCurrentValue.Sub(summary.TotalInvested)
	if summary.TotalInvested.IsPositive() {
		summary.OverallReturnPercentage = summary.TotalProfitLoss.Div(summary.TotalInvested).Mul(oneHundred)
	}

	result := make([]TypePerformance, 0, len(byType))
	for _, entry := range byType {
		entry.ProfitLoss = entry.TotalCurrentValue.Sub(entry.TotalInvested)
		if entry.TotalInvested.IsPositive() {
			entry.ReturnPercentage = entry.ProfitLoss.Div(entry.TotalInvested).Mul(oneHundred)
		} else {
			entry.ReturnPercentage = decimal.Zero
		}
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Type < result[j].Type
	})
	return summary, result
}

// DaysLeftInMonth returns the number of days remaining in the given period
// counted from today, or zero when the period is not the current one.
func DaysLeftInMonth(month, year int, today time.Time) int {
	if today.Year() != year || int(today.Month()) != month {
		return 0
	}
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, today.Location()).Day()
	return daysInMonth - today.Day()
}

// MonthBounds returns the inclusive first and last instants of the period.
func MonthBounds(month, year int, loc *time.Location) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

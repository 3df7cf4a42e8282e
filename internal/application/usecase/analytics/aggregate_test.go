// Package analytics contains report use cases.
package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mos3c/budget-guy/internal/application/adapter"
	"github.com/mos3c/budget-guy/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func expenseRow(categoryID uuid.UUID, name, amount string, date time.Time) adapter.TransactionRow {
	return adapter.TransactionRow{
		ID:           uuid.New(),
		CategoryID:   categoryID,
		CategoryName: name,
		Type:         entity.TransactionTypeExpense,
		Amount:       dec(amount),
		Date:         date,
	}
}

func incomeRow(categoryID uuid.UUID, name, amount string, date time.Time) adapter.TransactionRow {
	row := expenseRow(categoryID, name, amount, date)
	row.Type = entity.TransactionTypeIncome
	return row
}

func TestMonthlyTotals(t *testing.T) {
	catIncome := uuid.New()
	catExpense := uuid.New()
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("empty input yields zeros", func(t *testing.T) {
		totals := MonthlyTotals(nil)
		if !totals.Income.IsZero() || !totals.Expenses.IsZero() || !totals.Net.IsZero() {
			t.Errorf("expected all zeros, got %+v", totals)
		}
	})

	t.Run("sums income and expenses separately", func(t *testing.T) {
		totals := MonthlyTotals([]adapter.TransactionRow{
			incomeRow(catIncome, "Salary", "3000", date),
			expenseRow(catExpense, "Groceries", "120.50", date),
			expenseRow(catExpense, "Groceries", "79.50", date),
		})
		if !totals.Income.Equal(dec("3000")) {
			t.Errorf("expected income 3000, got %s", totals.Income)
		}
		if !totals.Expenses.Equal(dec("200")) {
			t.Errorf("expected expenses 200, got %s", totals.Expenses)
		}
		if !totals.Net.Equal(dec("2800")) {
			t.Errorf("expected net 2800, got %s", totals.Net)
		}
	})

	t.Run("net may be negative", func(t *testing.T) {
		totals := MonthlyTotals([]adapter.TransactionRow{
			incomeRow(catIncome, "Salary", "100", date),
			expenseRow(catExpense, "Rent", "900", date),
		})
		if !totals.Net.Equal(dec("-800")) {
			t.Errorf("expected net -800, got %s", totals.Net)
		}
	})
}

func TestTopCategories(t *testing.T) {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	groceries := uuid.New()
	rent := uuid.New()
	fun := uuid.New()
	travel := uuid.New()

	rows := []adapter.TransactionRow{
		expenseRow(groceries, "Groceries", "250", date),
		expenseRow(rent, "Rent", "1200", date),
		expenseRow(fun, "Entertainment", "250", date),
		expenseRow(travel, "Travel", "50", date),
		incomeRow(uuid.New(), "Salary", "5000", date),
	}

	t.Run("orders by total desc with name tie-break", func(t *testing.T) {
		top := TopCategories(rows, entity.TransactionTypeExpense, 5)
		if len(top) != 4 {
			t.Fatalf("expected 4 categories, got %d", len(top))
		}
		wantOrder := []string{"Rent", "Entertainment", "Groceries", "Travel"}
		for i, want := range wantOrder {
			if top[i].CategoryName != want {
				t.Errorf("position %d: expected %s, got %s", i, want, top[i].CategoryName)
			}
		}
	})

	t.Run("respects the limit", func(t *testing.T) {
		top := TopCategories(rows, entity.TransactionTypeExpense, 2)
		if len(top) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(top))
		}
		if top[0].CategoryName != "Rent" {
			t.Errorf("expected Rent first, got %s", top[0].CategoryName)
		}
	})

	t.Run("ignores the other transaction type", func(t *testing.T) {
		top := TopCategories(rows, entity.TransactionTypeIncome, 5)
		if len(top) != 1 || top[0].CategoryName != "Salary" {
			t.Fatalf("expected only Salary, got %+v", top)
		}
	})

	t.Run("empty input yields empty result", func(t *testing.T) {
		if top := TopCategories(nil, entity.TransactionTypeExpense, 5); len(top) != 0 {
			t.Errorf("expected no categories, got %d", len(top))
		}
	})
}

func TestMonthlySeries(t *testing.T) {
	cat := uuid.New()
	salary := uuid.New()

	rows := []adapter.TransactionRow{
		incomeRow(salary, "Salary", "3000", time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)),
		expenseRow(cat, "Rent", "1000", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		expenseRow(cat, "Rent", "1000", time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)),
		// Outside the requested year, must be ignored
		expenseRow(cat, "Rent", "999", time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)),
	}

	series := MonthlySeries(rows, 2024)
	if len(series) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(series))
	}

	if series[0].Month != 1 || !series[0].Income.Equal(dec("3000")) || !series[0].Expenses.Equal(dec("1000")) || !series[0].NetIncome.Equal(dec("2000")) {
		t.Errorf("unexpected january row: %+v", series[0])
	}
	if !series[11].Expenses.Equal(dec("1000")) || !series[11].NetIncome.Equal(dec("-1000")) {
		t.Errorf("unexpected december row: %+v", series[11])
	}
	for i := 1; i < 11; i++ {
		if !series[i].Income.IsZero() || !series[i].Expenses.IsZero() {
			t.Errorf("expected zero totals for month %d, got %+v", i+1, series[i])
		}
	}
}

func TestBudgetProgress(t *testing.T) {
	groceries := uuid.New()
	rent := uuid.New()
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("computes spent, remaining and percentage", func(t *testing.T) {
		budgets := []adapter.BudgetRow{
			{BudgetID: uuid.New(), CategoryID: groceries, CategoryName: "Groceries", MonthlyLimit: dec("500"), Month: 6, Year: 2024},
		}
		rows := []adapter.TransactionRow{
			expenseRow(groceries, "Groceries", "120", date),
			expenseRow(groceries, "Groceries", "80", date),
		}

		progress := BudgetProgress(budgets, rows)
		if len(progress) != 1 {
			t.Fatalf("expected 1 row, got %d", len(progress))
		}
		row := progress[0]
		if !row.SpentAmount.Equal(dec("200")) {
			t.Errorf("expected spent 200, got %s", row.SpentAmount)
		}
		if !row.RemainingAmount.Equal(dec("300")) {
			t.Errorf("expected remaining 300, got %s", row.RemainingAmount)
		}
		if !row.ProgressPercentage.Equal(dec("40")) {
			t.Errorf("expected progress 40, got %s", row.ProgressPercentage)
		}
		if row.IsOverBudget {
			t.Error("expected budget not to be over")
		}
	})

	t.Run("remaining may go negative when over budget", func(t *testing.T) {
		budgets := []adapter.BudgetRow{
			{BudgetID: uuid.New(), CategoryID: rent, CategoryName: "Rent", MonthlyLimit: dec("1000"), Month: 6, Year: 2024},
		}
		rows := []adapter.TransactionRow{
			expenseRow(rent, "Rent", "1250", date),
		}

		progress := BudgetProgress(budgets, rows)
		row := progress[0]
		if !row.RemainingAmount.Equal(dec("-250")) {
			t.Errorf("expected remaining -250, got %s", row.RemainingAmount)
		}
		if !row.IsOverBudget {
			t.Error("expected budget to be over")
		}
		if !row.ProgressPercentage.Equal(dec("125")) {
			t.Errorf("expected progress 125, got %s", row.ProgressPercentage)
		}
	})

	t.Run("budget with no spending reports zero spent", func(t *testing.T) {
		budgets := []adapter.BudgetRow{
			{BudgetID: uuid.New(), CategoryID: groceries, CategoryName: "Groceries", MonthlyLimit: dec("500"), Month: 6, Year: 2024},
		}

		progress := BudgetProgress(budgets, nil)
		row := progress[0]
		if !row.SpentAmount.IsZero() || !row.RemainingAmount.Equal(dec("500")) || !row.ProgressPercentage.IsZero() {
			t.Errorf("unexpected row for unspent budget: %+v", row)
		}
	})

	t.Run("income rows never count as spending", func(t *testing.T) {
		budgets := []adapter.BudgetRow{
			{BudgetID: uuid.New(), CategoryID: groceries, CategoryName: "Groceries", MonthlyLimit: dec("500"), Month: 6, Year: 2024},
		}
		rows := []adapter.TransactionRow{
			incomeRow(groceries, "Groceries", "100", date),
		}

		progress := BudgetProgress(budgets, rows)
		if !progress[0].SpentAmount.IsZero() {
			t.Errorf("expected zero spent, got %s", progress[0].SpentAmount)
		}
	})
}

func TestCategoriesWithoutBudget(t *testing.T) {
	groceries := uuid.New()
	fun := uuid.New()
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	budgets := []adapter.BudgetRow{
		{BudgetID: uuid.New(), CategoryID: groceries, CategoryName: "Groceries", MonthlyLimit: dec("500"), Month: 6, Year: 2024},
	}
	rows := []adapter.TransactionRow{
		expenseRow(groceries, "Groceries", "100", date),
		expenseRow(fun, "Entertainment", "60", date),
		expenseRow(fun, "Entertainment", "40", date),
	}

	missing := CategoriesWithoutBudget(rows, budgets)
	if len(missing) != 1 {
		t.Fatalf("expected 1 category without budget, got %d", len(missing))
	}
	if missing[0].CategoryName != "Entertainment" {
		t.Errorf("expected Entertainment, got %s", missing[0].CategoryName)
	}
	if !missing[0].SpentAmount.Equal(dec("100")) {
		t.Errorf("expected spent 100, got %s", missing[0].SpentAmount)
	}
}

func TestInvestmentPerformance(t *testing.T) {
	userID := uuid.New()
	purchase := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("empty portfolio yields zeros", func(t *testing.T) {
		summary, byType := InvestmentPerformance(nil)
		if !summary.TotalInvested.IsZero() || !summary.TotalProfitLoss.IsZero() || !summary.OverallReturnPercentage.IsZero() {
			t.Errorf("expected zero summary, got %+v", summary)
		}
		if len(byType) != 0 {
			t.Errorf("expected no type rows, got %d", len(byType))
		}
	})

	t.Run("single investment gain", func(t *testing.T) {
		inv := entity.NewInvestment(userID, "VTI", entity.InvestmentTypeStocks, "", dec("1000"), dec("1200"), nil, purchase)
		summary, byType := InvestmentPerformance([]*entity.Investment{inv})

		if !summary.TotalProfitLoss.Equal(dec("200")) {
			t.Errorf("expected profit 200, got %s", summary.TotalProfitLoss)
		}
		if !summary.OverallReturnPercentage.Equal(dec("20")) {
			t.Errorf("expected return 20, got %s", summary.OverallReturnPercentage)
		}
		if len(byType) != 1 || byType[0].Type != entity.InvestmentTypeStocks || byType[0].Count != 1 {
			t.Fatalf("unexpected type breakdown: %+v", byType)
		}
		if !byType[0].ProfitLoss.Equal(dec("200")) {
			t.Errorf("expected type profit 200, got %s", byType[0].ProfitLoss)
		}
	})

	t.Run("summary profit equals sum of per-investment profit", func(t *testing.T) {
		investments := []*entity.Investment{
			entity.NewInvestment(userID, "VTI", entity.InvestmentTypeStocks, "", dec("1000"), dec("1200"), nil, purchase),
			entity.NewInvestment(userID, "BTC", entity.InvestmentTypeCrypto, "", dec("500"), dec("450"), nil, purchase),
			entity.NewInvestment(userID, "Wine", entity.InvestmentTypeOthers, "vintage wine", dec("300"), dec("330"), nil, purchase),
		}

		summary, _ := InvestmentPerformance(investments)

		sum := decimal.Zero
		for _, inv := range investments {
			sum = sum.Add(inv.ProfitLoss())
		}
		if !summary.TotalProfitLoss.Equal(sum) {
			t.Errorf("expected total profit %s, got %s", sum, summary.TotalProfitLoss)
		}
	})

	t.Run("zero invested amount yields zero return percentage", func(t *testing.T) {
		inv := entity.NewInvestment(userID, "Airdrop", entity.InvestmentTypeCrypto, "", dec("0"), dec("50"), nil, purchase)
		summary, byType := InvestmentPerformance([]*entity.Investment{inv})
		if !summary.OverallReturnPercentage.IsZero() {
			t.Errorf("expected zero return, got %s", summary.OverallReturnPercentage)
		}
		if !byType[0].ReturnPercentage.IsZero() {
			t.Errorf("expected zero type return, got %s", byType[0].ReturnPercentage)
		}
	})
}

func TestDaysLeftInMonth(t *testing.T) {
	tests := []struct {
		name  string
		month int
		year  int
		today time.Time
		want  int
	}{
		{
			name:  "leap year february",
			month: 2, year: 2024,
			today: time.Date(2024, 2, 20, 12, 0, 0, 0, time.UTC),
			want:  9,
		},
		{
			name:  "non-leap february",
			month: 2, year: 2023,
			today: time.Date(2023, 2, 20, 0, 0, 0, 0, time.UTC),
			want:  8,
		},
		{
			name:  "last day of month",
			month: 6, year: 2024,
			today: time.Date(2024, 6, 30, 23, 0, 0, 0, time.UTC),
			want:  0,
		},
		{
			name:  "different month returns zero",
			month: 5, year: 2024,
			today: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			want:  0,
		},
		{
			name:  "different year returns zero",
			month: 6, year: 2023,
			today: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysLeftInMonth(tt.month, tt.year, tt.today); got != tt.want {
				t.Errorf("DaysLeftInMonth(%d, %d) = %d, want %d", tt.month, tt.year, got, tt.want)
			}
		})
	}
}

func TestCategoryBreakdown(t *testing.T) {
	salary := uuid.New()
	freelance := uuid.New()
	rent := uuid.New()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := []adapter.TransactionRow{
		incomeRow(salary, "Salary", "3000", date),
		incomeRow(freelance, "Freelance", "500", date),
		expenseRow(rent, "Rent", "1200", date),
	}

	income, expenses := CategoryBreakdown(rows)
	if len(income) != 2 || len(expenses) != 1 {
		t.Fatalf("expected 2 income and 1 expense categories, got %d and %d", len(income), len(expenses))
	}
	if income[0].CategoryName != "Salary" {
		t.Errorf("expected Salary first, got %s", income[0].CategoryName)
	}
	if !expenses[0].Total.Equal(dec("1200")) {
		t.Errorf("expected expense total 1200, got %s", expenses[0].Total)
	}
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(2, 2024, time.UTC)
	if !start.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start: %s", start)
	}
	if end.Day() != 29 || end.Month() != time.February {
		t.Errorf("expected end on feb 29, got %s", end)
	}
}

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mos3c/budget-guy/internal/application/adapter"
	"github.com/mos3c/budget-guy/internal/domain/entity"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("invalid date %q: %v", value, err)
	}
	return date
}

// seedTransactions creates one income and two expense transactions for a
// user and returns the user ID along with both category IDs.
func seedTransactions(t *testing.T, repo adapter.TransactionRepository, categoryRepo adapter.CategoryRepository) (uuid.UUID, *entity.Category, *entity.Category) {
	t.Helper()
	ctx := context.Background()

	userID := uuid.New()
	groceries := entity.NewCategory(userID, "Groceries", entity.CategoryTypeExpense)
	salary := entity.NewCategory(userID, "Salary", entity.CategoryTypeIncome)
	for _, c := range []*entity.Category{groceries, salary} {
		if err := categoryRepo.Create(ctx, c); err != nil {
			t.Fatalf("failed to create category: %v", err)
		}
	}

	transactions := []*entity.Transaction{
		entity.NewTransaction(userID, salary.ID, entity.TransactionTypeIncome,
			decimal.RequireFromString("2000"), "paycheck", day(t, "2024-06-01")),
		entity.NewTransaction(userID, groceries.ID, entity.TransactionTypeExpense,
			decimal.RequireFromString("50.25"), "weekly shop", day(t, "2024-06-10")),
		entity.NewTransaction(userID, groceries.ID, entity.TransactionTypeExpense,
			decimal.RequireFromString("30"), "top-up shop", day(t, "2024-06-12")),
	}
	for _, txn := range transactions {
		if err := repo.Create(ctx, txn); err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}
	}

	return userID, groceries, salary
}

func TestTransactionRepository_FindByFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	categoryRepo := NewCategoryRepository(db)
	ctx := context.Background()

	userID, groceries, _ := seedTransactions(t, repo, categoryRepo)
	page := adapter.TransactionPagination{Page: 1, Limit: 20}

	t.Run("defaults to date descending", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: userID}, page)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 3 {
			t.Fatalf("expected total 3, got %d", result.Total)
		}
		first := result.Transactions[0].Transaction
		if !first.Date.Equal(day(t, "2024-06-12")) {
			t.Errorf("expected newest transaction first, got date %s", first.Date)
		}
	})

	t.Run("orders by amount ascending", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.TransactionFilter{
			UserID:         userID,
			OrderBy:        "amount",
			OrderAscending: true,
		}, page)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		amounts := make([]string, len(result.Transactions))
		for i, txn := range result.Transactions {
			amounts[i] = txn.Transaction.Amount.String()
		}
		if amounts[0] != "30" || amounts[2] != "2000" {
			t.Errorf("unexpected amount ordering: %v", amounts)
		}
	})

	t.Run("filters by type and date range", func(t *testing.T) {
		expense := entity.TransactionTypeExpense
		start := day(t, "2024-06-11")
		end := day(t, "2024-06-30")
		result, err := repo.FindByFilter(ctx, adapter.TransactionFilter{
			UserID:    userID,
			Type:      &expense,
			StartDate: &start,
			EndDate:   &end,
		}, page)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 1 {
			t.Fatalf("expected 1 transaction, got %d", result.Total)
		}
		if !result.Transactions[0].Transaction.Amount.Equal(decimal.RequireFromString("30")) {
			t.Errorf("expected the 30.00 transaction, got %s", result.Transactions[0].Transaction.Amount)
		}
	})

	t.Run("search matches category name case-insensitively", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.TransactionFilter{
			UserID: userID,
			Search: "GROCER",
		}, page)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 2 {
			t.Fatalf("expected 2 transactions, got %d", result.Total)
		}
	})

	t.Run("filters by category", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.TransactionFilter{
			UserID:     userID,
			CategoryID: &groceries.ID,
		}, page)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 2 {
			t.Fatalf("expected 2 transactions, got %d", result.Total)
		}
	})

	t.Run("paginates", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: userID},
			adapter.TransactionPagination{Page: 2, Limit: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Transactions) != 1 {
			t.Fatalf("expected 1 transaction on page 2, got %d", len(result.Transactions))
		}
		if result.TotalPages != 2 {
			t.Errorf("expected 2 pages, got %d", result.TotalPages)
		}
	})

	t.Run("preloads the category", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.TransactionFilter{
			UserID:     userID,
			CategoryID: &groceries.ID,
		}, page)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Transactions[0].Category == nil || result.Transactions[0].Category.Name != "Groceries" {
			t.Error("expected category to be preloaded")
		}
	})
}

func TestTransactionRepository_GetTotals(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	categoryRepo := NewCategoryRepository(db)
	ctx := context.Background()

	userID, _, _ := seedTransactions(t, repo, categoryRepo)

	t.Run("sums income and expenses over the filtered set", func(t *testing.T) {
		totals, err := repo.GetTotals(ctx, adapter.TransactionFilter{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !totals.IncomeTotal.Equal(decimal.RequireFromString("2000")) {
			t.Errorf("expected income 2000, got %s", totals.IncomeTotal)
		}
		if !totals.ExpenseTotal.Equal(decimal.RequireFromString("80.25")) {
			t.Errorf("expected expenses 80.25, got %s", totals.ExpenseTotal)
		}
		if !totals.NetTotal.Equal(decimal.RequireFromString("1919.75")) {
			t.Errorf("expected net 1919.75, got %s", totals.NetTotal)
		}
	})

	t.Run("empty set yields zeros", func(t *testing.T) {
		totals, err := repo.GetTotals(ctx, adapter.TransactionFilter{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !totals.IncomeTotal.IsZero() || !totals.ExpenseTotal.IsZero() || !totals.NetTotal.IsZero() {
			t.Errorf("expected zero totals, got %+v", totals)
		}
	})
}

func TestTransactionRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	categoryRepo := NewCategoryRepository(db)
	ctx := context.Background()

	userID, groceries, _ := seedTransactions(t, repo, categoryRepo)

	txn := entity.NewTransaction(userID, groceries.ID, entity.TransactionTypeExpense,
		decimal.RequireFromString("15"), "snacks", day(t, "2024-06-20"))
	if err := repo.Create(ctx, txn); err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}

	if err := repo.Delete(ctx, txn.ID); err != nil {
		t.Fatalf("failed to delete transaction: %v", err)
	}

	t.Run("deleted transactions disappear from listings", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: userID},
			adapter.TransactionPagination{Page: 1, Limit: 20})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 3 {
			t.Errorf("expected 3 transactions after delete, got %d", result.Total)
		}
	})

	t.Run("deleted transactions are excluded from totals", func(t *testing.T) {
		totals, err := repo.GetTotals(ctx, adapter.TransactionFilter{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !totals.ExpenseTotal.Equal(decimal.RequireFromString("80.25")) {
			t.Errorf("expected expenses 80.25, got %s", totals.ExpenseTotal)
		}
	})
}

package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mos3c/budget-guy/internal/application/adapter"
	"github.com/mos3c/budget-guy/internal/domain/entity"
	domainerror "github.com/mos3c/budget-guy/internal/domain/error"
)

func TestBudgetRepository_ExistsForPeriod(t *testing.T) {
	db := newTestDB(t)
	repo := NewBudgetRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	categoryID := uuid.New()
	limit := decimal.RequireFromString("500")

	budget := entity.NewBudget(userID, categoryID, limit, 6, 2024)
	if err := repo.Create(ctx, budget); err != nil {
		t.Fatalf("failed to create budget: %v", err)
	}

	t.Run("matches the same period", func(t *testing.T) {
		exists, err := repo.ExistsForPeriod(ctx, userID, categoryID, 6, 2024, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected a budget for 6/2024")
		}
	})

	t.Run("a different month does not match", func(t *testing.T) {
		exists, err := repo.ExistsForPeriod(ctx, userID, categoryID, 7, 2024, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected no budget for 7/2024")
		}
	})

	t.Run("excluded id is skipped", func(t *testing.T) {
		exists, err := repo.ExistsForPeriod(ctx, userID, categoryID, 6, 2024, &budget.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected the budget itself to be excluded")
		}
	})

	t.Run("a deleted budget does not block the period", func(t *testing.T) {
		if err := repo.Delete(ctx, budget.ID); err != nil {
			t.Fatalf("failed to delete budget: %v", err)
		}
		exists, err := repo.ExistsForPeriod(ctx, userID, categoryID, 6, 2024, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected deleted budget not to count")
		}
	})
}

func TestBudgetRepository_FindByFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewBudgetRepository(db)
	categoryRepo := NewCategoryRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	groceries := entity.NewCategory(userID, "Groceries", entity.CategoryTypeExpense)
	if err := categoryRepo.Create(ctx, groceries); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	limit := decimal.RequireFromString("500")
	june := entity.NewBudget(userID, groceries.ID, limit, 6, 2024)
	july := entity.NewBudget(userID, groceries.ID, limit, 7, 2024)
	lastYear := entity.NewBudget(userID, groceries.ID, limit, 12, 2023)
	for _, b := range []*entity.Budget{june, july, lastYear} {
		if err := repo.Create(ctx, b); err != nil {
			t.Fatalf("failed to create budget: %v", err)
		}
	}

	t.Run("orders by year then month descending and preloads the category", func(t *testing.T) {
		budgets, err := repo.FindByFilter(ctx, adapter.BudgetFilter{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(budgets) != 3 {
			t.Fatalf("expected 3 budgets, got %d", len(budgets))
		}
		if budgets[0].Budget.Month != 7 || budgets[1].Budget.Month != 6 || budgets[2].Budget.Month != 12 {
			t.Errorf("unexpected ordering: %d, %d, %d",
				budgets[0].Budget.Month, budgets[1].Budget.Month, budgets[2].Budget.Month)
		}
		if budgets[0].Category == nil || budgets[0].Category.Name != "Groceries" {
			t.Error("expected category to be preloaded")
		}
	})

	t.Run("filters by period", func(t *testing.T) {
		month, year := 6, 2024
		budgets, err := repo.FindByFilter(ctx, adapter.BudgetFilter{
			UserID: userID,
			Month:  &month,
			Year:   &year,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(budgets) != 1 {
			t.Fatalf("expected 1 budget, got %d", len(budgets))
		}
		if budgets[0].Budget.ID != june.ID {
			t.Error("expected the June budget")
		}
	})
}

func TestBudgetRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewBudgetRepository(db)
	ctx := context.Background()

	budget := entity.NewBudget(uuid.New(), uuid.New(), decimal.RequireFromString("500"), 6, 2024)
	if err := repo.Create(ctx, budget); err != nil {
		t.Fatalf("failed to create budget: %v", err)
	}

	t.Run("persists the new limit", func(t *testing.T) {
		budget.MonthlyLimit = decimal.RequireFromString("650.50")
		if err := repo.Update(ctx, budget); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, budget.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found.MonthlyLimit.Equal(decimal.RequireFromString("650.50")) {
			t.Errorf("expected limit 650.50, got %s", found.MonthlyLimit)
		}
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		ghost := entity.NewBudget(uuid.New(), uuid.New(), decimal.RequireFromString("10"), 1, 2024)
		if err := repo.Update(ctx, ghost); err != domainerror.ErrBudgetNotFound {
			t.Errorf("expected ErrBudgetNotFound, got %v", err)
		}
	})
}

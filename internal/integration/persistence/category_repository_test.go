package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/mos3c/budget-guy/internal/application/adapter"
	"github.com/mos3c/budget-guy/internal/domain/entity"
	domainerror "github.com/mos3c/budget-guy/internal/domain/error"
)

func TestCategoryRepository_FindByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	category := entity.NewCategory(userID, "Groceries", entity.CategoryTypeExpense)
	if err := repo.Create(ctx, category); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	t.Run("returns the stored category", func(t *testing.T) {
		found, err := repo.FindByID(ctx, category.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Name != "Groceries" {
			t.Errorf("expected name Groceries, got %q", found.Name)
		}
		if found.Type != entity.CategoryTypeExpense {
			t.Errorf("expected expense type, got %q", found.Type)
		}
		if !found.IsActive {
			t.Error("expected category to be active")
		}
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		if err != domainerror.ErrCategoryNotFound {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}

func TestCategoryRepository_FindByFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	otherUserID := uuid.New()

	rent := entity.NewCategory(userID, "Rent", entity.CategoryTypeExpense)
	groceries := entity.NewCategory(userID, "Groceries", entity.CategoryTypeExpense)
	salary := entity.NewCategory(userID, "Salary", entity.CategoryTypeIncome)
	retired := entity.NewCategory(userID, "Old Hobby", entity.CategoryTypeExpense)
	retired.IsActive = false
	foreign := entity.NewCategory(otherUserID, "Bob Stuff", entity.CategoryTypeExpense)

	for _, c := range []*entity.Category{rent, groceries, salary, retired, foreign} {
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("failed to create category %q: %v", c.Name, err)
		}
	}

	active := true
	expense := entity.CategoryTypeExpense

	t.Run("scopes to the user", func(t *testing.T) {
		categories, err := repo.FindByFilter(ctx, adapter.CategoryFilter{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(categories) != 4 {
			t.Fatalf("expected 4 categories, got %d", len(categories))
		}
	})

	t.Run("filters by type and active state, ordered by name", func(t *testing.T) {
		categories, err := repo.FindByFilter(ctx, adapter.CategoryFilter{
			UserID:   userID,
			Type:     &expense,
			IsActive: &active,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(categories))
		}
		if categories[0].Name != "Groceries" || categories[1].Name != "Rent" {
			t.Errorf("expected [Groceries Rent], got [%s %s]", categories[0].Name, categories[1].Name)
		}
	})
}

func TestCategoryRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	category := entity.NewCategory(uuid.New(), "Groceries", entity.CategoryTypeExpense)
	if err := repo.Create(ctx, category); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	t.Run("persists name and active state", func(t *testing.T) {
		category.Name = "Food"
		category.IsActive = false
		if err := repo.Update(ctx, category); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, category.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Name != "Food" {
			t.Errorf("expected name Food, got %q", found.Name)
		}
		if found.IsActive {
			t.Error("expected category to be inactive")
		}
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		ghost := entity.NewCategory(uuid.New(), "Ghost", entity.CategoryTypeExpense)
		if err := repo.Update(ctx, ghost); err != domainerror.ErrCategoryNotFound {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}

func TestCategoryRepository_ExistsByNameAndType(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	category := entity.NewCategory(userID, "Groceries", entity.CategoryTypeExpense)
	if err := repo.Create(ctx, category); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	t.Run("name comparison is case-insensitive", func(t *testing.T) {
		exists, err := repo.ExistsByNameAndType(ctx, userID, "GROCERIES", entity.CategoryTypeExpense, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected GROCERIES to match Groceries")
		}
	})

	t.Run("same name under a different type does not match", func(t *testing.T) {
		exists, err := repo.ExistsByNameAndType(ctx, userID, "Groceries", entity.CategoryTypeIncome, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected no match for income type")
		}
	})

	t.Run("another user's category does not match", func(t *testing.T) {
		exists, err := repo.ExistsByNameAndType(ctx, uuid.New(), "Groceries", entity.CategoryTypeExpense, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected no match for another user")
		}
	})

	t.Run("excluded id is skipped", func(t *testing.T) {
		exists, err := repo.ExistsByNameAndType(ctx, userID, "Groceries", entity.CategoryTypeExpense, &category.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected the category itself to be excluded")
		}
	})
}

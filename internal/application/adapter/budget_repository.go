// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/mos3c/budget-guy/internal/domain/entity"
)

// BudgetFilter defines filter options for listing budgets.
type BudgetFilter struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	Month      *int
	Year       *int
	IsActive   *bool
}

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByFilter retrieves budgets with their categories matching the filter.
	FindByFilter(ctx context.Context, filter BudgetFilter) ([]*entity.BudgetWithCategory, error)

	// Update updates an existing budget in the database.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete soft-deletes a budget from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsForPeriod checks whether the user already has a budget for the
	// category and (month, year) pair, excluding the given budget ID when
	// non-nil.
	ExistsForPeriod(ctx context.Context, userID, categoryID uuid.UUID, month, year int, excludeID *uuid.UUID) (bool, error)
}

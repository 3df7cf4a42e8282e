// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mos3c/budget-guy/internal/application/adapter"
	"github.com/mos3c/budget-guy/internal/domain/entity"
	domainerror "github.com/mos3c/budget-guy/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget update.
// Nil pointer fields are left unchanged.
type UpdateBudgetInput struct {
	BudgetID     uuid.UUID
	UserID       uuid.UUID
	MonthlyLimit *decimal.Decimal
	Month        *int
	Year         *int
	IsActive     *bool
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget update. When the period changes, the uniqueness
// rule is re-checked against the final (month, year) pair.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	if budget.UserID != input.UserID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNotAuthorizedBudget,
			"not authorized to modify this budget",
			domainerror.ErrNotAuthorizedToModifyBudget,
		)
	}

	if input.MonthlyLimit != nil {
		if !input.MonthlyLimit.IsPositive() {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeNonPositiveLimit,
				"monthly limit must be greater than zero",
				domainerror.ErrNonPositiveLimit,
			)
		}
		budget.MonthlyLimit = *input.MonthlyLimit
	}

	periodChanged := false

	if input.Month != nil {
		if *input.Month < 1 || *input.Month > 12 {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidMonth,
				"month must be between 1 and 12",
				domainerror.ErrInvalidMonth,
			)
		}
		if *input.Month != budget.Month {
			budget.Month = *input.Month
			periodChanged = true
		}
	}

	if input.Year != nil && *input.Year != budget.Year {
		budget.Year = *input.Year
		periodChanged = true
	}

	if periodChanged {
		exists, err := uc.budgetRepo.ExistsForPeriod(ctx, budget.UserID, budget.CategoryID, budget.Month, budget.Year, &budget.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check budget existence: %w", err)
		}
		if exists {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeDuplicateBudget,
				fmt.Sprintf("a budget for this category in %02d/%d already exists", budget.Month, budget.Year),
				domainerror.ErrDuplicateBudget,
			)
		}
	}

	if input.IsActive != nil {
		budget.IsActive = *input.IsActive
	}

	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{
		Budget: budget,
	}, nil
}

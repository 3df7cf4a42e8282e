// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mos3c/budget-guy/internal/application/adapter"
	domainerror "github.com/mos3c/budget-guy/internal/domain/error"
)

// DeactivateCategoryInput represents the input for category deactivation.
type DeactivateCategoryInput struct {
	CategoryID uuid.UUID
	UserID     uuid.UUID
}

// DeactivateCategoryOutput represents the output of category deactivation.
type DeactivateCategoryOutput struct{}

// DeactivateCategoryUseCase handles category deactivation logic.
// Categories are never hard-deleted; transactions keep referencing them.
type DeactivateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeactivateCategoryUseCase creates a new DeactivateCategoryUseCase instance.
func NewDeactivateCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeactivateCategoryUseCase {
	return &DeactivateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category deactivation.
func (uc *DeactivateCategoryUseCase) Execute(ctx context.Context, input DeactivateCategoryInput) (*DeactivateCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if category.UserID != input.UserID {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeNotAuthorizedCategory,
			"not authorized to modify this category",
			domainerror.ErrNotAuthorizedToModifyCategory,
		)
	}

	category.IsActive = false
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to deactivate category: %w", err)
	}

	return &DeactivateCategoryOutput{}, nil
}

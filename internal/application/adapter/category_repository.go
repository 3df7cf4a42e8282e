// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/mos3c/budget-guy/internal/domain/entity"
)

// CategoryFilter defines filter options for listing categories.
type CategoryFilter struct {
	UserID   uuid.UUID
	Type     *entity.CategoryType
	IsActive *bool
}

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByFilter retrieves categories matching the filter, ordered by name.
	FindByFilter(ctx context.Context, filter CategoryFilter) ([]*entity.Category, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// ExistsByNameAndType checks whether the user already has a category with
	// this name (case-insensitive) and type, excluding the given category ID
	// when non-nil.
	ExistsByNameAndType(ctx context.Context, userID uuid.UUID, name string, categoryType entity.CategoryType, excludeID *uuid.UUID) (bool, error)
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mos3c/budget-guy/internal/domain/entity"
)

// InvestmentFilter defines filter options for listing investments.
type InvestmentFilter struct {
	UserID       uuid.UUID
	Type         *entity.InvestmentType
	PurchaseDate *time.Time
}

// InvestmentRepository defines the interface for investment persistence operations.
type InvestmentRepository interface {
	// Create creates a new investment in the database.
	Create(ctx context.Context, investment *entity.Investment) error

	// FindByID retrieves an investment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error)

	// FindByFilter retrieves investments matching the filter, newest purchase first.
	FindByFilter(ctx context.Context, filter InvestmentFilter) ([]*entity.Investment, error)

	// FindByUser retrieves all investments for a user, newest purchase first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Investment, error)

	// Update updates an existing investment in the database.
	Update(ctx context.Context, investment *entity.Investment) error

	// Delete soft-deletes an investment from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

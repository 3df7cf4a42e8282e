// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType classifies a category as income or expense.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a transaction category owned by a single user.
// The (user, name, type) triple is unique per user, compared case-insensitively
// on name. Categories are never hard-deleted; they are disabled instead.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      CategoryType
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new active Category entity.
// Name normalization (title casing) is applied in the use case layer before
// calling this constructor.
func NewCategory(userID uuid.UUID, name string, categoryType CategoryType) *Category {
	now := time.Now().UTC()
	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      categoryType,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mos3c/budget-guy/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
// Uniqueness of (user, category, month, year) is enforced in the use case
// layer so soft-deleted rows never block new budgets.
type BudgetModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_budgets_period"`
	CategoryID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_budgets_period"`
	MonthlyLimit decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Month        int             `gorm:"not null;index:idx_budgets_period"`
	Year         int             `gorm:"not null;index:idx_budgets_period"`
	IsActive     bool            `gorm:"default:true"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
	DeletedAt    gorm.DeletedAt  `gorm:"index"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:           m.ID,
		UserID:       m.UserID,
		CategoryID:   m.CategoryID,
		MonthlyLimit: m.MonthlyLimit,
		Month:        m.Month,
		Year:         m.Year,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToEntityWithCategory converts a BudgetModel with a preloaded category to a
// BudgetWithCategory pair.
func (m *BudgetModel) ToEntityWithCategory() *entity.BudgetWithCategory {
	pair := &entity.BudgetWithCategory{
		Budget: m.ToEntity(),
	}
	if m.Category != nil {
		pair.Category = m.Category.ToEntity()
	}
	return pair
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:           budget.ID,
		UserID:       budget.UserID,
		CategoryID:   budget.CategoryID,
		MonthlyLimit: budget.MonthlyLimit,
		Month:        budget.Month,
		Year:         budget.Year,
		IsActive:     budget.IsActive,
		CreatedAt:    budget.CreatedAt,
		UpdatedAt:    budget.UpdatedAt,
	}
}

// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mos3c/budget-guy/internal/application/adapter"
	"github.com/mos3c/budget-guy/internal/domain/entity"
	"github.com/mos3c/budget-guy/internal/integration/persistence/model"
)

// analyticsRepository implements the adapter.AnalyticsRepository interface by
// loading flattened snapshot rows for in-memory aggregation.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository instance.
func NewAnalyticsRepository(db *gorm.DB) adapter.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// TransactionRows returns the user's transactions within the inclusive range.
func (r *analyticsRepository) TransactionRows(ctx context.Context, userID uuid.UUID, start, end *time.Time) ([]adapter.TransactionRow, error) {
	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Preload("Category").
		Where("user_id = ?", userID)

	if start != nil {
		query = query.Where("date >= ?", *start)
	}
	if end != nil {
		query = query.Where("date <= ?", *end)
	}

	var transactionModels []model.TransactionModel
	result := query.Order("date DESC, created_at DESC").Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	return toRows(transactionModels), nil
}

// RecentTransactionRows returns the user's most recent transactions.
func (r *analyticsRepository) RecentTransactionRows(ctx context.Context, userID uuid.UUID, limit int) ([]adapter.TransactionRow, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	return toRows(transactionModels), nil
}

// BudgetRows returns the user's active budgets for the period.
func (r *analyticsRepository) BudgetRows(ctx context.Context, userID uuid.UUID, month, year int) ([]adapter.BudgetRow, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Preload("Category").
		Where("user_id = ? AND month = ? AND year = ? AND is_active = ?", userID, month, year, true).
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	rows := make([]adapter.BudgetRow, len(budgetModels))
	for i, bm := range budgetModels {
		rows[i] = adapter.BudgetRow{
			BudgetID:     bm.ID,
			CategoryID:   bm.CategoryID,
			MonthlyLimit: bm.MonthlyLimit,
			Month:        bm.Month,
			Year:         bm.Year,
		}
		if bm.Category != nil {
			rows[i].CategoryName = bm.Category.Name
		}
	}
	return rows, nil
}

// toRows flattens transaction models into snapshot rows.
func toRows(transactionModels []model.TransactionModel) []adapter.TransactionRow {
	rows := make([]adapter.TransactionRow, len(transactionModels))
	for i, tm := range transactionModels {
		rows[i] = adapter.TransactionRow{
			ID:          tm.ID,
			CategoryID:  tm.CategoryID,
			Type:        entity.TransactionType(tm.Type),
			Amount:      tm.Amount,
			Description: tm.Description,
			Date:        tm.Date,
			CreatedAt:   tm.CreatedAt,
		}
		if tm.Category != nil {
			rows[i].CategoryName = tm.Category.Name
		}
	}
	return rows
}

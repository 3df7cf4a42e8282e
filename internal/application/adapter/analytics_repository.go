// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mos3c/budget-guy/internal/domain/entity"
)

// TransactionRow is a flattened transaction snapshot used by report
// aggregations. It carries the category name so aggregation never needs a
// second lookup.
type TransactionRow struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	Type         entity.TransactionType
	Amount       decimal.Decimal
	Description  string
	Date         time.Time
	CreatedAt    time.Time
}

// BudgetRow is a flattened budget snapshot for a single period.
type BudgetRow struct {
	BudgetID     uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	MonthlyLimit decimal.Decimal
	Month        int
	Year         int
}

// AnalyticsRepository fetches read-only snapshots for report computation.
// All aggregation happens in memory over the returned slices.
type AnalyticsRepository interface {
	// TransactionRows returns all of the user's transactions whose date falls
	// within the inclusive [start, end] range. Nil bounds are open-ended.
	TransactionRows(ctx context.Context, userID uuid.UUID, start, end *time.Time) ([]TransactionRow, error)

	// RecentTransactionRows returns the user's most recent transactions,
	// newest date first (creation time breaks ties), up to limit.
	RecentTransactionRows(ctx context.Context, userID uuid.UUID, limit int) ([]TransactionRow, error)

	// BudgetRows returns the user's active budgets for the given period.
	BudgetRows(ctx context.Context, userID uuid.UUID, month, year int) ([]BudgetRow, error)
}

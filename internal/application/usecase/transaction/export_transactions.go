// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mos3c/budget-guy/internal/application/adapter"
	"github.com/mos3c/budget-guy/internal/domain/entity"
)

// ExportTransactionsInput represents the input for exporting transactions.
// The same filters as listing apply, but no pagination.
type ExportTransactionsInput struct {
	UserID     uuid.UUID
	Type       *entity.TransactionType
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string
}

// ExportTransactionsOutput represents the output of exporting transactions.
type ExportTransactionsOutput struct {
	Transactions []*entity.TransactionWithCategory
	Totals       *adapter.TransactionTotals
}

// ExportTransactionsUseCase gathers the full filtered transaction set for
// file exports.
type ExportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves every transaction matching the filter along with totals
// over the whole set.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	filter := adapter.TransactionFilter{
		UserID:     input.UserID,
		Type:       input.Type,
		CategoryID: input.CategoryID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Search:     input.Search,
	}

	transactions, err := uc.transactionRepo.FindAllByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to export transactions: %w", err)
	}

	totals, err := uc.transactionRepo.GetTotals(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to compute transaction totals: %w", err)
	}

	return &ExportTransactionsOutput{
		Transactions: transactions,
		Totals:       totals,
	}, nil
}

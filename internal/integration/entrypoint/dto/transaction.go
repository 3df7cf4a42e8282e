// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/mos3c/budget-guy/internal/application/adapter"
	"github.com/mos3c/budget-guy/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	CategoryID  string  `json:"category_id" binding:"required,uuid"`
	Type        string  `json:"type" binding:"required,oneof=expense income"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Date        string  `json:"date" binding:"required"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	CategoryID  *string  `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Type        *string  `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Amount      *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Date        *string  `json:"date,omitempty"`
}

// TransactionCategoryResponse represents category information in transaction responses.
type TransactionCategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          string                       `json:"id"`
	Type        string                       `json:"type"`
	Amount      float64                      `json:"amount"`
	Description string                       `json:"description"`
	Date        string                       `json:"date"`
	Category    *TransactionCategoryResponse `json:"category,omitempty"`
	CreatedAt   string                       `json:"created_at"`
}

// TransactionTotalsResponse represents aggregated totals over the filtered set.
type TransactionTotalsResponse struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse     `json:"transactions"`
	Totals       TransactionTotalsResponse `json:"totals"`
	Total        int64                     `json:"total"`
	Page         int                       `json:"page"`
	Limit        int                       `json:"limit"`
	TotalPages   int                       `json:"total_pages"`
}

// ToTransactionResponse converts a transaction and its category to a response.
func ToTransactionResponse(transaction *entity.Transaction, category *entity.Category) TransactionResponse {
	response := TransactionResponse{
		ID:          transaction.ID.String(),
		Type:        string(transaction.Type),
		Amount:      money(transaction.Amount),
		Description: transaction.Description,
		Date:        transaction.Date.Format(dateLayout),
		CreatedAt:   transaction.CreatedAt.Format("2006-01-02 15:04"),
	}
	if category != nil {
		response.Category = &TransactionCategoryResponse{
			ID:   category.ID.String(),
			Name: category.Name,
			Type: string(category.Type),
		}
	}
	return response
}

// ToTransactionListResponse converts a paginated listing to a response.
func ToTransactionListResponse(
	transactions []*entity.TransactionWithCategory,
	totals *adapter.TransactionTotals,
	total int64,
	page, limit, totalPages int,
) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, pair := range transactions {
		responses[i] = ToTransactionResponse(pair.Transaction, pair.Category)
	}
	return TransactionListResponse{
		Transactions: responses,
		Totals: TransactionTotalsResponse{
			Income:   money(totals.IncomeTotal),
			Expenses: money(totals.ExpenseTotal),
			Net:      money(totals.NetTotal),
		},
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/mos3c/budget-guy/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	CategoryID   string  `json:"category_id" binding:"required,uuid"`
	MonthlyLimit float64 `json:"monthly_limit" binding:"required,gt=0"`
	Month        int     `json:"month" binding:"required,min=1,max=12"`
	Year         int     `json:"year" binding:"required,min=1,max=9999"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	MonthlyLimit *float64 `json:"monthly_limit,omitempty" binding:"omitempty,gt=0"`
	Month        *int     `json:"month,omitempty" binding:"omitempty,min=1,max=12"`
	Year         *int     `json:"year,omitempty" binding:"omitempty,min=1,max=9999"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	ID           string  `json:"id"`
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name,omitempty"`
	MonthlyLimit float64 `json:"monthly_limit"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`
	IsActive     bool    `json:"is_active"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
	Total   int              `json:"total"`
}

// ToBudgetResponse converts a budget entity to a BudgetResponse.
func ToBudgetResponse(budget *entity.Budget, category *entity.Category) BudgetResponse {
	response := BudgetResponse{
		ID:           budget.ID.String(),
		CategoryID:   budget.CategoryID.String(),
		MonthlyLimit: money(budget.MonthlyLimit),
		Month:        budget.Month,
		Year:         budget.Year,
		IsActive:     budget.IsActive,
	}
	if category != nil {
		response.CategoryName = category.Name
	}
	return response
}

// ToBudgetListResponse converts budget pairs to a list response.
func ToBudgetListResponse(budgets []*entity.BudgetWithCategory) BudgetListResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, pair := range budgets {
		responses[i] = ToBudgetResponse(pair.Budget, pair.Category)
	}
	return BudgetListResponse{
		Budgets: responses,
		Total:   len(responses),
	}
}

// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/mos3c/budget-guy/internal/domain/entity"
)

// CreateInvestmentRequest represents the request body for investment creation.
type CreateInvestmentRequest struct {
	Name           string   `json:"name" binding:"required,min=1,max=100"`
	Type           string   `json:"type" binding:"required,oneof=stocks crypto real_estate others"`
	OthersDetail   string   `json:"others_detail,omitempty" binding:"omitempty,max=255"`
	AmountInvested float64  `json:"amount_invested" binding:"required,gte=0"`
	CurrentValue   float64  `json:"current_value" binding:"gte=0"`
	Quantity       *float64 `json:"quantity,omitempty" binding:"omitempty,gt=0"`
	PurchaseDate   string   `json:"purchase_date" binding:"required"`
}

// UpdateInvestmentRequest represents the request body for investment update.
type UpdateInvestmentRequest struct {
	Name           *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Type           *string  `json:"type,omitempty" binding:"omitempty,oneof=stocks crypto real_estate others"`
	OthersDetail   *string  `json:"others_detail,omitempty" binding:"omitempty,max=255"`
	AmountInvested *float64 `json:"amount_invested,omitempty" binding:"omitempty,gte=0"`
	CurrentValue   *float64 `json:"current_value,omitempty" binding:"omitempty,gte=0"`
	Quantity       *float64 `json:"quantity,omitempty" binding:"omitempty,gt=0"`
	PurchaseDate   *string  `json:"purchase_date,omitempty"`
}

// InvestmentResponse represents an investment in API responses.
type InvestmentResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Type              string   `json:"type"`
	OthersDetail      string   `json:"others_detail,omitempty"`
	AmountInvested    float64  `json:"amount_invested"`
	CurrentValue      float64  `json:"current_value"`
	Quantity          *float64 `json:"quantity,omitempty"`
	PurchaseDate      string   `json:"purchase_date"`
	ProfitLoss        float64  `json:"profit_loss"`
	ProfitLossPercent float64  `json:"profit_loss_percentage"`
}

// InvestmentListResponse represents the response for listing investments.
type InvestmentListResponse struct {
	Investments []InvestmentResponse `json:"investments"`
	Total       int                  `json:"total"`
}

// ToInvestmentResponse converts an investment entity to an InvestmentResponse.
func ToInvestmentResponse(investment *entity.Investment) InvestmentResponse {
	response := InvestmentResponse{
		ID:                investment.ID.String(),
		Name:              investment.Name,
		Type:              string(investment.Type),
		OthersDetail:      investment.OthersDetail,
		AmountInvested:    money(investment.AmountInvested),
		CurrentValue:      money(investment.CurrentValue),
		PurchaseDate:      investment.PurchaseDate.Format(dateLayout),
		ProfitLoss:        money(investment.ProfitLoss()),
		ProfitLossPercent: money(investment.ProfitLossPercent()),
	}
	if investment.Quantity != nil {
		quantity := investment.Quantity.InexactFloat64()
		response.Quantity = &quantity
	}
	return response
}

// ToInvestmentListResponse converts investment entities to a list response.
func ToInvestmentListResponse(investments []*entity.Investment) InvestmentListResponse {
	responses := make([]InvestmentResponse, len(investments))
	for i, investment := range investments {
		responses[i] = ToInvestmentResponse(investment)
	}
	return InvestmentListResponse{
		Investments: responses,
		Total:       len(responses),
	}
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestmentType classifies an investment holding.
type InvestmentType string

const (
	InvestmentTypeStocks     InvestmentType = "stocks"
	InvestmentTypeCrypto     InvestmentType = "crypto"
	InvestmentTypeRealEstate InvestmentType = "real_estate"
	InvestmentTypeOthers     InvestmentType = "others"
)

// Investment represents a single holding in a user's portfolio.
// OthersDetail is required when Type is "others".
type Investment struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Type           InvestmentType
	OthersDetail   string
	AmountInvested decimal.Decimal
	CurrentValue   decimal.Decimal
	Quantity       *decimal.Decimal
	PurchaseDate   time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewInvestment creates a new Investment entity.
func NewInvestment(
	userID uuid.UUID,
	name string,
	investmentType InvestmentType,
	othersDetail string,
	amountInvested decimal.Decimal,
	currentValue decimal.Decimal,
	quantity *decimal.Decimal,
	purchaseDate time.Time,
) *Investment {
	now := time.Now().UTC()
	return &Investment{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Type:           investmentType,
		OthersDetail:   othersDetail,
		AmountInvested: amountInvested,
		CurrentValue:   currentValue,
		Quantity:       quantity,
		PurchaseDate:   purchaseDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ProfitLoss returns current value minus the amount invested.
func (i *Investment) ProfitLoss() decimal.Decimal {
	return i.CurrentValue.Sub(i.AmountInvested)
}

// ProfitLossPercent returns the unrounded percentage return on the amount
// invested, or zero when nothing was invested.
func (i *Investment) ProfitLossPercent() decimal.Decimal {
	if i.AmountInvested.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return i.ProfitLoss().Div(i.AmountInvested).Mul(decimal.NewFromInt(100))
}

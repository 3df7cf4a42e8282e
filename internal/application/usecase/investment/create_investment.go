// Package investment contains investment-related use cases.
package investment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mos3c/budget-guy/internal/application/adapter"
	"github.com/mos3c/budget-guy/internal/domain/entity"
	domainerror "github.com/mos3c/budget-guy/internal/domain/error"
)

// MaxInvestmentNameLength is the maximum allowed length for investment names.
const MaxInvestmentNameLength = 100

// CreateInvestmentInput represents the input for investment creation.
type CreateInvestmentInput struct {
	UserID         uuid.UUID
	Name           string
	Type           entity.InvestmentType
	OthersDetail   string
	AmountInvested decimal.Decimal
	CurrentValue   decimal.Decimal
	Quantity       *decimal.Decimal
	PurchaseDate   time.Time
}

// CreateInvestmentOutput represents the output of investment creation.
type CreateInvestmentOutput struct {
	Investment *entity.Investment
}

// CreateInvestmentUseCase handles investment creation logic.
type CreateInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewCreateInvestmentUseCase creates a new CreateInvestmentUseCase instance.
func NewCreateInvestmentUseCase(investmentRepo adapter.InvestmentRepository) *CreateInvestmentUseCase {
	return &CreateInvestmentUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute performs the investment creation.
func (uc *CreateInvestmentUseCase) Execute(ctx context.Context, input CreateInvestmentInput) (*CreateInvestmentOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.PurchaseDate.IsZero() {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeMissingInvestmentFields,
			"name and purchase date are required",
			domainerror.ErrMissingInvestmentFields,
		)
	}

	if len(name) > MaxInvestmentNameLength {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeInvestmentNameTooLong,
			fmt.Sprintf("investment name must not exceed %d characters", MaxInvestmentNameLength),
			domainerror.ErrInvestmentNameTooLong,
		)
	}

	if !isValidInvestmentType(input.Type) {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidInvestmentType,
			"investment type must be one of 'stocks', 'crypto', 'real_estate', 'others'",
			domainerror.ErrInvalidInvestmentType,
		)
	}

	othersDetail := strings.TrimSpace(input.OthersDetail)
	if input.Type == entity.InvestmentTypeOthers && othersDetail == "" {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeOthersDetailRequired,
			"detail is required when investment type is 'others'",
			domainerror.ErrOthersDetailRequired,
		)
	}
	if input.Type != entity.InvestmentTypeOthers {
		othersDetail = ""
	}

	investment := entity.NewInvestment(
		input.UserID,
		name,
		input.Type,
		othersDetail,
		input.AmountInvested,
		input.CurrentValue,
		input.Quantity,
		input.PurchaseDate,
	)

	if err := uc.investmentRepo.Create(ctx, investment); err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	return &CreateInvestmentOutput{
		Investment: investment,
	}, nil
}

// isValidInvestmentType validates the investment type.
func isValidInvestmentType(investmentType entity.InvestmentType) bool {
	switch investmentType {
	case entity.InvestmentTypeStocks,
		entity.InvestmentTypeCrypto,
		entity.InvestmentTypeRealEstate,
		entity.InvestmentTypeOthers:
		return true
	}
	return false
}

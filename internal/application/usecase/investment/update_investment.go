// Package investment contains investment-related use cases.
package investment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mos3c/budget-guy/internal/application/adapter"
	"github.com/mos3c/budget-guy/internal/domain/entity"
	domainerror "github.com/mos3c/budget-guy/internal/domain/error"
)

// UpdateInvestmentInput represents the input for investment update.
// Nil pointer fields are left unchanged.
type UpdateInvestmentInput struct {
	InvestmentID   uuid.UUID
	UserID         uuid.UUID
	Name           *string
	Type           *entity.InvestmentType
	OthersDetail   *string
	AmountInvested *decimal.Decimal
	CurrentValue   *decimal.Decimal
	Quantity       *decimal.Decimal
	PurchaseDate   *time.Time
}

// UpdateInvestmentOutput represents the output of investment update.
type UpdateInvestmentOutput struct {
	Investment *entity.Investment
}

// UpdateInvestmentUseCase handles investment update logic.
type UpdateInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewUpdateInvestmentUseCase creates a new UpdateInvestmentUseCase instance.
func NewUpdateInvestmentUseCase(investmentRepo adapter.InvestmentRepository) *UpdateInvestmentUseCase {
	return &UpdateInvestmentUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute performs the investment update. The others-detail rule is enforced
// against the final state, so switching the type to "others" without a detail
// fails even when neither field alone is invalid.
func (uc *UpdateInvestmentUseCase) Execute(ctx context.Context, input UpdateInvestmentInput) (*UpdateInvestmentOutput, error) {
	investment, err := uc.investmentRepo.FindByID(ctx, input.InvestmentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrInvestmentNotFound) {
			return nil, domainerror.NewInvestmentError(
				domainerror.ErrCodeInvestmentNotFound,
				"investment not found",
				domainerror.ErrInvestmentNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find investment: %w", err)
	}

	if investment.UserID != input.UserID {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeNotAuthorizedInvestment,
			"not authorized to modify this investment",
			domainerror.ErrNotAuthorizedToModifyInvestment,
		)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewInvestmentError(
				domainerror.ErrCodeMissingInvestmentFields,
				"investment name cannot be empty",
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
		investment.Name = name
	}

	if input.Type != nil {
		if !isValidInvestmentType(*input.Type) {
			return nil, domainerror.NewInvestmentError(
				domainerror.ErrCodeInvalidInvestmentType,
				"investment type must be one of 'stocks', 'crypto', 'real_estate', 'others'",
				domainerror.ErrInvalidInvestmentType,
			)
		}
		investment.Type = *input.Type
	}

	if input.OthersDetail != nil {
		investment.OthersDetail = strings.TrimSpace(*input.OthersDetail)
	}

	if investment.Type == entity.InvestmentTypeOthers {
		if investment.OthersDetail == "" {
			return nil, domainerror.NewInvestmentError(
				domainerror.ErrCodeOthersDetailRequired,
				"detail is required when investment type is 'others'",
				domainerror.ErrOthersDetailRequired,
			)
		}
	} else {
		investment.OthersDetail = ""
	}

	if input.AmountInvested != nil {
		investment.AmountInvested = *input.AmountInvested
	}
	if input.CurrentValue != nil {
		investment.CurrentValue = *input.CurrentValue
	}
	if input.Quantity != nil {
		investment.Quantity = input.Quantity
	}
	if input.PurchaseDate != nil {
		investment.PurchaseDate = *input.PurchaseDate
	}

	investment.UpdatedAt = time.Now().UTC()

	if err := uc.investmentRepo.Update(ctx, investment); err != nil {
		return nil, fmt.Errorf("failed to update investment: %w", err)
	}

	return &UpdateInvestmentOutput{
		Investment: investment,
	}, nil
}

// Package investment contains investment-related use cases.
package investment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mos3c/budget-guy/internal/application/adapter"
	"github.com/mos3c/budget-guy/internal/domain/entity"
)

// ListInvestmentsInput represents the input for listing investments.
type ListInvestmentsInput struct {
	UserID       uuid.UUID
	Type         *entity.InvestmentType
	PurchaseDate *time.Time
}

// ListInvestmentsOutput represents the output of listing investments.
type ListInvestmentsOutput struct {
	Investments []*entity.Investment
}

// ListInvestmentsUseCase handles listing investments logic.
type ListInvestmentsUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewListInvestmentsUseCase creates a new ListInvestmentsUseCase instance.
func NewListInvestmentsUseCase(investmentRepo adapter.InvestmentRepository) *ListInvestmentsUseCase {
	return &ListInvestmentsUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute performs the investment listing, newest purchase first.
func (uc *ListInvestmentsUseCase) Execute(ctx context.Context, input ListInvestmentsInput) (*ListInvestmentsOutput, error) {
	investments, err := uc.investmentRepo.FindByFilter(ctx, adapter.InvestmentFilter{
		UserID:       input.UserID,
		Type:         input.Type,
		PurchaseDate: input.PurchaseDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}

	return &ListInvestmentsOutput{
		Investments: investments,
	}, nil
}

// Package analytics contains report use cases.
package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mos3c/budget-guy/internal/application/adapter"
	"github.com/mos3c/budget-guy/internal/domain/entity"
)

// GetInvestmentPerformanceInput represents the input for the investment
// performance report.
type GetInvestmentPerformanceInput struct {
	UserID uuid.UUID
}

// GetInvestmentPerformanceOutput represents the investment performance report.
type GetInvestmentPerformanceOutput struct {
	PortfolioSummary      PortfolioSummary
	IndividualInvestments []*entity.Investment
	PerformanceByType     []TypePerformance
}

// GetInvestmentPerformanceUseCase assembles the investment performance report.
type GetInvestmentPerformanceUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewGetInvestmentPerformanceUseCase creates a new GetInvestmentPerformanceUseCase instance.
func NewGetInvestmentPerformanceUseCase(investmentRepo adapter.InvestmentRepository) *GetInvestmentPerformanceUseCase {
	return &GetInvestmentPerformanceUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute assembles the investment performance report.
func (uc *GetInvestmentPerformanceUseCase) Execute(ctx context.Context, input GetInvestmentPerformanceInput) (*GetInvestmentPerformanceOutput, error) {
	investments, err := uc.investmentRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments: %w", err)
	}

	summary, byType := InvestmentPerformance(investments)

	return &GetInvestmentPerformanceOutput{
		PortfolioSummary:      summary,
		IndividualInvestments: investments,
		PerformanceByType:     byType,
	}, nil
}

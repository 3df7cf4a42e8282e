// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mos3c/budget-guy/internal/application/usecase/analytics"
	domainerror "github.com/mos3c/budget-guy/internal/domain/error"
	"github.com/mos3c/budget-guy/internal/integration/entrypoint/dto"
	"github.com/mos3c/budget-guy/internal/integration/entrypoint/middleware"
)

// AnalyticsController handles report endpoints.
type AnalyticsController struct {
	dashboardUseCase   *analytics.GetDashboardUseCase
	monthlyUseCase     *analytics.GetMonthlySummaryUseCase
	breakdownUseCase   *analytics.GetCategoryBreakdownUseCase
	performanceUseCase *analytics.GetInvestmentPerformanceUseCase
	progressUseCase    *analytics.GetBudgetProgressUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	dashboardUseCase *analytics.GetDashboardUseCase,
	monthlyUseCase *analytics.GetMonthlySummaryUseCase,
	breakdownUseCase *analytics.GetCategoryBreakdownUseCase,
	performanceUseCase *analytics.GetInvestmentPerformanceUseCase,
	progressUseCase *analytics.GetBudgetProgressUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		dashboardUseCase:   dashboardUseCase,
		monthlyUseCase:     monthlyUseCase,
		breakdownUseCase:   breakdownUseCase,
		performanceUseCase: performanceUseCase,
		progressUseCase:    progressUseCase,
	}
}

// Dashboard handles GET /analytics/dashboard requests.
func (c *AnalyticsController) Dashboard(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), analytics.GetDashboardInput{
		UserID: userID,
	})
	if err != nil {
		handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// MonthlySummary handles GET /analytics/monthly-summary requests.
func (c *AnalyticsController) MonthlySummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	input := analytics.GetMonthlySummaryInput{UserID: userID}

	if raw := ctx.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year",
				Code:  string(domainerror.ErrCodeInvalidYear),
			})
			return
		}
		input.Year = year
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(output))
}

// CategoryBreakdown handles GET /analytics/category-breakdown requests.
func (c *AnalyticsController) CategoryBreakdown(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	input := analytics.GetCategoryBreakdownInput{UserID: userID}

	if raw := ctx.Query("start_date"); raw != "" {
		startDate, err := time.Parse(queryDateLayout, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "start_date must be in YYYY-MM-DD format",
				Code:  string(domainerror.ErrCodeInvalidDateRange),
			})
			return
		}
		input.StartDate = &startDate
	}
	if raw := ctx.Query("end_date"); raw != "" {
		endDate, err := time.Parse(queryDateLayout, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "end_date must be in YYYY-MM-DD format",
				Code:  string(domainerror.ErrCodeInvalidDateRange),
			})
			return
		}
		input.EndDate = &endDate
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}

// InvestmentPerformance handles GET /analytics/investment-performance requests.
func (c *AnalyticsController) InvestmentPerformance(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.performanceUseCase.Execute(ctx.Request.Context(), analytics.GetInvestmentPerformanceInput{
		UserID: userID,
	})
	if err != nil {
		handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentPerformanceResponse(output))
}

// BudgetProgress handles GET /analytics/budget-progress requests.
func (c *AnalyticsController) BudgetProgress(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	input := analytics.GetBudgetProgressInput{UserID: userID}

	if raw := ctx.Query("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid month",
				Code:  string(domainerror.ErrCodeInvalidPeriod),
			})
			return
		}
		input.Month = month
	}
	if raw := ctx.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year",
				Code:  string(domainerror.ErrCodeInvalidPeriod),
			})
			return
		}
		input.Year = year
	}

	output, err := c.progressUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetProgressResponse(output))
}

// handleAnalyticsError maps analytics errors to HTTP responses.
func handleAnalyticsError(ctx *gin.Context, err error) {
	var analyticsErr *domainerror.AnalyticsError
	if errors.As(err, &analyticsErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: analyticsErr.Message,
			Code:  string(analyticsErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mos3c/budget-guy/internal/application/usecase/investment"
	"github.com/mos3c/budget-guy/internal/domain/entity"
	domainerror "github.com/mos3c/budget-guy/internal/domain/error"
	"github.com/mos3c/budget-guy/internal/integration/entrypoint/dto"
	"github.com/mos3c/budget-guy/internal/integration/entrypoint/middleware"
)

// InvestmentController handles investment endpoints.
type InvestmentController struct {
	createUseCase *investment.CreateInvestmentUseCase
	listUseCase   *investment.ListInvestmentsUseCase
	updateUseCase *investment.UpdateInvestmentUseCase
	deleteUseCase *investment.DeleteInvestmentUseCase
}

// NewInvestmentController creates a new investment controller instance.
func NewInvestmentController(
	createUseCase *investment.CreateInvestmentUseCase,
	listUseCase *investment.ListInvestmentsUseCase,
	updateUseCase *investment.UpdateInvestmentUseCase,
	deleteUseCase *investment.DeleteInvestmentUseCase,
) *InvestmentController {
	return &InvestmentController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /investments requests.
func (c *InvestmentController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CreateInvestmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingInvestmentFields),
		})
		return
	}

	purchaseDate, err := time.Parse(queryDateLayout, req.PurchaseDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "purchase_date must be in YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeMissingInvestmentFields),
		})
		return
	}

	input := investment.CreateInvestmentInput{
		UserID:         userID,
		Name:           req.Name,
		Type:           entity.InvestmentType(req.Type),
		OthersDetail:   req.OthersDetail,
		AmountInvested: decimal.NewFromFloat(req.AmountInvested),
		CurrentValue:   decimal.NewFromFloat(req.CurrentValue),
		PurchaseDate:   purchaseDate,
	}
	if req.Quantity != nil {
		quantity := decimal.NewFromFloat(*req.Quantity)
		input.Quantity = &quantity
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleInvestmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvestmentResponse(output.Investment))
}

// List handles GET /investments requests.
func (c *InvestmentController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	input := investment.ListInvestmentsInput{UserID: userID}

	if raw := ctx.Query("type"); raw != "" {
		investmentType := entity.InvestmentType(raw)
		switch investmentType {
		case entity.InvestmentTypeStocks,
			entity.InvestmentTypeCrypto,
			entity.InvestmentTypeRealEstate,
			entity.InvestmentTypeOthers:
			input.Type = &investmentType
		default:
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "type must be one of 'stocks', 'crypto', 'real_estate', 'others'",
				Code:  string(domainerror.ErrCodeInvalidInvestmentType),
			})
			return
		}
	}
	if raw := ctx.Query("purchase_date"); raw != "" {
		purchaseDate, err := time.Parse(queryDateLayout, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "purchase_date must be in YYYY-MM-DD format",
				Code:  string(domainerror.ErrCodeMissingInvestmentFields),
			})
			return
		}
		input.PurchaseDate = &purchaseDate
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleInvestmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentListResponse(output.Investments))
}

// Update handles PUT /investments/:id requests.
func (c *InvestmentController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	investmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid investment ID",
			Code:  string(domainerror.ErrCodeInvestmentNotFound),
		})
		return
	}

	var req dto.UpdateInvestmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingInvestmentFields),
		})
		return
	}

	input := investment.UpdateInvestmentInput{
		InvestmentID: investmentID,
		UserID:       userID,
		Name:         req.Name,
		OthersDetail: req.OthersDetail,
	}
	if req.Type != nil {
		investmentType := entity.InvestmentType(*req.Type)
		input.Type = &investmentType
	}
	if req.AmountInvested != nil {
		amountInvested := decimal.NewFromFloat(*req.AmountInvested)
		input.AmountInvested = &amountInvested
	}
	if req.CurrentValue != nil {
		currentValue := decimal.NewFromFloat(*req.CurrentValue)
		input.CurrentValue = &currentValue
	}
	if req.Quantity != nil {
		quantity := decimal.NewFromFloat(*req.Quantity)
		input.Quantity = &quantity
	}
	if req.PurchaseDate != nil {
		purchaseDate, err := time.Parse(queryDateLayout, *req.PurchaseDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "purchase_date must be in YYYY-MM-DD format",
				Code:  string(domainerror.ErrCodeMissingInvestmentFields),
			})
			return
		}
		input.PurchaseDate = &purchaseDate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleInvestmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentResponse(output.Investment))
}

// Delete handles DELETE /investments/:id requests.
func (c *InvestmentController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	investmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid investment ID",
			Code:  string(domainerror.ErrCodeInvestmentNotFound),
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), investment.DeleteInvestmentInput{
		InvestmentID: investmentID,
		UserID:       userID,
	})
	if err != nil {
		handleInvestmentError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleInvestmentError maps investment errors to HTTP responses.
func handleInvestmentError(ctx *gin.Context, err error) {
	var investmentErr *domainerror.InvestmentError
	if errors.As(err, &investmentErr) {
		ctx.JSON(statusForInvestmentError(investmentErr.Code), dto.ErrorResponse{
			Error: investmentErr.Message,
			Code:  string(investmentErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForInvestmentError maps investment error codes to HTTP status codes.
func statusForInvestmentError(code domainerror.InvestmentErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvestmentNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedInvestment:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidInvestmentType,
		domainerror.ErrCodeOthersDetailRequired,
		domainerror.ErrCodeMissingInvestmentFields,
		domainerror.ErrCodeInvestmentNameTooLong:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

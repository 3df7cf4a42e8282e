// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mos3c/budget-guy/internal/application/usecase/transaction"
	"github.com/mos3c/budget-guy/internal/domain/entity"
	domainerror "github.com/mos3c/budget-guy/internal/domain/error"
	"github.com/mos3c/budget-guy/internal/integration/entrypoint/dto"
	"github.com/mos3c/budget-guy/internal/integration/entrypoint/middleware"
	"github.com/mos3c/budget-guy/internal/integration/export"
)

// queryDateLayout is the expected format for date query parameters and bodies.
const queryDateLayout = "2006-01-02"

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase *transaction.CreateTransactionUseCase
	listUseCase   *transaction.ListTransactionsUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
	exportUseCase *transaction.ExportTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	exportUseCase *transaction.ExportTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		exportUseCase: exportUseCase,
	}
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID",
			Code:  string(domainerror.ErrCodeTxnCategoryNotFound),
		})
		return
	}

	date, err := time.Parse(queryDateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "date must be in YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeInvalidTransactionDate),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		UserID:      userID,
		CategoryID:  categoryID,
		Type:        entity.TransactionType(req.Type),
		Amount:      decimal.NewFromFloat(req.Amount),
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction, output.Category))
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	input := transaction.ListTransactionsInput{
		UserID: userID,
		Search: ctx.Query("search"),
	}

	if !c.bindListFilters(ctx, &input) {
		return
	}

	if raw := ctx.Query("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			input.Page = page
		}
	}
	if raw := ctx.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			input.Limit = limit
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(
		output.Transactions,
		output.Totals,
		output.Total,
		output.Page,
		output.Limit,
		output.TotalPages,
	))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
		Description:   req.Description,
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID",
				Code:  string(domainerror.ErrCodeTxnCategoryNotFound),
			})
			return
		}
		input.CategoryID = &categoryID
	}
	if req.Type != nil {
		transactionType := entity.TransactionType(*req.Type)
		input.Type = &transactionType
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Date != nil {
		date, err := time.Parse(queryDateLayout, *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "date must be in YYYY-MM-DD format",
				Code:  string(domainerror.ErrCodeInvalidTransactionDate),
			})
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction, output.Category))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	})
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ExportCSV handles GET /transactions/export/csv requests. The same filters
// as the listing endpoint apply, but all matching rows are exported.
func (c *TransactionController) ExportCSV(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	input, ok := c.bindExportFilters(ctx, userID)
	if !ok {
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	filename := fmt.Sprintf("transactions_%s.csv", time.Now().UTC().Format(queryDateLayout))
	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := export.WriteTransactionsCSV(ctx.Writer, output.Transactions); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to generate CSV export",
		})
	}
}

// ExportPDF handles GET /transactions/export/pdf requests.
func (c *TransactionController) ExportPDF(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	input, ok := c.bindExportFilters(ctx, userID)
	if !ok {
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	summary := export.PDFSummary{
		TotalIncome:   output.Totals.IncomeTotal,
		TotalExpenses: output.Totals.ExpenseTotal,
		Net:           output.Totals.NetTotal,
	}

	filename := fmt.Sprintf("transactions_%s.pdf", time.Now().UTC().Format(queryDateLayout))
	ctx.Header("Content-Type", "application/pdf")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := export.WriteTransactionsPDF(ctx.Writer, middleware.GetUsername(ctx), summary, output.Transactions); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to generate PDF export",
		})
	}
}

// bindExportFilters parses the shared filter query parameters for exports.
func (c *TransactionController) bindExportFilters(ctx *gin.Context, userID uuid.UUID) (transaction.ExportTransactionsInput, bool) {
	listInput := transaction.ListTransactionsInput{
		UserID: userID,
		Search: ctx.Query("search"),
	}
	if !c.bindListFilters(ctx, &listInput) {
		return transaction.ExportTransactionsInput{}, false
	}

	return transaction.ExportTransactionsInput{
		UserID:     userID,
		Type:       listInput.Type,
		CategoryID: listInput.CategoryID,
		StartDate:  listInput.StartDate,
		EndDate:    listInput.EndDate,
		Search:     listInput.Search,
	}, true
}

// bindListFilters parses the shared filter query parameters into the input.
// It writes an error response and returns false when a parameter is invalid.
func (c *TransactionController) bindListFilters(ctx *gin.Context, input *transaction.ListTransactionsInput) bool {
	if raw := ctx.Query("type"); raw != "" {
		transactionType := entity.TransactionType(raw)
		if transactionType != entity.TransactionTypeExpense && transactionType != entity.TransactionTypeIncome {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "type must be 'expense' or 'income'",
				Code:  string(domainerror.ErrCodeInvalidTransactionType),
			})
			return false
		}
		input.Type = &transactionType
	}

	if raw := ctx.Query("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID",
				Code:  string(domainerror.ErrCodeTxnCategoryNotFound),
			})
			return false
		}
		input.CategoryID = &categoryID
	}

	if raw := ctx.Query("start_date"); raw != "" {
		startDate, err := time.Parse(queryDateLayout, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "start_date must be in YYYY-MM-DD format",
				Code:  string(domainerror.ErrCodeInvalidTransactionDate),
			})
			return false
		}
		input.StartDate = &startDate
	}

	if raw := ctx.Query("end_date"); raw != "" {
		endDate, err := time.Parse(queryDateLayout, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "end_date must be in YYYY-MM-DD format",
				Code:  string(domainerror.ErrCodeInvalidTransactionDate),
			})
			return false
		}
		input.EndDate = &endDate
	}

	// A leading "-" requests descending order, Django style.
	if raw := ctx.Query("order_by"); raw != "" {
		input.OrderAscending = !strings.HasPrefix(raw, "-")
		input.OrderBy = strings.TrimPrefix(raw, "-")
	}

	return true
}

// handleTransactionError maps transaction errors to HTTP responses.
func handleTransactionError(ctx *gin.Context, err error) {
	var transactionErr *domainerror.TransactionError
	if errors.As(err, &transactionErr) {
		ctx.JSON(statusForTransactionError(transactionErr.Code), dto.ErrorResponse{
			Error: transactionErr.Message,
			Code:  string(transactionErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForTransactionError maps transaction error codes to HTTP status codes.
func statusForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedTransaction,
		domainerror.ErrCodeTxnCategoryNotOwned:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeNonPositiveAmount,
		domainerror.ErrCodeTxnCategoryNotFound,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeMissingTransactionFields,
		domainerror.ErrCodeTypeMismatch:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

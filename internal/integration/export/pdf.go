// Package export renders transaction listings as downloadable documents.
package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/mos3c/budget-guy/internal/domain/entity"
)

const (
	pdfMarginLeft  = 15.0
	pdfMarginTop   = 15.0
	pdfLineHeight  = 8.0
	pdfBottomLimit = 260.0

	maxCategoryChars    = 15
	maxDescriptionChars = 20
)

// PDFSummary holds the totals printed in the report header.
type PDFSummary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Net           decimal.Decimal
}

// WriteTransactionsPDF renders the transactions as a paginated PDF report.
func WriteTransactionsPDF(w io.Writer, username string, summary PDFSummary, transactions []*entity.TransactionWithCategory) error {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginLeft)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Transaction Report - %s", username))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf(
		"Total Income: %s   Total Expenses: %s   Net: %s",
		summary.TotalIncome.Round(2).StringFixed(2),
		summary.TotalExpenses.Round(2).StringFixed(2),
		summary.Net.Round(2).StringFixed(2),
	))
	pdf.Ln(12)

	writeTableHeader(pdf)

	pdf.SetFont("Helvetica", "", 10)
	for _, pair := range transactions {
		if pdf.GetY() > pdfBottomLimit {
			pdf.AddPage()
			writeTableHeader(pdf)
			pdf.SetFont("Helvetica", "", 10)
		}

		transaction := pair.Transaction
		categoryName := ""
		if pair.Category != nil {
			categoryName = pair.Category.Name
		}

		pdf.Cell(25, pdfLineHeight, transaction.Date.Format("2006-01-02"))
		pdf.Cell(20, pdfLineHeight, string(transaction.Type))
		pdf.Cell(40, pdfLineHeight, truncate(categoryName, maxCategoryChars))
		pdf.Cell(25, pdfLineHeight, transaction.Amount.Round(2).StringFixed(2))
		pdf.Cell(50, pdfLineHeight, truncate(transaction.Description, maxDescriptionChars))
		pdf.Ln(pdfLineHeight)
	}

	return pdf.Output(w)
}

// writeTableHeader prints the column header row.
func writeTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(25, pdfLineHeight, "Date")
	pdf.Cell(20, pdfLineHeight, "Type")
	pdf.Cell(40, pdfLineHeight, "Category")
	pdf.Cell(25, pdfLineHeight, "Amount")
	pdf.Cell(50, pdfLineHeight, "Description")
	pdf.Ln(pdfLineHeight)
}

// truncate cuts a string to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

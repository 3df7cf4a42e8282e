// Package export renders transaction listings as downloadable documents.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/mos3c/budget-guy/internal/domain/entity"
)

// csvHeader is the fixed column order of transaction CSV exports.
var csvHeader = []string{"Date", "Type", "Category", "Amount", "Description", "Created"}

// WriteTransactionsCSV writes the transactions as CSV, one row per
// transaction in the given order.
func WriteTransactionsCSV(w io.Writer, transactions []*entity.TransactionWithCategory) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, pair := range transactions {
		transaction := pair.Transaction
		categoryName := ""
		if pair.Category != nil {
			categoryName = pair.Category.Name
		}

		record := []string{
			transaction.Date.Format("2006-01-02"),
			string(transaction.Type),
			categoryName,
			transaction.Amount.Round(2).StringFixed(2),
			transaction.Description,
			transaction.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

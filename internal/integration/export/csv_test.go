// Package export renders transaction listings as downloadable documents.
package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mos3c/budget-guy/internal/domain/entity"
)

func sampleTransactions(t *testing.T) []*entity.TransactionWithCategory {
	t.Helper()

	userID := uuid.New()
	category := entity.NewCategory(userID, "Groceries", entity.CategoryTypeExpense)

	transaction := entity.NewTransaction(
		userID,
		category.ID,
		entity.TransactionTypeExpense,
		decimal.RequireFromString("42.5"),
		"weekly shop",
		time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
	)
	transaction.CreatedAt = time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

	return []*entity.TransactionWithCategory{
		{Transaction: transaction, Category: category},
	}
}

func TestWriteTransactionsCSV(t *testing.T) {
	t.Run("writes header and rows", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteTransactionsCSV(&buf, sampleTransactions(t)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		records, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("failed to parse output: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}

		wantHeader := []string{"Date", "Type", "Category", "Amount", "Description", "Created"}
		for i, col := range wantHeader {
			if records[0][i] != col {
				t.Errorf("header column %d: expected %q, got %q", i, col, records[0][i])
			}
		}

		row := records[1]
		if row[0] != "2024-06-15" {
			t.Errorf("expected date 2024-06-15, got %q", row[0])
		}
		if row[1] != "expense" {
			t.Errorf("expected type expense, got %q", row[1])
		}
		if row[2] != "Groceries" {
			t.Errorf("expected category Groceries, got %q", row[2])
		}
		if row[3] != "42.50" {
			t.Errorf("expected amount 42.50, got %q", row[3])
		}
		if row[5] != "2024-06-15 09:30" {
			t.Errorf("expected created 2024-06-15 09:30, got %q", row[5])
		}
	})

	t.Run("empty set yields only the header", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteTransactionsCSV(&buf, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 1 {
			t.Fatalf("expected 1 line, got %d", len(lines))
		}
	})
}

func TestWriteTransactionsPDF(t *testing.T) {
	t.Run("produces a pdf document", func(t *testing.T) {
		var buf bytes.Buffer
		summary := PDFSummary{
			TotalIncome:   decimal.RequireFromString("1000"),
			TotalExpenses: decimal.RequireFromString("42.5"),
			Net:           decimal.RequireFromString("957.5"),
		}

		if err := WriteTransactionsPDF(&buf, "alex", summary, sampleTransactions(t)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
			t.Error("expected output to start with %PDF marker")
		}
	})

	t.Run("empty set still renders title and summary", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteTransactionsPDF(&buf, "alex", PDFSummary{
			TotalIncome:   decimal.Zero,
			TotalExpenses: decimal.Zero,
			Net:           decimal.Zero,
		}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.Len() == 0 {
			t.Error("expected non-empty output")
		}
	})
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 15, "short"},
		{"a very long category name", 15, "a very long cat"},
		{"", 15, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

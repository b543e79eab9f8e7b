package models_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SKnight-7/BudgetsApp/internal/models"
)

func TestNewTransaction(t *testing.T) {
	t.Parallel()

	transaction, err := models.NewTransaction("42", "2024-03-02", "-45.00", "STARBUCKS #123", "Groceries", "march.csv")
	require.NoError(t, err)

	assert.Equal(t, uint64(42), transaction.Number)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), transaction.Date)
	assert.True(t, decimal.NewFromInt(-45).Equal(transaction.Amount), "sign of the amount is preserved")
	assert.Equal(t, "STARBUCKS #123", transaction.Description)
	assert.Equal(t, "Groceries", transaction.Category)
	assert.Equal(t, "march.csv", transaction.SourceFile)
}

func TestNewTransactionDefaultCategory(t *testing.T) {
	t.Parallel()

	transaction, err := models.NewTransaction("1", "2024-01-15", "12.34", "VENDING MACHINE", "", "jan.csv")
	require.NoError(t, err)
	assert.Equal(t, models.Uncategorized, transaction.Category)
}

func TestNewTransactionInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		number string
		date   string
		amount string
	}{
		{"non-numeric number", "one", "2024-01-15", "1"},
		{"negative number", "-1", "2024-01-15", "1"},
		{"bank date layout rejected", "1", "3/2/2024", "1"},
		{"nonsense date", "1", "2024-13-45", "1"},
		{"currency symbol in amount", "1", "2024-01-15", "$45.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := models.NewTransaction(tt.number, tt.date, tt.amount, "desc", "", "f.csv")
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestTransactionAmountRounded(t *testing.T) {
	t.Parallel()

	transaction, err := models.NewTransaction("1", "2024-01-15", "10.555", "x", "", "f.csv")
	require.NoError(t, err)
	assert.Equal(t, "10.56", transaction.Amount.StringFixed(2))
}

func TestTransactionString(t *testing.T) {
	t.Parallel()

	transaction, err := models.NewTransaction("3", "2024-02-01", "-20", "SAFEWAY #55", "Groceries", "feb.csv")
	require.NoError(t, err)

	assert.Equal(t, "Source: feb.csv\nTransaction Number: 3\nDate: 2024-02-01\nAmount: -20.00\nDescription: SAFEWAY #55\nCategory: Groceries", transaction.String())
}

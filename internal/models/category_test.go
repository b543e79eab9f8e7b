package models_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SKnight-7/BudgetsApp/internal/models"
)

func TestNewBudgetCategory(t *testing.T) {
	t.Parallel()

	category, err := models.NewBudgetCategory("Food & Dining", "Groceries", "Safeway|trader joe| co-op ", "7", "250.5", "7")
	require.NoError(t, err)

	assert.Equal(t, "Food & Dining", category.Classification)
	assert.Equal(t, "Groceries", category.Name)
	assert.Equal(t, []string{"safeway", "trader joe", " co-op "}, category.Keywords, "keywords are lowercased, inner whitespace preserved")
	assert.Equal(t, 7, category.OptionNumber)
	assert.True(t, decimal.NewFromFloat(250.50).Equal(category.BudgetedAmount))
	assert.Equal(t, 7, category.SearchOrder)
}

func TestNewBudgetCategoryInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		categoryName   string
		keywords       string
		optionNumber   string
		budgetedAmount string
		searchOrder    string
	}{
		{"empty name", "", "a", "1", "0", "1"},
		{"non-numeric option number", "Groceries", "a", "seven", "0", "1"},
		{"negative option number", "Groceries", "a", "-1", "0", "1"},
		{"non-numeric search order", "Groceries", "a", "1", "0", "first"},
		{"negative search order", "Groceries", "a", "1", "0", "-2"},
		{"non-numeric amount", "Groceries", "a", "1", "$25.75", "1"},
		{"negative amount", "Groceries", "a", "1", "-10", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := models.NewBudgetCategory("Other", tt.categoryName, tt.keywords, tt.optionNumber, tt.budgetedAmount, tt.searchOrder)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestBudgetCategoryEmptyKeywordsDropped(t *testing.T) {
	t.Parallel()

	category, err := models.NewBudgetCategory("Other", "Laundry", "csc||", "19", "0", "19")
	require.NoError(t, err)
	assert.Equal(t, []string{"csc"}, category.Keywords)
}

func TestBudgetCategoryString(t *testing.T) {
	t.Parallel()

	category, err := models.NewBudgetCategory("Income", "Paycheck", "payroll", "1", "1200", "1")
	require.NoError(t, err)

	assert.Equal(t, "General Classification: Income\nBudget Category: Paycheck\nKeywords: payroll\nOption Number: 1\nAmount Budgeted: 1200.00\nSearch Order: 1", category.String())
}

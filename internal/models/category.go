package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Uncategorized is the sentinel category for transactions whose description
// matches no category keyword.
const Uncategorized = "Uncategorized"

// BudgetCategory is one user-defined spending or income bucket with the
// keywords used to match transaction descriptions against it.
//
// Both the persisted store and user input provide data as strings, so
// NewBudgetCategory is the single place where fields are coerced to their
// semantic types. There are no setters that bypass validation.
type BudgetCategory struct {
	Classification string          `json:"classification"`
	Name           string          `json:"name"`
	Keywords       []string        `json:"keywords"`
	OptionNumber   int             `json:"optionNumber"`
	BudgetedAmount decimal.Decimal `json:"budgetedAmount"`
	SearchOrder    int             `json:"searchOrder"`
}

// NewBudgetCategory builds a BudgetCategory from its string representation.
//
// Keywords are "|"-separated. They are matched case-insensitively, so they
// are lowercased once here. Whitespace inside keywords is significant, e.g.
// " rt " only matches the abbreviation, not words containing "rt".
func NewBudgetCategory(classification, name, keywords, optionNumber, budgetedAmount, searchOrder string) (BudgetCategory, error) {
	if name == "" {
		return BudgetCategory{}, fmt.Errorf("%w: the category name must not be empty", ErrValidation)
	}

	option, err := strconv.Atoi(optionNumber)
	if err != nil || option < 0 {
		return BudgetCategory{}, fmt.Errorf("%w: the option number must be a non-negative integer, got %q", ErrValidation, optionNumber)
	}

	order, err := strconv.Atoi(searchOrder)
	if err != nil || order < 0 {
		return BudgetCategory{}, fmt.Errorf("%w: the search order must be a non-negative integer, got %q", ErrValidation, searchOrder)
	}

	amount, err := decimal.NewFromString(budgetedAmount)
	if err != nil {
		return BudgetCategory{}, fmt.Errorf("%w: the budgeted amount must be a plain number without a currency symbol (ex: 25.75, not $25.75), got %q", ErrValidation, budgetedAmount)
	}
	if amount.IsNegative() {
		return BudgetCategory{}, fmt.Errorf("%w: the budgeted amount must not be negative, got %q", ErrValidation, budgetedAmount)
	}

	// An empty keyword would match every description
	var list []string
	for _, keyword := range strings.Split(strings.ToLower(keywords), "|") {
		if keyword != "" {
			list = append(list, keyword)
		}
	}

	return BudgetCategory{
		Classification: classification,
		Name:           name,
		Keywords:       list,
		OptionNumber:   option,
		BudgetedAmount: amount.Round(2),
		SearchOrder:    order,
	}, nil
}

// String renders all labeled attributes for display.
func (c BudgetCategory) String() string {
	return fmt.Sprintf("General Classification: %s\nBudget Category: %s\nKeywords: %s\nOption Number: %d\nAmount Budgeted: %s\nSearch Order: %d",
		c.Classification, c.Name, strings.Join(c.Keywords, "|"), c.OptionNumber, c.BudgetedAmount.StringFixed(2), c.SearchOrder)
}

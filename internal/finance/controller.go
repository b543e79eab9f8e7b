// Package finance orchestrates the budget and transaction managers. It is
// the single entry point for every boundary layer (CLI and HTTP API) and
// keeps categorization, aggregation and recategorization consistent across
// the two independently persisted stores.
package finance

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/SKnight-7/BudgetsApp/internal/budget"
	"github.com/SKnight-7/BudgetsApp/internal/transactions"
)

// Controller holds references to both managers. It owns neither collection
// and never duplicates their state.
type Controller struct {
	budgets *budget.Manager
	ledger  *transactions.Manager
}

// New constructs a Controller and loads both stores. A corrupt store fails
// construction; missing stores have already been bootstrapped by the
// managers' Load.
func New(budgets *budget.Manager, ledger *transactions.Manager) (*Controller, error) {
	if err := budgets.Load(); err != nil {
		return nil, fmt.Errorf("loading budgets: %w", err)
	}
	if err := ledger.Load(); err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}

	return &Controller{budgets: budgets, ledger: ledger}, nil
}

// Budgets exposes the budget manager for read access by boundary layers.
func (c *Controller) Budgets() *budget.Manager {
	return c.budgets
}

// Transactions exposes the transactions manager for read access by
// boundary layers.
func (c *Controller) Transactions() *transactions.Manager {
	return c.ledger
}

// CalculateTotalsByCategory recomputes both accumulation maps from scratch.
// Bank exports record credits as positive and debits as negative amounts,
// so each transaction is attributed by sign: credits accumulate as income,
// debits as expenditure with the sign flipped to positive. Only the two
// aggregate maps change; transactions and budgeted amounts are untouched.
func (c *Controller) CalculateTotalsByCategory() {
	c.budgets.ResetTotals()

	for _, transaction := range c.ledger.All(transactions.SortByNumber) {
		if transaction.Amount.IsNegative() {
			c.budgets.AddExpenditure(transaction.Category, transaction.Amount.Neg())
		} else {
			c.budgets.AddIncome(transaction.Category, transaction.Amount)
		}
	}
}

// ViewCurrentBudgets recalculates the totals and returns the budget
// display including actuals.
func (c *Controller) ViewCurrentBudgets() string {
	c.CalculateTotalsByCategory()
	return c.budgets.FormatDisplay(true, c.ledger.SourceFile())
}

// UpdateBudgets replaces the budgeted amount of one category.
func (c *Controller) UpdateBudgets(name string, amount decimal.Decimal) error {
	return c.budgets.UpdateAmount(name, amount)
}

// CategorizeAllTransactions reclassifies every transaction from its
// description and persists the transaction store.
func (c *Controller) CategorizeAllTransactions() error {
	for _, transaction := range c.ledger.All(transactions.SortByNumber) {
		if err := c.ledger.SetCategory(transaction.Number, c.budgets.Categorize(transaction.Description)); err != nil {
			return err
		}
	}
	return c.ledger.Save()
}

// ProcessUserTransactions ingests the raw rows of an externally supplied
// bank export, categorizes everything, persists the transaction store and
// recalculates the totals. On a parse failure nothing is committed, in
// memory or on disk.
func (c *Controller) ProcessUserTransactions(rows [][]string, fileName string) error {
	importID := uuid.NewString()

	count, err := c.ledger.IngestExternal(rows, fileName)
	if err != nil {
		return err
	}

	if err := c.CategorizeAllTransactions(); err != nil {
		return err
	}
	c.CalculateTotalsByCategory()

	log.Info().
		Str("import-id", importID).
		Str("file", fileName).
		Int("transactions", count).
		Msg("bank export processed")
	return nil
}

// FormatTransactions returns the transaction display ordered by the
// requested attribute.
func (c *Controller) FormatTransactions(by transactions.SortBy) string {
	return c.ledger.FormatDisplay(by)
}

// RecategorizeTransaction reassigns one transaction to a category chosen
// by the user, persists the transaction store and recalculates the totals.
// Both the transaction number and the category name must exist; nothing
// else about the transaction changes.
func (c *Controller) RecategorizeTransaction(number uint64, newCategory string) error {
	if _, err := c.ledger.GetByNumber(number); err != nil {
		return err
	}
	if _, err := c.budgets.Category(newCategory); err != nil {
		return err
	}

	if err := c.ledger.SetCategory(number, newCategory); err != nil {
		return err
	}
	if err := c.ledger.Save(); err != nil {
		return err
	}
	c.CalculateTotalsByCategory()

	log.Debug().Uint64("transaction", number).Str("category", newCategory).Msg("transaction recategorized")
	return nil
}

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SKnight-7/BudgetsApp/internal/budget"
	"github.com/SKnight-7/BudgetsApp/internal/finance"
	"github.com/SKnight-7/BudgetsApp/internal/transactions"
)

func newController(t *testing.T) *finance.Controller {
	t.Helper()

	dir := t.TempDir()
	controller, err := finance.New(
		budget.NewManager(filepath.Join(dir, "current_budgets.csv")),
		transactions.NewManager(filepath.Join(dir, "last_uploaded_transactions.csv")),
	)
	require.NoError(t, err)
	return controller
}

// run feeds the script to a fresh CLI and returns everything it printed.
// Each script entry is one line of user input.
func run(t *testing.T, controller *finance.Controller, script ...string) string {
	t.Helper()

	var out strings.Builder
	cli := New(controller, strings.NewReader(strings.Join(script, "\n")+"\n"), &out)
	require.NoError(t, cli.Run())
	return out.String()
}

func TestRunQuits(t *testing.T) {
	out := run(t, newController(t), "q")

	assert.Contains(t, out, "BUDGETS APP")
	assert.Contains(t, out, "MAIN MENU")
	assert.Contains(t, out, "1 - View current budgets")
	assert.Contains(t, out, "6 - Recategorize transactions")
	assert.Contains(t, out, "Goodbye!")
}

func TestRunEndOfInputQuits(t *testing.T) {
	var out strings.Builder
	cli := New(newController(t), strings.NewReader(""), &out)
	require.NoError(t, cli.Run())
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestRunInvalidOption(t *testing.T) {
	out := run(t, newController(t), "77", "q")
	assert.Contains(t, out, "Invalid option, please try again.")
}

func TestViewCurrentBudgets(t *testing.T) {
	out := run(t, newController(t), "1", "q")
	assert.Contains(t, out, "There are no budgets to display.", "all defaults start at zero")
}

func TestUpdateBudgets(t *testing.T) {
	controller := newController(t)

	// Option 2, pick Groceries (7), set 400, quit out of both menus
	out := run(t, controller, "2", "7", "400", "q", "q")

	assert.Contains(t, out, "AVAILABLE CATEGORIES")
	assert.Contains(t, out, "7 - Groceries")
	assert.Contains(t, out, "budget amount for Groceries")

	category, err := controller.Budgets().Category("Groceries")
	require.NoError(t, err)
	assert.Equal(t, "400.00", category.BudgetedAmount.StringFixed(2))
}

func TestUpdateBudgetsRejectsBadInput(t *testing.T) {
	controller := newController(t)

	out := run(t, controller, "2", "notanumber", "7", "abc", "-5", "q", "q", "q")

	assert.Contains(t, out, "Invalid option, please try again.")
	assert.Contains(t, out, "Invalid entry")
	assert.Contains(t, out, "Budget amount must be 0.00 or greater")

	category, err := controller.Budgets().Category("Groceries")
	require.NoError(t, err)
	assert.True(t, category.BudgetedAmount.IsZero(), "nothing was updated")
}

func TestLoadTransactions(t *testing.T) {
	controller := newController(t)

	// The CLI resolves file names relative to the working directory
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	content := "3/2/2024,-45.00,*,,STARBUCKS #123\n3/5/2024,1200.00,*,,ACME PAYROLL\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "march.csv"), []byte(content), 0o644))

	out := run(t, controller, "3", "march", "q")

	assert.Contains(t, out, "YOUR CURRENT BUDGETS")
	assert.Equal(t, 3, controller.Transactions().Count(), "the bootstrap sample plus two imported rows")
}

func TestLoadTransactionsMissingFile(t *testing.T) {
	out := run(t, newController(t), "3", "nope", "q", "q")
	assert.Contains(t, out, "The file 'nope.csv' is invalid.")
}

func TestRecategorizeTransactions(t *testing.T) {
	controller := newController(t)
	require.NoError(t, controller.ProcessUserTransactions([][]string{
		{"3/9/2024", "-33.00", "*", "", "ZZZQQQ VENDOR"},
	}, "march.csv"))

	// Option 6, transaction 1, category option 7 (Groceries), quit
	out := run(t, controller, "6", "1", "7", "q", "q")

	assert.Contains(t, out, "LAST UPLOADED TRANSACTIONS")
	assert.Contains(t, out, "AVAILABLE CATEGORIES")

	transaction, err := controller.Transactions().GetByNumber(1)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", transaction.Category)
}

func TestRecategorizeTransactionsBadNumber(t *testing.T) {
	out := run(t, newController(t), "6", "999", "q", "q")
	assert.Contains(t, out, "Invalid transaction number. Please try again.")
}

func TestBudgetMenuGroupsByClassification(t *testing.T) {
	controller := newController(t)

	menu := budgetMenu(controller.Budgets().Categories())

	assert.Contains(t, menu, "Income:")
	assert.Contains(t, menu, "    1 - Paycheck")
	assert.Contains(t, menu, "Food & Dining:")
	assert.Contains(t, menu, "    7 - Groceries")
	assert.Equal(t, 1, strings.Count(menu, "Income:"), "each classification heading appears once")
}

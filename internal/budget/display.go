package budget

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/SKnight-7/BudgetsApp/internal/models"
)

const incomeClassification = "Income"

var displayPrinter = message.NewPrinter(language.English)

// money renders an amount with thousands separators for the tabular
// displays, e.g. 1,234.50.
func money(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	return displayPrinter.Sprintf("%.2f", f)
}

// FormatDisplay renders the budgets as tabular text: one table for income
// categories and one for expense categories. With includeActuals the
// accumulated income and expenditure are shown next to the budgeted
// amounts, and a category appears if its budget or its activity is nonzero.
// Without actuals only budgeted amounts are shown and zero-budget
// categories are skipped.
func (m *Manager) FormatDisplay(includeActuals bool, transactionsSource string) string {
	var incomeRows, expenseRows [][]string
	totalExpected := decimal.Zero
	totalReceived := decimal.Zero
	totalBudgeted := decimal.Zero
	totalExpended := decimal.Zero

	for _, category := range m.Categories() {
		if category.Classification == incomeClassification {
			received := m.income[category.Name]
			if category.BudgetedAmount.IsZero() && (received.IsZero() || !includeActuals) {
				continue
			}
			totalExpected = totalExpected.Add(category.BudgetedAmount)
			totalReceived = totalReceived.Add(received)

			row := []string{category.Name, money(category.BudgetedAmount)}
			if includeActuals {
				row = append(row, money(received), money(category.BudgetedAmount.Sub(received)))
			}
			incomeRows = append(incomeRows, row)
			continue
		}

		expended := m.expenditure[category.Name]
		if category.BudgetedAmount.IsZero() && (expended.IsZero() || !includeActuals) {
			continue
		}
		totalBudgeted = totalBudgeted.Add(category.BudgetedAmount)
		totalExpended = totalExpended.Add(expended)

		row := []string{category.Name, money(category.BudgetedAmount)}
		if includeActuals {
			row = append(row, money(expended), money(category.BudgetedAmount.Sub(expended)))
		}
		expenseRows = append(expenseRows, row)
	}

	if len(incomeRows) == 0 && len(expenseRows) == 0 {
		return "\nThere are no budgets to display.\n"
	}

	incomeHeader := []string{"Income Category", "Expected"}
	expenseHeader := []string{"Budget Category", "Budgeted"}
	if includeActuals {
		incomeHeader = append(incomeHeader, "Received", "Pending")
		expenseHeader = append(expenseHeader, "Expended", "Remaining")
	}

	var b strings.Builder

	fmt.Fprintf(&b, "\nYOUR CURRENT BUDGETS\nBased on transactions from: %s\n\n", orNA(transactionsSource))

	b.WriteString(renderTable(incomeHeader, incomeRows))
	fmt.Fprintf(&b, "Total Expected Income: $%s\n", money(totalExpected))
	if includeActuals {
		fmt.Fprintf(&b, "Total Received: $%s\n", money(totalReceived))
	}
	fmt.Fprintf(&b, "Available to allocate: $%s\n", money(totalExpected.Sub(totalBudgeted)))

	b.WriteString("\n")
	b.WriteString(renderTable(expenseHeader, expenseRows))
	if includeActuals {
		fmt.Fprintf(&b, "Uncategorized: $%s\n", money(m.expenditure[models.Uncategorized]))
	}
	fmt.Fprintf(&b, "\nTotal Budgeted: $%s\n", money(totalBudgeted))
	if includeActuals {
		fmt.Fprintf(&b, "Total Expended: $%s\n", money(totalExpended))
		fmt.Fprintf(&b, "Unspent balance: $%s\n", money(totalBudgeted.Sub(totalExpended)))
	}

	return b.String()
}

func renderTable(header []string, rows [][]string) string {
	var b strings.Builder

	alignment := []int{tablewriter.ALIGN_LEFT}
	for range header[1:] {
		alignment = append(alignment, tablewriter.ALIGN_RIGHT)
	}

	table := tablewriter.NewWriter(&b)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment(alignment)
	table.AppendBulk(rows)
	table.Render()

	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

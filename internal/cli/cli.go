// Package cli is the interactive menu boundary over the financial
// controller. It owns all prompting, input validation and command
// dispatch; the core only ever receives validated values.
package cli

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SKnight-7/BudgetsApp/internal/finance"
	"github.com/SKnight-7/BudgetsApp/internal/transactions"
)

const title = `
BUDGETS APP
Track your budgets against your bank's exported transactions.
`

// quit is the command that leaves the current menu.
const quit = "q"

// CLI runs the interactive menu loop. Input and output are injected so
// tests can drive it.
type CLI struct {
	controller *finance.Controller
	in         *bufio.Scanner
	out        io.Writer
}

// New returns a CLI reading commands from in and writing to out.
func New(controller *finance.Controller, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		controller: controller,
		in:         bufio.NewScanner(in),
		out:        out,
	}
}

// Run shows the main menu until the user quits or input ends.
func (c *CLI) Run() error {
	fmt.Fprintf(c.out, "%s\n", title)

	for {
		fmt.Fprintln(c.out, mainMenu)

		selection, ok := c.prompt("Please enter option number or 'q' to exit: ")
		if !ok {
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		}

		switch selection {
		case "1":
			fmt.Fprintln(c.out, c.controller.ViewCurrentBudgets())
		case "2":
			fmt.Fprintln(c.out, c.controller.ViewCurrentBudgets())
			c.updateBudgets()
		case "3":
			c.loadTransactions()
		case "4":
			fmt.Fprintln(c.out, c.controller.FormatTransactions(transactions.SortByCategory))
		case "5":
			fmt.Fprintln(c.out, c.controller.FormatTransactions(transactions.SortByNumber))
		case "6":
			c.recategorizeTransactions()
		default:
			fmt.Fprintln(c.out, "Invalid option, please try again.")
		}
	}
}

// prompt reads one line of input. The second return value is false when
// the user entered the quit command or input ended.
func (c *CLI) prompt(message string) (string, bool) {
	fmt.Fprint(c.out, message)
	if !c.in.Scan() {
		return "", false
	}

	line := strings.TrimSpace(c.in.Text())
	if strings.EqualFold(line, quit) {
		return "", false
	}
	return line, true
}

// updateBudgets lets the user pick categories and set new budgeted
// amounts until they quit back to the main menu.
func (c *CLI) updateBudgets() {
	for {
		fmt.Fprintln(c.out, budgetMenu(c.controller.Budgets().Categories()))
		fmt.Fprintln(c.out, "Please select a budget to update. To delete a budget, please update the budgeted amount to 0")

		selection, ok := c.prompt("Enter option number of selected budget category or 'q' to exit: ")
		if !ok {
			return
		}

		option, err := strconv.Atoi(selection)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid option, please try again.")
			continue
		}
		category, err := c.controller.Budgets().CategoryByOption(option)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid option, please try again.")
			continue
		}

		for {
			input, ok := c.prompt(fmt.Sprintf("Please enter a budget amount for %s in the format #####.## or 'q' to choose a different category:\n", category.Name))
			if !ok {
				break
			}

			amount, err := decimal.NewFromString(input)
			if err != nil {
				fmt.Fprintln(c.out, "Invalid entry")
				continue
			}
			if amount.IsNegative() {
				fmt.Fprintln(c.out, "Budget amount must be 0.00 or greater")
				continue
			}

			if err := c.controller.UpdateBudgets(category.Name, amount); err != nil {
				fmt.Fprintln(c.out, err.Error())
				continue
			}

			fmt.Fprintln(c.out, c.controller.ViewCurrentBudgets())
			break
		}
	}
}

// loadTransactions prompts for a bank export in the working directory,
// validates that it exists and hands its rows to the controller.
func (c *CLI) loadTransactions() {
	fmt.Fprintln(c.out, "Please enter the name of a CSV file located in this project folder or 'q' to return to main menu.")

	for {
		name, ok := c.prompt("Filename: ")
		if !ok {
			return
		}

		// Only CSV files are accepted, so look for the given name as one
		if !strings.HasSuffix(strings.ToLower(name), ".csv") {
			name += ".csv"
		}
		if _, err := os.Stat(name); err != nil {
			fmt.Fprintf(c.out, "The file '%s' is invalid. Please try again, or enter 'q' to return to main menu:\n", name)
			continue
		}

		rows, err := readCSV(name)
		if err != nil {
			fmt.Fprintln(c.out, "There was a problem uploading the data. Please try again or select a different file uploaded to the project folder.")
			continue
		}

		if err := c.controller.ProcessUserTransactions(rows, name); err != nil {
			fmt.Fprintln(c.out, err.Error())
			fmt.Fprintln(c.out, "There was a problem uploading the data. Please try again or select a different file uploaded to the project folder.")
			continue
		}

		fmt.Fprintln(c.out, c.controller.ViewCurrentBudgets())
		return
	}
}

// recategorizeTransactions lets the user move transactions between
// categories one at a time until they quit back to the main menu.
func (c *CLI) recategorizeTransactions() {
	for {
		fmt.Fprintln(c.out, c.controller.FormatTransactions(transactions.SortByCategory))

		selection, ok := c.prompt("Enter transaction number or 'q' to exit: ")
		if !ok {
			return
		}

		number, err := strconv.ParseUint(selection, 10, 64)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid transaction number. Please try again.")
			continue
		}
		if _, err := c.controller.Transactions().GetByNumber(number); err != nil {
			fmt.Fprintln(c.out, "Invalid transaction number. Please try again.")
			continue
		}

		for {
			fmt.Fprintln(c.out, budgetMenu(c.controller.Budgets().Categories()))

			input, ok := c.prompt("Enter option number of selected budget category or 'q' to exit: ")
			if !ok {
				break
			}

			option, err := strconv.Atoi(input)
			if err != nil {
				fmt.Fprintln(c.out, "Please select from the available categories")
				continue
			}
			category, err := c.controller.Budgets().CategoryByOption(option)
			if err != nil {
				fmt.Fprintln(c.out, "Please select from the available categories")
				continue
			}

			if err := c.controller.RecategorizeTransaction(number, category.Name); err != nil {
				fmt.Fprintln(c.out, err.Error())
				break
			}

			fmt.Fprintln(c.out, c.controller.ViewCurrentBudgets())
			break
		}
	}
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

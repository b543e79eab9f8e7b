package cli

import (
	"fmt"
	"strings"

	"github.com/SKnight-7/BudgetsApp/internal/models"
)

// menuOption is one selectable entry of a menu, grouped under its
// classification for display.
type menuOption struct {
	classification string
	title          string
	number         int
}

// renderMenu renders menu options grouped by classification, in option
// number order. The classification heading is only printed when it
// changes, which works because options of one classification carry
// consecutive numbers.
func renderMenu(title string, options []menuOption) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\n", title)

	current := ""
	for _, option := range options {
		if option.classification != current {
			fmt.Fprintf(&b, "\n%s:\n", option.classification)
			current = option.classification
		}
		fmt.Fprintf(&b, "    %d - %s\n", option.number, option.title)
	}

	return b.String()
}

// budgetMenu builds the category selection menu from the live collection.
func budgetMenu(categories []models.BudgetCategory) string {
	options := make([]menuOption, 0, len(categories))
	for _, category := range categories {
		options = append(options, menuOption{
			classification: category.Classification,
			title:          category.Name,
			number:         category.OptionNumber,
		})
	}

	return renderMenu("AVAILABLE CATEGORIES", options)
}

// mainMenu is the top-level command menu.
var mainMenu = renderMenu("MAIN MENU", []menuOption{
	{"Budget Options", "View current budgets", 1},
	{"Budget Options", "Update budgets", 2},
	{"Transaction Options", "Choose a CSV transaction file to load", 3},
	{"Transaction Options", "View transactions by category", 4},
	{"Transaction Options", "View transactions in original order", 5},
	{"Transaction Options", "Recategorize transactions", 6},
})

package storage

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/SKnight-7/BudgetsApp/internal/models"
)

var budgetHeader = []string{"classification", "category_name", "keywords", "option_number", "budgeted_amount", "search_order"}

// BudgetStore reads and writes the budget category store.
type BudgetStore struct {
	Path string
}

// Load reads the full store. A missing file is returned as the underlying
// fs.ErrNotExist so the manager can bootstrap; any other failure, including
// rows that do not construct a valid category or duplicate category names,
// wraps models.ErrStoreCorrupt.
func (s BudgetStore) Load() (map[string]models.BudgetCategory, error) {
	records, err := readAll(s.Path)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 || !sameFields(records[0], budgetHeader) {
		return nil, fmt.Errorf("%w: %s has no valid header row", models.ErrStoreCorrupt, s.Path)
	}

	categories := make(map[string]models.BudgetCategory, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(budgetHeader) {
			return nil, fmt.Errorf("%w: row %d of %s has %d fields, want %d", models.ErrStoreCorrupt, i+2, s.Path, len(record), len(budgetHeader))
		}

		category, err := models.NewBudgetCategory(record[0], record[1], record[2], record[3], record[4], record[5])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d of %s: %s", models.ErrStoreCorrupt, i+2, s.Path, err)
		}

		// Duplicate keys are never merged silently
		if _, ok := categories[category.Name]; ok {
			return nil, fmt.Errorf("%w: row %d of %s repeats category %q", models.ErrStoreCorrupt, i+2, s.Path, category.Name)
		}
		categories[category.Name] = category
	}

	return categories, nil
}

// Save rewrites the whole store from the collection, ordered by option
// number so the file is stable across runs.
func (s BudgetStore) Save(categories map[string]models.BudgetCategory) error {
	sorted := make([]models.BudgetCategory, 0, len(categories))
	for _, category := range categories {
		sorted = append(sorted, category)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].OptionNumber < sorted[j].OptionNumber })

	records := make([][]string, 0, len(sorted))
	for _, category := range sorted {
		records = append(records, []string{
			category.Classification,
			category.Name,
			strings.Join(category.Keywords, "|"),
			strconv.Itoa(category.OptionNumber),
			category.BudgetedAmount.StringFixed(2),
			strconv.Itoa(category.SearchOrder),
		})
	}

	return writeAtomic(s.Path, budgetHeader, records)
}

func sameFields(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

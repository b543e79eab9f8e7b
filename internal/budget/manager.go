// Package budget owns the budget category collection, its persisted store
// and the income/expenditure accumulation maps derived from transactions.
package budget

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"

	"github.com/SKnight-7/BudgetsApp/internal/models"
	"github.com/SKnight-7/BudgetsApp/internal/storage"
)

// Manager is the sole owner of the category collection and the sole writer
// of the budget store.
type Manager struct {
	store      storage.BudgetStore
	categories map[string]models.BudgetCategory

	income      map[string]decimal.Decimal
	expenditure map[string]decimal.Decimal
}

// NewManager returns a Manager persisting to the given store path. Call
// Load before anything else.
func NewManager(path string) *Manager {
	return &Manager{
		store: storage.BudgetStore{Path: path},
	}
}

// Load reads the persisted store into memory. A missing store is
// bootstrapped from the built-in default category set and written out; an
// unreadable store is fatal and surfaces models.ErrStoreCorrupt.
func (m *Manager) Load() error {
	categories, err := m.store.Load()
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("path", m.store.Path).Msg("budget store missing, bootstrapping defaults")

		categories, err = defaultCategories()
		if err != nil {
			return err
		}
		m.categories = categories
		m.resetTotals()
		return m.Save()
	}
	if err != nil {
		return err
	}

	m.categories = categories
	m.resetTotals()
	return nil
}

// Save rewrites the full store from the in-memory collection.
func (m *Manager) Save() error {
	return m.store.Save(m.categories)
}

// StorePath returns the path of the persisted store.
func (m *Manager) StorePath() string {
	return m.store.Path
}

// UpdateAmount replaces the budgeted amount of the named category and
// persists the store.
func (m *Manager) UpdateAmount(name string, amount decimal.Decimal) error {
	category, ok := m.categories[name]
	if !ok {
		return fmt.Errorf("%w budget category named %q", models.ErrNotFound, name)
	}
	if amount.IsNegative() {
		return fmt.Errorf("%w: the budgeted amount must not be negative, got %s", models.ErrValidation, amount)
	}

	category.BudgetedAmount = amount.Round(2)
	m.categories[name] = category

	log.Debug().Str("category", name).Str("amount", amount.StringFixed(2)).Msg("budget updated")
	return m.Save()
}

// Category returns the category with the given name.
func (m *Manager) Category(name string) (models.BudgetCategory, error) {
	category, ok := m.categories[name]
	if !ok {
		return models.BudgetCategory{}, fmt.Errorf("%w budget category named %q", models.ErrNotFound, name)
	}
	return category, nil
}

// CategoryByOption returns the category with the given option number.
func (m *Manager) CategoryByOption(option int) (models.BudgetCategory, error) {
	for _, category := range m.categories {
		if category.OptionNumber == option {
			return category, nil
		}
	}
	return models.BudgetCategory{}, fmt.Errorf("%w budget category with option number %d", models.ErrNotFound, option)
}

// Categories returns all categories ordered by option number.
func (m *Manager) Categories() []models.BudgetCategory {
	categories := make([]models.BudgetCategory, 0, len(m.categories))
	for _, category := range m.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].OptionNumber < categories[j].OptionNumber })
	return categories
}

// Categorize classifies a transaction description. Categories are checked
// in ascending search order, their keywords in declared order, and the
// first case-insensitive substring match wins. Ties on search order are
// broken by ascending option number so the result never depends on map
// iteration order. Descriptions matching no keyword are Uncategorized.
func (m *Manager) Categorize(description string) string {
	sorted := make([]models.BudgetCategory, 0, len(m.categories))
	for _, category := range m.categories {
		sorted = append(sorted, category)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].SearchOrder != sorted[j].SearchOrder {
			return sorted[i].SearchOrder < sorted[j].SearchOrder
		}
		return sorted[i].OptionNumber < sorted[j].OptionNumber
	})

	lowered := strings.ToLower(description)
	for _, category := range sorted {
		for _, keyword := range category.Keywords {
			if glob.Glob("*"+keyword+"*", lowered) {
				return category.Name
			}
		}
	}

	return models.Uncategorized
}

// resetTotals re-seeds both accumulation maps with a zero entry for every
// known category plus the Uncategorized sentinel.
func (m *Manager) resetTotals() {
	m.income = make(map[string]decimal.Decimal, len(m.categories)+1)
	m.expenditure = make(map[string]decimal.Decimal, len(m.categories)+1)

	for name := range m.categories {
		m.income[name] = decimal.Zero
		m.expenditure[name] = decimal.Zero
	}
	m.income[models.Uncategorized] = decimal.Zero
	m.expenditure[models.Uncategorized] = decimal.Zero
}

// ResetTotals zeroes the accumulated income and expenditure of every known
// category.
func (m *Manager) ResetTotals() {
	m.resetTotals()
}

// AddIncome accumulates a credit under the given category. Unknown
// categories accumulate under Uncategorized.
func (m *Manager) AddIncome(category string, amount decimal.Decimal) {
	if _, ok := m.income[category]; !ok {
		category = models.Uncategorized
	}
	m.income[category] = m.income[category].Add(amount)
}

// AddExpenditure accumulates a debit under the given category. The caller
// passes the amount already sign-flipped to positive. Unknown categories
// accumulate under Uncategorized.
func (m *Manager) AddExpenditure(category string, amount decimal.Decimal) {
	if _, ok := m.expenditure[category]; !ok {
		category = models.Uncategorized
	}
	m.expenditure[category] = m.expenditure[category].Add(amount)
}

// AccumulatedIncome returns a copy of the income accumulation map.
func (m *Manager) AccumulatedIncome() map[string]decimal.Decimal {
	return copyTotals(m.income)
}

// AccumulatedExpenditure returns a copy of the expenditure accumulation map.
func (m *Manager) AccumulatedExpenditure() map[string]decimal.Decimal {
	return copyTotals(m.expenditure)
}

func copyTotals(totals map[string]decimal.Decimal) map[string]decimal.Decimal {
	c := make(map[string]decimal.Decimal, len(totals))
	for name, amount := range totals {
		c[name] = amount
	}
	return c
}

// Package transactions owns the transaction collection, its persisted
// store and the ingestion of bank-exported transaction files.
package transactions

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/SKnight-7/BudgetsApp/internal/models"
	"github.com/SKnight-7/BudgetsApp/internal/storage"
)

// Bank export files carry exactly five positional columns:
// date (M/D/Y), signed amount, a constant marker, an optional check
// number, and the description. The marker and check number are ignored.
const bankExportColumns = 5

// Manager is the sole owner of the transaction collection and the sole
// writer of the transaction store.
type Manager struct {
	store        storage.TransactionStore
	transactions map[uint64]models.Transaction

	// Name of the last externally uploaded source file. Kept per instance
	// so independent managers (e.g. in tests) do not interfere.
	sourceFile string
}

// NewManager returns a Manager persisting to the given store path. Call
// Load before anything else.
func NewManager(path string) *Manager {
	return &Manager{
		store: storage.TransactionStore{Path: path},
	}
}

// Load reads the persisted store into memory, recomputing the last-loaded
// source name from the distinct source files present. A missing store is
// bootstrapped with a single sample transaction; an unreadable one is
// fatal and surfaces models.ErrStoreCorrupt.
func (m *Manager) Load() error {
	transactions, err := m.store.Load()
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("path", m.store.Path).Msg("transaction store missing, bootstrapping sample data")

		sample, err := models.NewTransaction("0", "1900-01-01", "0", "Sample", models.Uncategorized, "sample.csv")
		if err != nil {
			return err
		}
		m.transactions = map[uint64]models.Transaction{sample.Number: sample}
		m.sourceFile = sample.SourceFile
		return m.Save()
	}
	if err != nil {
		return err
	}

	var sources []string
	seen := map[string]bool{}
	for _, transaction := range sorted(transactions, SortByNumber) {
		if !seen[transaction.SourceFile] {
			seen[transaction.SourceFile] = true
			sources = append(sources, transaction.SourceFile)
		}
	}

	m.transactions = transactions
	m.sourceFile = strings.Join(sources, ", ")
	return nil
}

// Save rewrites the full store from the in-memory collection.
func (m *Manager) Save() error {
	return m.store.Save(m.transactions)
}

// StorePath returns the path of the persisted store.
func (m *Manager) StorePath() string {
	return m.store.Path
}

// SourceFile returns the name of the last externally uploaded source file.
func (m *Manager) SourceFile() string {
	return m.sourceFile
}

// IngestExternal parses raw rows from an externally supplied bank export
// and inserts them into the collection. Every row is staged first: a row
// with the wrong column count or an unparsable date or amount fails the
// whole file with models.ErrParse and leaves the collection untouched.
//
// Transaction numbers continue monotonically from the current maximum, so
// a number is never reused even across uploads. Duplicate dates, amounts
// and descriptions are legitimate; only the number is unique. All new
// transactions start out Uncategorized.
func (m *Manager) IngestExternal(rows [][]string, sourceName string) (int, error) {
	next := m.maxNumber() + 1

	staged := make([]models.Transaction, 0, len(rows))
	for i, record := range rows {
		if len(record) != bankExportColumns {
			return 0, fmt.Errorf("%w row %d of %s: got %d columns, want %d", models.ErrParse, i+1, sourceName, len(record), bankExportColumns)
		}

		date, err := time.Parse(models.BankDateLayout, record[0])
		if err != nil {
			return 0, fmt.Errorf("%w row %d of %s: %q is not a valid M/D/Y date", models.ErrParse, i+1, sourceName, record[0])
		}

		transaction, err := models.NewTransaction(
			strconv.FormatUint(next, 10),
			date.Format(models.StoreDateLayout),
			record[1],
			record[4],
			models.Uncategorized,
			sourceName,
		)
		if err != nil {
			return 0, fmt.Errorf("%w row %d of %s: %s", models.ErrParse, i+1, sourceName, err)
		}

		staged = append(staged, transaction)
		next++
	}

	for _, transaction := range staged {
		m.transactions[transaction.Number] = transaction
	}
	m.sourceFile = sourceName

	log.Debug().Str("source", sourceName).Int("count", len(staged)).Msg("transactions ingested")
	return len(staged), nil
}

// GetByNumber returns the transaction with the given number.
func (m *Manager) GetByNumber(number uint64) (models.Transaction, error) {
	transaction, ok := m.transactions[number]
	if !ok {
		return models.Transaction{}, fmt.Errorf("%w transaction with number %d", models.ErrNotFound, number)
	}
	return transaction, nil
}

// SetCategory reassigns the category of one transaction. It is the only
// mutation of an existing transaction the manager supports; all other
// fields are fixed at ingestion.
func (m *Manager) SetCategory(number uint64, category string) error {
	transaction, ok := m.transactions[number]
	if !ok {
		return fmt.Errorf("%w transaction with number %d", models.ErrNotFound, number)
	}

	transaction.Category = category
	m.transactions[number] = transaction
	return nil
}

// All returns every transaction ordered by the requested attribute.
func (m *Manager) All(by SortBy) []models.Transaction {
	return sorted(m.transactions, by)
}

// Count returns the number of transactions in the collection.
func (m *Manager) Count() int {
	return len(m.transactions)
}

func (m *Manager) maxNumber() uint64 {
	var max uint64
	for number := range m.transactions {
		if number > max {
			max = number
		}
	}
	return max
}

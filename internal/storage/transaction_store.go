package storage

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/SKnight-7/BudgetsApp/internal/models"
)

var transactionHeader = []string{"source_file", "transaction_number", "date", "amount", "description", "category"}

// TransactionStore reads and writes the transaction store.
type TransactionStore struct {
	Path string
}

// Load reads the full store. Missing files surface as fs.ErrNotExist for
// bootstrap; malformed rows and duplicate transaction numbers wrap
// models.ErrStoreCorrupt.
func (s TransactionStore) Load() (map[uint64]models.Transaction, error) {
	records, err := readAll(s.Path)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 || !sameFields(records[0], transactionHeader) {
		return nil, fmt.Errorf("%w: %s has no valid header row", models.ErrStoreCorrupt, s.Path)
	}

	transactions := make(map[uint64]models.Transaction, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(transactionHeader) {
			return nil, fmt.Errorf("%w: row %d of %s has %d fields, want %d", models.ErrStoreCorrupt, i+2, s.Path, len(record), len(transactionHeader))
		}

		transaction, err := models.NewTransaction(record[1], record[2], record[3], record[4], record[5], record[0])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d of %s: %s", models.ErrStoreCorrupt, i+2, s.Path, err)
		}

		if _, ok := transactions[transaction.Number]; ok {
			return nil, fmt.Errorf("%w: row %d of %s repeats transaction number %d", models.ErrStoreCorrupt, i+2, s.Path, transaction.Number)
		}
		transactions[transaction.Number] = transaction
	}

	return transactions, nil
}

// Save rewrites the whole store from the collection in transaction number
// order.
func (s TransactionStore) Save(transactions map[uint64]models.Transaction) error {
	sorted := make([]models.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		sorted = append(sorted, transaction)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Number < sorted[j].Number })

	records := make([][]string, 0, len(sorted))
	for _, transaction := range sorted {
		records = append(records, []string{
			transaction.SourceFile,
			strconv.FormatUint(transaction.Number, 10),
			transaction.Date.Format(models.StoreDateLayout),
			transaction.Amount.StringFixed(2),
			transaction.Description,
			transaction.Category,
		})
	}

	return writeAtomic(s.Path, transactionHeader, records)
}

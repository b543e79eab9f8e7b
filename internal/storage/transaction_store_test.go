package storage_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SKnight-7/BudgetsApp/internal/models"
	"github.com/SKnight-7/BudgetsApp/internal/storage"
)

func transactionFixture(t *testing.T) map[uint64]models.Transaction {
	t.Helper()

	transactions := make(map[uint64]models.Transaction)
	for _, fields := range [][]string{
		{"1", "2024-03-02", "-45.00", "STARBUCKS #123", "Groceries", "march.csv"},
		{"2", "2024-03-05", "1200.00", "ACME PAYROLL", "Paycheck", "march.csv"},
		{"3", "2024-03-09", "-12.50", "SOME NEW SHOP", models.Uncategorized, "march.csv"},
	} {
		transaction, err := models.NewTransaction(fields[0], fields[1], fields[2], fields[3], fields[4], fields[5])
		require.NoError(t, err)
		transactions[transaction.Number] = transaction
	}

	return transactions
}

func TestTransactionStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := storage.TransactionStore{Path: filepath.Join(t.TempDir(), "last_uploaded_transactions.csv")}
	transactions := transactionFixture(t)

	require.NoError(t, store.Save(transactions))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, len(transactions), len(loaded))
	for number, transaction := range transactions {
		got, ok := loaded[number]
		require.True(t, ok, "transaction %d survives the round trip", number)
		assert.True(t, transaction.Date.Equal(got.Date))
		assert.True(t, transaction.Amount.Equal(got.Amount))
		assert.Equal(t, transaction.Description, got.Description)
		assert.Equal(t, transaction.Category, got.Category)
		assert.Equal(t, transaction.SourceFile, got.SourceFile)
	}
}

func TestTransactionStoreMissingFile(t *testing.T) {
	t.Parallel()

	store := storage.TransactionStore{Path: filepath.Join(t.TempDir(), "nope.csv")}
	_, err := store.Load()
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestTransactionStoreCorrupt(t *testing.T) {
	t.Parallel()

	header := "source_file,transaction_number,date,amount,description,category\n"

	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"wrong header", "number,amount\n1,100\n"},
		{"missing fields", header + "march.csv,1,2024-03-02\n"},
		{"bank layout date", header + "march.csv,1,3/2/2024,-45.00,STARBUCKS #123,Groceries\n"},
		{"invalid amount", header + "march.csv,1,2024-03-02,$45,STARBUCKS #123,Groceries\n"},
		{"duplicate transaction number", header + "march.csv,1,2024-03-02,-45.00,STARBUCKS #123,Groceries\nmarch.csv,1,2024-03-03,-5.00,QFC,Groceries\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "last_uploaded_transactions.csv")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := storage.TransactionStore{Path: path}.Load()
			assert.ErrorIs(t, err, models.ErrStoreCorrupt)
		})
	}
}

func TestTransactionStoreDescriptionWithCommaAndQuotes(t *testing.T) {
	t.Parallel()

	store := storage.TransactionStore{Path: filepath.Join(t.TempDir(), "last_uploaded_transactions.csv")}

	transaction, err := models.NewTransaction("1", "2024-03-02", "-9.99", `JOE'S "BEST" PIZZA, SEATTLE`, "", "march.csv")
	require.NoError(t, err)
	require.NoError(t, store.Save(map[uint64]models.Transaction{1: transaction}))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, `JOE'S "BEST" PIZZA, SEATTLE`, loaded[1].Description)
}

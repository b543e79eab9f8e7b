package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Date layouts used at the system boundaries.
const (
	// StoreDateLayout is the canonical ISO encoding used by the
	// transaction store and all displays.
	StoreDateLayout = "2006-01-02"

	// BankDateLayout is the month/day/year encoding of bank export files.
	// time.Parse accepts both padded and unpadded fields with it.
	BankDateLayout = "1/2/2006"
)

// Transaction is one ledger line item, either read back from the internal
// store or ingested from a bank export.
//
// NewTransaction is the only construction path; see BudgetCategory for the
// reasoning. The amount keeps the sign exactly as supplied: positive means
// money coming into the account, negative means money going out.
type Transaction struct {
	SourceFile  string          `json:"sourceFile"`
	Number      uint64          `json:"number"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
}

// NewTransaction builds a Transaction from its string representation. The
// date must already be in canonical ISO form; normalizing bank export dates
// is the ingestion boundary's job. An empty category defaults to
// Uncategorized.
func NewTransaction(number, date, amount, description, category, sourceFile string) (Transaction, error) {
	n, err := strconv.ParseUint(number, 10, 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: the transaction number must be a non-negative integer, got %q", ErrValidation, number)
	}

	d, err := time.Parse(StoreDateLayout, date)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: the date must be a valid date in YYYY-MM-DD format, got %q", ErrValidation, date)
	}

	a, err := decimal.NewFromString(amount)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: the amount must be a plain number without a currency symbol (ex: 25.75, not $25.75), got %q", ErrValidation, amount)
	}

	if category == "" {
		category = Uncategorized
	}

	return Transaction{
		SourceFile:  sourceFile,
		Number:      n,
		Date:        d,
		Amount:      a.Round(2),
		Description: description,
		Category:    category,
	}, nil
}

// String renders all labeled attributes for display.
func (t Transaction) String() string {
	return fmt.Sprintf("Source: %s\nTransaction Number: %d\nDate: %s\nAmount: %s\nDescription: %s\nCategory: %s",
		t.SourceFile, t.Number, t.Date.Format(StoreDateLayout), t.Amount.StringFixed(2), t.Description, t.Category)
}

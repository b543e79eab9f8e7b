package transactions

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"

	"github.com/SKnight-7/BudgetsApp/internal/models"
)

// SortBy selects the attribute transactions are ordered by for display.
type SortBy string

const (
	SortByNumber   SortBy = "number"
	SortByDate     SortBy = "date"
	SortByAmount   SortBy = "amount"
	SortByCategory SortBy = "category"
)

// ParseSortBy maps a user-supplied sort attribute onto a SortBy, falling
// back to the transaction number for anything unknown.
func ParseSortBy(s string) SortBy {
	switch SortBy(strings.ToLower(s)) {
	case SortByNumber, SortByDate, SortByAmount, SortByCategory:
		return SortBy(strings.ToLower(s))
	case "":
		return SortByNumber
	}

	log.Warn().Str("sortBy", s).Msg("unknown sort attribute, sorting by transaction number")
	return SortByNumber
}

func sorted(transactions map[uint64]models.Transaction, by SortBy) []models.Transaction {
	list := make([]models.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		list = append(list, transaction)
	}

	// Number is the unique fallback ordering, which also keeps sorting by
	// the non-unique attributes deterministic.
	sort.Slice(list, func(i, j int) bool { return list[i].Number < list[j].Number })
	switch by {
	case SortByDate:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Date.Before(list[j].Date) })
	case SortByAmount:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Amount.LessThan(list[j].Amount) })
	case SortByCategory:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Category < list[j].Category })
	}

	return list
}

// FormatDisplay renders all transactions as tabular text ordered by the
// requested attribute.
func (m *Manager) FormatDisplay(by SortBy) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\nLAST UPLOADED TRANSACTIONS\nTransactions from: %s\n\n", m.sourceFile)

	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"Transaction #", "Date", "Amount", "Description", "Category"})
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, transaction := range sorted(m.transactions, by) {
		table.Append([]string{
			strconv.FormatUint(transaction.Number, 10),
			transaction.Date.Format(models.StoreDateLayout),
			transaction.Amount.StringFixed(2),
			transaction.Description,
			transaction.Category,
		})
	}
	table.Render()

	return b.String()
}

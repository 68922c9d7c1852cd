package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-coach/internal/finance"
)

// Column names written by WriteCSV and recognised exactly by ReadCSV.
const (
	ColumnID          = "id"
	ColumnDate        = "date"
	ColumnDescription = "description"
	ColumnAmount      = "amount"
	ColumnType        = "type"
	ColumnCategory    = "category"
	ColumnOverridden  = "overridden"
)

var exportHeader = []string{
	ColumnID, ColumnDate, ColumnDescription, ColumnAmount, ColumnType, ColumnCategory, ColumnOverridden,
}

// Header keywords per column role, in priority order.
var (
	dateKeywords        = []string{"date", "transaction_date", "posted_date", "value_date", "tran_date", "trans_date"}
	descriptionKeywords = []string{"description", "memo", "details", "narration", "particulars", "transaction_details", "remarks", "note"}
	amountKeywords      = []string{"amount", "value", "sum", "total", "transaction_amount", "debit", "credit", "balance"}
	typeKeywords        = []string{"type", "debit_credit", "dr_cr", "transaction_type", "cr_dr", "d_c"}
)

// ImportResult is the outcome of reading one statement.
type ImportResult struct {
	Transactions []finance.Transaction
	Skipped      int
}

type columnMap struct {
	date, description, amount int
	typ, id, category         int
	overridden                int
	// Used instead of amount when a statement splits withdrawals and
	// deposits into two columns.
	debit, credit int
}

// ReadCSV parses a bank CSV export. Columns are detected from the header row;
// rows that cannot be parsed are counted in Skipped. Transactions come back
// sorted by date with the sign of each amount matching its type.
func ReadCSV(r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	cols, err := detectColumns(header)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	seen := make(map[uuid.UUID]struct{})
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				result.Skipped++
				continue
			}
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if isBlank(record) {
			continue
		}

		tx, ok := cols.transaction(record)
		if !ok {
			result.Skipped++
			continue
		}
		if _, dup := seen[tx.ID]; dup || tx.ID == uuid.Nil {
			tx.ID = uuid.Must(uuid.NewV4())
		}
		seen[tx.ID] = struct{}{}
		result.Transactions = append(result.Transactions, tx)
	}

	sortByDate(result.Transactions)
	return result, nil
}

// WriteCSV writes transactions in the schema ReadCSV reads back losslessly.
func WriteCSV(w io.Writer, txs []finance.Transaction) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, tx := range txs {
		record := []string{
			tx.ID.String(),
			tx.Date.Format(DateLayout),
			tx.Description,
			tx.Amount.String(),
			string(tx.Type),
			tx.Category,
			strconv.FormatBool(tx.Overridden),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func detectColumns(header []string) (*columnMap, error) {
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = headerName(h)
	}

	claimed := make(map[int]bool)
	exact := func(name string) int {
		for i, n := range names {
			if n == name && !claimed[i] {
				claimed[i] = true
				return i
			}
		}
		return -1
	}
	fuzzy := func(keywords []string) int {
		for _, k := range keywords {
			for i, n := range names {
				if !claimed[i] && strings.Contains(n, k) {
					claimed[i] = true
					return i
				}
			}
		}
		return -1
	}

	unclaimed := func(keywords ...string) int {
		for i, n := range names {
			// A combined debit/credit indicator is a type column.
			if claimed[i] || containsAny(n, typeKeywords[1:]) {
				continue
			}
			for _, k := range keywords {
				if strings.Contains(n, k) {
					return i
				}
			}
		}
		return -1
	}

	cols := &columnMap{
		id:         exact(ColumnID),
		category:   exact(ColumnCategory),
		overridden: exact(ColumnOverridden),
		debit:      -1,
		credit:     -1,
	}

	// Exact names first so an export's own columns are never mistaken for
	// each other.
	cols.date = exact(ColumnDate)
	cols.description = exact(ColumnDescription)
	cols.amount = exact(ColumnAmount)
	cols.typ = exact(ColumnType)
	if cols.date < 0 {
		cols.date = fuzzy(dateKeywords)
	}
	if cols.description < 0 {
		cols.description = fuzzy(descriptionKeywords)
	}
	if cols.amount < 0 {
		debit, credit := unclaimed("debit", "withdrawal"), unclaimed("credit", "deposit")
		if debit >= 0 && credit >= 0 && debit != credit {
			claimed[debit], claimed[credit] = true, true
			cols.debit, cols.credit = debit, credit
		}
	}
	if cols.amount < 0 && cols.debit < 0 {
		cols.amount = fuzzy(amountKeywords)
	}
	if cols.typ < 0 {
		cols.typ = fuzzy(typeKeywords)
	}

	var missing []string
	if cols.date < 0 {
		missing = append(missing, ColumnDate)
	}
	if cols.description < 0 {
		missing = append(missing, ColumnDescription)
	}
	if cols.amount < 0 && cols.debit < 0 {
		missing = append(missing, ColumnAmount)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrNoHeader, strings.Join(missing, ", "))
	}
	return cols, nil
}

var headerReplacer = strings.NewReplacer(" ", "_", "/", "_", "-", "_", ".", "")

// headerName lowercases a header cell and joins its words with underscores so
// "Dr/Cr" and "Transaction Date" line up with the keyword lists.
func headerName(h string) string {
	h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	return headerReplacer.Replace(h)
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func (c *columnMap) transaction(record []string) (finance.Transaction, bool) {
	cell := func(i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	date, ok := parseDate(cell(c.date))
	if !ok {
		return finance.Transaction{}, false
	}
	description := cell(c.description)
	if description == "" {
		return finance.Transaction{}, false
	}
	if c.debit >= 0 {
		return c.splitTransaction(cell, date, description)
	}

	amount, ok := parseAmount(cell(c.amount))
	if !ok || amount.IsZero() {
		return finance.Transaction{}, false
	}

	tx := finance.Transaction{
		Date:        date,
		Description: description,
		Amount:      amount,
	}

	typ, ok := finance.ParseTransactionType(cell(c.typ))
	switch {
	case c.typ >= 0 && ok:
		tx.Type = typ
	case amount.IsNegative():
		tx.Type = finance.Debit
	default:
		tx.Type = finance.Credit
	}

	c.applyExtras(&tx, cell)
	return tx.Normalize(), true
}

func (c *columnMap) splitTransaction(cell func(int) string, date time.Time, description string) (finance.Transaction, bool) {
	tx := finance.Transaction{Date: date, Description: description}
	if amount, ok := parseAmount(cell(c.debit)); ok && !amount.IsZero() {
		tx.Amount, tx.Type = amount, finance.Debit
	} else if amount, ok := parseAmount(cell(c.credit)); ok && !amount.IsZero() {
		tx.Amount, tx.Type = amount, finance.Credit
	} else {
		return finance.Transaction{}, false
	}

	c.applyExtras(&tx, cell)
	return tx.Normalize(), true
}

func (c *columnMap) applyExtras(tx *finance.Transaction, cell func(int) string) {
	if id, err := uuid.FromString(cell(c.id)); err == nil {
		tx.ID = id
	}

	// Category cells count only alongside an overridden column.
	if c.overridden < 0 {
		return
	}
	if category := cell(c.category); category != "" {
		tx.Category = category
		tx.Overridden, _ = strconv.ParseBool(cell(c.overridden))
	}
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func sortByDate(txs []finance.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.Before(txs[j].Date)
	})
}

package ingest

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/ledongthuc/pdf"

	"github.com/carson-networks/budget-coach/internal/finance"
)

// Gaps are measured in multiples of the font size.
const (
	cellGap = 1.0
	wordGap = 0.25
)

type cell struct {
	x, end float64
	text   string
}

func (c cell) center() float64 {
	return (c.x + c.end) / 2
}

// line is one visual row of a page, split into cells wherever the horizontal
// gap between glyph runs is wide enough to be a column break.
type line []cell

func (l line) texts() []string {
	out := make([]string, len(l))
	for i, c := range l {
		out[i] = c.text
	}
	return out
}

func (l line) String() string {
	return strings.Join(l.texts(), " ")
}

// align distributes the cells of l under the nearest header cell.
func (l line) align(header line) []string {
	record := make([]string, len(header))
	for _, c := range l {
		best, bestDist := 0, math.Inf(1)
		for i, h := range header {
			if d := math.Abs(c.center() - h.center()); d < bestDist {
				best, bestDist = i, d
			}
		}
		if record[best] != "" {
			record[best] += " "
		}
		record[best] += c.text
	}
	return record
}

// ReadPDF extracts transactions from a text-based bank statement. Tables with
// a recognisable header row are read first; if none yield transactions each
// text line is matched against a date/description/amount pattern instead.
func ReadPDF(r io.ReaderAt, size int64) (result *ImportResult, err error) {
	// The PDF reader panics on some malformed documents.
	defer func() {
		if p := recover(); p != nil {
			result, err = nil, fmt.Errorf("%w: %v", ErrUnreadable, p)
		}
	}()

	doc, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	var lines []line
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrUnreadable, i, err)
		}
		for _, row := range rows {
			if l := lineFromTexts(row.Content); len(l) > 0 {
				lines = append(lines, l)
			}
		}
	}
	return parseLines(lines)
}

func lineFromTexts(texts []pdf.Text) line {
	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var (
		out  line
		cur  strings.Builder
		curX float64
		end  float64
	)
	flush := func() {
		if text := strings.Join(strings.Fields(cur.String()), " "); text != "" {
			out = append(out, cell{x: curX, end: end, text: text})
		}
		cur.Reset()
	}

	for _, t := range sorted {
		size := t.FontSize
		if size <= 0 {
			size = 10
		}
		if cur.Len() == 0 {
			curX = t.X
		} else {
			gap := t.X - end
			switch {
			case gap > cellGap*size:
				flush()
				curX = t.X
			case gap > wordGap*size:
				cur.WriteByte(' ')
			}
		}
		cur.WriteString(t.S)
		end = math.Max(end, t.X+t.W)
	}
	flush()
	return out
}

func parseLines(lines []line) (*ImportResult, error) {
	result := parseTable(lines)
	if len(result.Transactions) == 0 {
		result = parseText(lines)
	}
	if len(result.Transactions) == 0 {
		return nil, ErrNoTransactions
	}
	for i := range result.Transactions {
		result.Transactions[i].ID = uuid.Must(uuid.NewV4())
	}
	sortByDate(result.Transactions)
	return result, nil
}

func parseTable(lines []line) *ImportResult {
	result := &ImportResult{}
	var (
		cols   *columnMap
		header line
	)
	for _, l := range lines {
		if isHeader(l) {
			if c, err := detectColumns(l.texts()); err == nil {
				// Statements repeat the header on every page.
				cols, header = c, l
				continue
			}
		}
		if cols == nil {
			continue
		}

		record := l.align(header)
		tx, ok := cols.transaction(record)
		if !ok {
			if _, dated := parseDate(record[cols.date]); dated {
				result.Skipped++
			}
			continue
		}
		result.Transactions = append(result.Transactions, tx)
	}
	return result
}

func isHeader(l line) bool {
	if len(l) < 3 {
		return false
	}
	for _, c := range l {
		if _, ok := parseDate(c.text); ok {
			return false
		}
	}
	return true
}

var (
	datePrefix  = regexp.MustCompile(`^(\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}-\d{2}-\d{2}|\d{1,2}[ -][A-Za-z]{3,9}[ -]\d{2,4})\s`)
	linePattern = regexp.MustCompile(`(?i)^(\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}-\d{2}-\d{2}|\d{1,2}[ -][a-z]{3,9}[ -]\d{2,4})\s+(.+?)\s+([+-]?\(?(?:₹|\$|€|£|rs\.?|inr)?\s?[\d,]*\d\.\d{2}\)?)(?:\s+(cr|dr)\b)?(?:\s+[+-]?(?:₹|\$|€|£|rs\.?|inr)?\s?[\d,]*\d\.\d{2}(?:\s*(?:cr|dr))?)?\s*$`)
)

// parseText matches whole lines. A trailing Cr marker or a leading plus sign
// makes a credit; every other amount is a debit. A trailing second amount is
// taken to be the running balance and ignored.
func parseText(lines []line) *ImportResult {
	result := &ImportResult{}
	for _, l := range lines {
		text := l.String()
		m := linePattern.FindStringSubmatch(text)
		if m == nil {
			if datePrefix.MatchString(text) {
				result.Skipped++
			}
			continue
		}

		date, ok := parseDate(m[1])
		if !ok {
			result.Skipped++
			continue
		}
		raw := strings.TrimSpace(m[3])
		amount, ok := parseAmount(strings.TrimPrefix(raw, "+"))
		if !ok || amount.IsZero() {
			result.Skipped++
			continue
		}

		typ := finance.Debit
		if strings.EqualFold(m[4], "cr") || strings.HasPrefix(raw, "+") {
			typ = finance.Credit
		}
		tx := finance.Transaction{
			Date:        date,
			Description: strings.TrimSpace(m[2]),
			Amount:      amount,
			Type:        typ,
		}
		result.Transactions = append(result.Transactions, tx.Normalize())
	}
	return result
}

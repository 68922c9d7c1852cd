package ingest

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNoHeader       = errors.New("could not find date, description and amount columns")
	ErrNoTransactions = errors.New("no transactions found")
	ErrUnreadable     = errors.New("statement could not be read")
)

// DateLayout is the layout dates are exported with.
const DateLayout = "2006-01-02"

// Tried in order, so day-first wins for ambiguous values like 03/04/2025.
var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"01-02-2006",
	"2/1/2006",
	"02/01/06",
	"02 Jan 2006",
	"2 Jan 2006",
	"02 January 2006",
	"2 January 2006",
	"02-Jan-2006",
	"02 Jan 06",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

var amountReplacer = strings.NewReplacer(
	",", "",
	" ", "",
	"₹", "",
	"$", "",
	"€", "",
	"£", "",
	"Rs.", "",
	"Rs", "",
	"INR", "",
	"rs.", "",
	"rs", "",
	"inr", "",
)

// parseAmount strips currency symbols and thousands separators. A value in
// parentheses is negative.
func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = amountReplacer.Replace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		d = d.Abs().Neg()
	}
	return d, true
}

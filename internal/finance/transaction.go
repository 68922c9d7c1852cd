package finance

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of money movement on a statement line.
type TransactionType string

const (
	Debit  TransactionType = "Debit"
	Credit TransactionType = "Credit"
)

// OtherCategory is the label given to anything no rule matches.
const OtherCategory = "Other"

// PeriodLayout formats a date as the month bucket used by aggregates.
const PeriodLayout = "2006-01"

// Transaction is a single categorized bank statement line.
type Transaction struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string
	// Overridden is set when the category was assigned by hand.
	Overridden bool
}

// Normalize forces the amount sign to agree with the type: debits are
// negative, credits positive.
func (t Transaction) Normalize() Transaction {
	if t.Type != Credit {
		t.Type = Debit
		t.Amount = t.Amount.Abs().Neg()
		return t
	}
	t.Amount = t.Amount.Abs()
	return t
}

// Period returns the YYYY-MM month of the transaction.
func (t Transaction) Period() string {
	return t.Date.Format(PeriodLayout)
}

// ParseTransactionType maps the many spellings banks use onto Debit/Credit.
// ok is false when the value is not recognised.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debit", "dr", "d", "deb", "withdrawal":
		return Debit, true
	case "credit", "cr", "c", "cred", "deposit":
		return Credit, true
	}
	return Debit, false
}

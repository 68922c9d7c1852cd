package service

import "github.com/carson-networks/budget-coach/internal/finance"

// TransactionFilter narrows a listing. Empty fields match everything.
type TransactionFilter struct {
	Period   string
	Category string
}

// TransactionCursor identifies a position in a paginated result set.
type TransactionCursor struct {
	Position int
	Limit    int
}

// ImportSummary reports what an upload produced.
type ImportSummary struct {
	Imported   int
	Skipped    int
	ByCategory map[string]int
	// Transactions is the categorized set that replaced the old one.
	Transactions []finance.Transaction
}

package categorize

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-coach/internal/finance"
)

type compiledRule struct {
	category string
	keywords []string
}

// Categorizer assigns a category label to transaction descriptions using a
// fixed, ordered keyword table. It is safe for concurrent use.
type Categorizer struct {
	rules []compiledRule
}

// New builds a Categorizer from rules. Keywords are normalized the same way
// descriptions are, so "Credit-Card" in a rule matches "credit card".
func New(rules []Rule) *Categorizer {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		cr := compiledRule{category: r.Category}
		for _, k := range r.Keywords {
			if nk := Normalize(k); nk != "" {
				cr.keywords = append(cr.keywords, nk)
			}
		}
		compiled = append(compiled, cr)
	}
	return &Categorizer{rules: compiled}
}

// Categorize returns the first category whose keywords occur in the
// description, or "Other". Amount and type are accepted for the callers'
// convenience but do not influence the result.
func (c *Categorizer) Categorize(description string, _ decimal.Decimal, _ finance.TransactionType) string {
	text := Normalize(description)
	if text == "" {
		return finance.OtherCategory
	}
	for _, r := range c.rules {
		for _, k := range r.keywords {
			if strings.Contains(text, k) {
				return r.category
			}
		}
	}
	return finance.OtherCategory
}

// CategorizeAll labels every transaction that was not recategorized by hand.
// An override naming a category outside the table is dropped.
func (c *Categorizer) CategorizeAll(txs []finance.Transaction) {
	for i := range txs {
		if txs[i].Overridden && c.Known(txs[i].Category) {
			continue
		}
		txs[i].Overridden = false
		txs[i].Category = c.Categorize(txs[i].Description, txs[i].Amount, txs[i].Type)
	}
}

// Categories lists category names in priority order, ending with "Other".
func (c *Categorizer) Categories() []string {
	out := make([]string, 0, len(c.rules)+1)
	for _, r := range c.rules {
		out = append(out, r.category)
	}
	return append(out, finance.OtherCategory)
}

// Known reports whether name is a category of this table.
func (c *Categorizer) Known(name string) bool {
	if name == finance.OtherCategory {
		return true
	}
	for _, r := range c.rules {
		if r.category == name {
			return true
		}
	}
	return false
}

// Normalize lowercases s, turns punctuation into spaces and collapses runs
// of whitespace.
func Normalize(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}

package finance

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// AgeBand is one of the fixed questionnaire age ranges.
type AgeBand string

const (
	AgeBand18To25 AgeBand = "18-25"
	AgeBand26To35 AgeBand = "26-35"
	AgeBand36To45 AgeBand = "36-45"
	AgeBand46To55 AgeBand = "46-55"
	AgeBand56To65 AgeBand = "56-65"
	AgeBand65Plus AgeBand = "65+"
)

var AgeBands = []AgeBand{AgeBand18To25, AgeBand26To35, AgeBand36To45, AgeBand46To55, AgeBand56To65, AgeBand65Plus}

var (
	ErrInvalidAgeBand        = errors.New("invalid age band")
	ErrNegativeIncome        = errors.New("income must not be negative")
	ErrNegativeSavingsTarget = errors.New("savings target must not be negative")
)

// UserProfile holds the questionnaire answers for the single user of a session.
type UserProfile struct {
	Income             decimal.Decimal
	AgeBand            AgeBand
	Occupation         string
	SavingsTarget      decimal.Decimal
	PriorityCategories []string
	CutCostCategories  []string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (p UserProfile) Validate() error {
	if p.Income.IsNegative() {
		return ErrNegativeIncome
	}
	if p.SavingsTarget.IsNegative() {
		return ErrNegativeSavingsTarget
	}
	if p.AgeBand == "" {
		return nil
	}
	for _, band := range AgeBands {
		if band == p.AgeBand {
			return nil
		}
	}
	return ErrInvalidAgeBand
}

// FocusCategories returns priority categories followed by cut-cost
// categories, without duplicates.
func (p UserProfile) FocusCategories() []string {
	seen := make(map[string]struct{}, len(p.PriorityCategories)+len(p.CutCostCategories))
	out := make([]string, 0, len(p.PriorityCategories)+len(p.CutCostCategories))
	for _, list := range [][]string{p.PriorityCategories, p.CutCostCategories} {
		for _, c := range list {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

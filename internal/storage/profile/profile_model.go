package profile

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-coach/internal/finance"
)

// ErrNotFound is returned before the questionnaire has been submitted.
var ErrNotFound = errors.New("profile not found")

// Profile is the stored questionnaire. There is at most one.
type Profile struct {
	Income             decimal.Decimal `json:"income"`
	AgeBand            string          `json:"age_band"`
	Occupation         string          `json:"occupation"`
	SavingsTarget      decimal.Decimal `json:"savings_target"`
	PriorityCategories []string        `json:"priority_categories"`
	CutCostCategories  []string        `json:"cut_cost_categories"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// IProfileTable defines the interface for profile storage operations.
// This abstraction allows swapping the implementation (flat file or Bob) without changing callers.
//
//go:generate mockery --name IProfileTable --inpackage --with-expecter --filename mock_IProfileTable.go
type IProfileTable interface {
	Get(ctx context.Context) (*Profile, error)
	// Put overwrites the stored profile.
	Put(ctx context.Context, p *Profile) error
}

func FromFinance(p finance.UserProfile) *Profile {
	return &Profile{
		Income:             p.Income,
		AgeBand:            string(p.AgeBand),
		Occupation:         p.Occupation,
		SavingsTarget:      p.SavingsTarget,
		PriorityCategories: p.PriorityCategories,
		CutCostCategories:  p.CutCostCategories,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func (p *Profile) ToFinance() finance.UserProfile {
	return finance.UserProfile{
		Income:             p.Income,
		AgeBand:            finance.AgeBand(p.AgeBand),
		Occupation:         p.Occupation,
		SavingsTarget:      p.SavingsTarget,
		PriorityCategories: p.PriorityCategories,
		CutCostCategories:  p.CutCostCategories,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

package profile

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-coach/internal/finance"
)

// Profile is the questionnaire as sent and returned by the API.
type Profile struct {
	Income             string   `json:"income" doc:"Monthly take-home income, decimal"`
	AgeBand            string   `json:"ageBand,omitempty" enum:"18-25,26-35,36-45,46-55,56-65,65+" doc:"Age band"`
	Occupation         string   `json:"occupation,omitempty" doc:"Free-text occupation"`
	SavingsTarget      string   `json:"savingsTarget" doc:"Monthly savings target, decimal"`
	PriorityCategories []string `json:"priorityCategories,omitempty" doc:"Categories the user wants to protect"`
	CutCostCategories  []string `json:"cutCostCategories,omitempty" doc:"Categories the user wants to cut back on"`
	CreatedAt          string   `json:"createdAt,omitempty" readOnly:"true" doc:"RFC3339 time of the first save"`
	UpdatedAt          string   `json:"updatedAt,omitempty" readOnly:"true" doc:"RFC3339 time of the last save"`
}

func fromFinance(p finance.UserProfile) Profile {
	return Profile{
		Income:             p.Income.StringFixed(2),
		AgeBand:            string(p.AgeBand),
		Occupation:         p.Occupation,
		SavingsTarget:      p.SavingsTarget.StringFixed(2),
		PriorityCategories: p.PriorityCategories,
		CutCostCategories:  p.CutCostCategories,
		CreatedAt:          p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          p.UpdatedAt.Format(time.RFC3339),
	}
}

// toFinance parses the decimal fields. Empty amounts mean zero.
func (p Profile) toFinance() (finance.UserProfile, error) {
	income, err := parseAmount(p.Income)
	if err != nil {
		return finance.UserProfile{}, err
	}
	target, err := parseAmount(p.SavingsTarget)
	if err != nil {
		return finance.UserProfile{}, err
	}
	return finance.UserProfile{
		Income:             income,
		AgeBand:            finance.AgeBand(p.AgeBand),
		Occupation:         p.Occupation,
		SavingsTarget:      target,
		PriorityCategories: p.PriorityCategories,
		CutCostCategories:  p.CutCostCategories,
	}, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

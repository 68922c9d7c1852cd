package advice

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-coach/internal/aggregate"
	"github.com/carson-networks/budget-coach/internal/finance"
)

const EmergencyFund = "Emergency Fund"

type planEntry struct {
	category string
	share    decimal.Decimal
	savings  bool
}

// 50/30/20 split broken down per category.
var basePlan = []planEntry{
	{category: "Food & Dining", share: decimal.RequireFromString("0.15")},
	{category: "Transportation", share: decimal.RequireFromString("0.10")},
	{category: "Bills & Utilities", share: decimal.RequireFromString("0.10")},
	{category: "Shopping", share: decimal.RequireFromString("0.10")},
	{category: "Entertainment", share: decimal.RequireFromString("0.05")},
	{category: "Healthcare", share: decimal.RequireFromString("0.05")},
	{category: "Education", share: decimal.RequireFromString("0.05")},
	{category: "Travel", share: decimal.RequireFromString("0.05")},
	{category: "Investments", share: decimal.RequireFromString("0.20"), savings: true},
	{category: EmergencyFund, share: decimal.RequireFromString("0.15"), savings: true},
}

var (
	aggressiveSavingsShare = decimal.RequireFromString("0.35")
	spendingCut            = decimal.RequireFromString("0.8")
)

// BudgetLine compares the recommended monthly amount for a category with
// what is actually spent per month.
type BudgetLine struct {
	Category    string
	Percentage  float64
	Recommended decimal.Decimal
	Current     decimal.Decimal
	Difference  decimal.Decimal
}

// BudgetPlan returns nil when no monthly income is known. A savings target
// above 35% of income shrinks every spending category by a fifth.
func (s *Selector) BudgetPlan(report aggregate.Report, profile finance.UserProfile) []BudgetLine {
	income := MonthlyIncome(report, profile)
	if !income.IsPositive() {
		return nil
	}

	aggressive := profile.SavingsTarget.IsPositive() &&
		profile.SavingsTarget.Div(income).GreaterThan(aggressiveSavingsShare)

	lines := make([]BudgetLine, 0, len(basePlan))
	for _, entry := range basePlan {
		share := entry.share
		if aggressive && !entry.savings {
			share = share.Mul(spendingCut)
		}

		recommended := income.Mul(share).Round(2)
		current := report.MonthlyCategorySpend(entry.category)
		lines = append(lines, BudgetLine{
			Category:    entry.category,
			Percentage:  share.Mul(decimal.NewFromInt(100)).InexactFloat64(),
			Recommended: recommended,
			Current:     current,
			Difference:  recommended.Sub(current),
		})
	}
	return lines
}

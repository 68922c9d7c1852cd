package advice

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-coach/internal/aggregate"
	"github.com/carson-networks/budget-coach/internal/finance"
)

// MaxSuggestions caps the list returned by Select.
const MaxSuggestions = 7

const (
	lowHealthScore       = 40
	optimizeHealthScore  = 60
	strongHealthScore    = 70
	defaultCategoryShare = "0.10"
)

// Share of monthly income above which a focus category earns a tip.
var categoryThresholds = map[string]decimal.Decimal{
	"Food & Dining":  decimal.RequireFromString("0.15"),
	"Transportation": decimal.RequireFromString("0.10"),
	"Shopping":       decimal.RequireFromString("0.10"),
	"Entertainment":  decimal.RequireFromString("0.05"),
}

// Suggestion is one line of advice.
type Suggestion struct {
	Kind     Kind
	Category string
	Text     string
}

// Selector picks advice from a fixed bank using threshold rules. Output is
// deterministic for a given report and profile.
type Selector struct {
	currency string
}

func NewSelector(currencySymbol string) *Selector {
	if currencySymbol == "" {
		currencySymbol = finance.DefaultCurrencySymbol
	}
	return &Selector{currency: currencySymbol}
}

// Select runs the decision table and pads the result with general tips up to
// MaxSuggestions.
func (s *Selector) Select(report aggregate.Report, profile finance.UserProfile) []Suggestion {
	var out []Suggestion

	savings := report.MonthlySavings
	if profile.SavingsTarget.IsPositive() {
		if savings.LessThan(profile.SavingsTarget) {
			gap := profile.SavingsTarget.Sub(savings)
			out = append(out,
				Suggestion{Kind: KindSavingsGap, Text: fmt.Sprintf(
					"You're saving %s per month but your target is %s. You need to save %s more per month.",
					s.money(savings), s.money(profile.SavingsTarget), s.money(gap))},
				Suggestion{Kind: KindBudgeting, Text: budgetingTip},
				Suggestion{Kind: KindLowSavings, Text: lowSavingsTips[0]},
			)
		} else {
			out = append(out, Suggestion{Kind: KindSavingsOnTrack, Text: fmt.Sprintf(
				"Great job! You're meeting your savings target of %s per month.", s.money(profile.SavingsTarget))})
		}
	}

	income := MonthlyIncome(report, profile)
	if income.IsPositive() {
		for _, category := range profile.FocusCategories() {
			threshold := thresholdFor(category)
			spend := report.MonthlyCategorySpend(category)
			if !spend.GreaterThan(income.Mul(threshold)) {
				continue
			}
			out = append(out, Suggestion{Kind: KindCategory, Category: category, Text: categoryTip(category, threshold)})
		}
	}

	if investments, ok := report.Category("Investments"); !ok || investments.Amount.IsZero() {
		out = append(out, Suggestion{Kind: KindInvesting, Text: investingTips[0]})
	}

	if report.HealthScore < optimizeHealthScore {
		out = append(out, Suggestion{Kind: KindBudgetOptimization, Text: budgetOptimizationTips[0]})
	}

	if !report.Empty() && report.MonthlyExpensesAvg.GreaterThan(report.MonthlyIncomeAvg) {
		out = append(out, Suggestion{Kind: KindOverspending, Text: overspendingTip})
	}

	for _, tip := range generalTips {
		if len(out) >= MaxSuggestions {
			break
		}
		out = append(out, Suggestion{Kind: KindGeneral, Text: tip})
	}

	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}

// QuickTips returns short one-liners for the dashboard.
func (s *Selector) QuickTips(report aggregate.Report, profile finance.UserProfile) []string {
	var tips []string

	switch {
	case report.Empty():
	case report.HealthScore < lowHealthScore:
		tips = append(tips, "Focus on reducing debt and building emergency savings.")
	case report.HealthScore > strongHealthScore:
		tips = append(tips, "Great job! Consider increasing your investment contributions.")
	}

	if profile.SavingsTarget.IsPositive() {
		if report.MonthlySavings.LessThan(profile.SavingsTarget) {
			gap := profile.SavingsTarget.Sub(report.MonthlySavings)
			tips = append(tips, fmt.Sprintf("You need to save %s more to reach your monthly target.", s.money(gap)))
		} else {
			tips = append(tips, "You're exceeding your savings target! Consider investing the extra amount.")
		}
	}

	return append(tips,
		"Use the 24-hour rule before making non-essential purchases.",
		"Review your bank statements monthly to catch any errors or fraud.",
		"Set up automatic bill payments to avoid late fees.",
	)
}

// MonthlyIncome is the declared income from the profile, falling back to the
// average monthly income seen in transactions.
func MonthlyIncome(report aggregate.Report, profile finance.UserProfile) decimal.Decimal {
	if profile.Income.IsPositive() {
		return profile.Income
	}
	return report.MonthlyIncomeAvg
}

func thresholdFor(category string) decimal.Decimal {
	if t, ok := categoryThresholds[category]; ok {
		return t
	}
	return decimal.RequireFromString(defaultCategoryShare)
}

func categoryTip(category string, threshold decimal.Decimal) string {
	if tip, ok := categoryTips[category]; ok {
		return tip
	}
	return fmt.Sprintf(genericCategoryTip, category, threshold.Mul(decimal.NewFromInt(100)).String())
}

func (s *Selector) money(d decimal.Decimal) string {
	return finance.FormatMoney(s.currency, d)
}

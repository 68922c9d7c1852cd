package advice

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-coach/internal/aggregate"
	"github.com/carson-networks/budget-coach/internal/finance"
)

func tx(date, amount, category string) finance.Transaction {
	d, _ := time.Parse("2006-01-02", date)
	return finance.Transaction{
		Date:     d,
		Amount:   decimal.RequireFromString(amount),
		Type:     typeFor(amount),
		Category: category,
	}.Normalize()
}

func typeFor(amount string) finance.TransactionType {
	if decimal.RequireFromString(amount).IsPositive() {
		return finance.Credit
	}
	return finance.Debit
}

func sampleReport(target decimal.Decimal) aggregate.Report {
	return aggregate.Build([]finance.Transaction{
		tx("2025-01-01", "50000", "Income"),
		tx("2025-01-05", "-6000", "Food & Dining"),
		tx("2025-01-07", "-15000", "Bills & Utilities"),
		tx("2025-02-01", "50000", "Income"),
		tx("2025-02-03", "-4000", "Food & Dining"),
		tx("2025-02-20", "-8000", "Shopping"),
	}, target)
}

func kinds(suggestions []Suggestion) []Kind {
	out := make([]Kind, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.Kind
	}
	return out
}

func TestSelect_SavingsGapEmitsBudgetingTip(t *testing.T) {
	target := decimal.RequireFromString("40000")
	profile := finance.UserProfile{
		Income:             decimal.RequireFromString("50000"),
		SavingsTarget:      target,
		PriorityCategories: []string{"Food & Dining"},
		CutCostCategories:  []string{"Shopping"},
	}

	got := NewSelector("₹").Select(sampleReport(target), profile)

	require.Len(t, got, MaxSuggestions)
	assert.Equal(t, []Kind{
		KindSavingsGap, KindBudgeting, KindLowSavings, KindInvesting,
		KindGeneral, KindGeneral, KindGeneral,
	}, kinds(got))
	assert.Equal(t,
		"You're saving ₹33,500.00 per month but your target is ₹40,000.00. You need to save ₹6,500.00 more per month.",
		got[0].Text)
	assert.Contains(t, got[1].Text, "50/30/20")
}

func TestSelect_TargetMet(t *testing.T) {
	target := decimal.RequireFromString("1000")
	got := NewSelector("$").Select(sampleReport(target), finance.UserProfile{SavingsTarget: target})

	require.NotEmpty(t, got)
	assert.Equal(t, KindSavingsOnTrack, got[0].Kind)
	assert.Contains(t, got[0].Text, "$1,000.00")
	assert.NotContains(t, kinds(got), KindBudgeting)
}

func TestSelect_CategoryThresholds(t *testing.T) {
	report := aggregate.Build([]finance.Transaction{
		tx("2025-03-01", "10000", "Income"),
		tx("2025-03-02", "-3000", "Shopping"),
		tx("2025-03-03", "-2000", "Travel"),
		tx("2025-03-04", "-400", "Food & Dining"),
	}, decimal.Zero)
	profile := finance.UserProfile{
		Income:             decimal.RequireFromString("10000"),
		PriorityCategories: []string{"Food & Dining"},
		CutCostCategories:  []string{"Shopping", "Travel"},
	}

	got := NewSelector("").Select(report, profile)

	var categories []string
	for _, s := range got {
		if s.Kind == KindCategory {
			categories = append(categories, s.Category)
		}
	}
	assert.Equal(t, []string{"Shopping", "Travel"}, categories)
	assert.Equal(t, categoryTips["Shopping"], got[0].Text)
	assert.Equal(t,
		"Your Travel spending is above the recommended 10% of income. Set a monthly cap for it and track it weekly.",
		got[1].Text)
	assert.Len(t, got, MaxSuggestions)
}

func TestSelect_Overspending(t *testing.T) {
	report := aggregate.Build([]finance.Transaction{
		tx("2025-03-01", "1000", "Income"),
		tx("2025-03-02", "-3000", "Shopping"),
	}, decimal.Zero)

	got := kinds(NewSelector("").Select(report, finance.UserProfile{}))

	assert.Contains(t, got, KindBudgetOptimization)
	assert.Contains(t, got, KindOverspending)
}

func TestSelect_HasInvestmentsSkipsInvestingTip(t *testing.T) {
	report := aggregate.Build([]finance.Transaction{
		tx("2025-03-01", "1000", "Income"),
		tx("2025-03-02", "-300", "Investments"),
	}, decimal.Zero)

	assert.NotContains(t, kinds(NewSelector("").Select(report, finance.UserProfile{})), KindInvesting)
}

func TestSelect_CappedAtMax(t *testing.T) {
	target := decimal.RequireFromString("49000")
	report := aggregate.Build([]finance.Transaction{
		tx("2025-03-01", "50000", "Income"),
		tx("2025-03-02", "-9000", "Food & Dining"),
		tx("2025-03-02", "-6000", "Transportation"),
		tx("2025-03-02", "-6000", "Shopping"),
		tx("2025-03-02", "-3000", "Entertainment"),
	}, target)
	profile := finance.UserProfile{
		Income:            decimal.RequireFromString("50000"),
		SavingsTarget:     target,
		CutCostCategories: []string{"Food & Dining", "Transportation", "Shopping", "Entertainment"},
	}

	got := NewSelector("").Select(report, profile)

	require.Len(t, got, MaxSuggestions)
	assert.NotContains(t, kinds(got), KindGeneral)
}

func TestSelect_Deterministic(t *testing.T) {
	report := sampleReport(decimal.Zero)
	s := NewSelector("")
	assert.Equal(t, s.Select(report, finance.UserProfile{}), s.Select(report, finance.UserProfile{}))
}

func TestBudgetPlan(t *testing.T) {
	profile := finance.UserProfile{Income: decimal.RequireFromString("50000")}
	plan := NewSelector("").BudgetPlan(sampleReport(decimal.Zero), profile)

	require.Len(t, plan, len(basePlan))
	food := plan[0]
	assert.Equal(t, "Food & Dining", food.Category)
	assert.Equal(t, 15.0, food.Percentage)
	assert.True(t, food.Recommended.Equal(decimal.RequireFromString("7500")))
	assert.True(t, food.Current.Equal(decimal.RequireFromString("5000")))
	assert.True(t, food.Difference.Equal(decimal.RequireFromString("2500")))

	emergency := plan[len(plan)-1]
	assert.Equal(t, EmergencyFund, emergency.Category)
	assert.True(t, emergency.Current.IsZero())
}

func TestBudgetPlan_AggressiveTargetShrinksSpending(t *testing.T) {
	profile := finance.UserProfile{
		Income:        decimal.RequireFromString("50000"),
		SavingsTarget: decimal.RequireFromString("20000"),
	}
	plan := NewSelector("").BudgetPlan(sampleReport(decimal.Zero), profile)

	assert.Equal(t, 12.0, plan[0].Percentage)
	assert.True(t, plan[0].Recommended.Equal(decimal.RequireFromString("6000")))
	assert.Equal(t, "Investments", plan[8].Category)
	assert.Equal(t, 20.0, plan[8].Percentage)
}

func TestBudgetPlan_NoIncome(t *testing.T) {
	assert.Nil(t, NewSelector("").BudgetPlan(aggregate.Build(nil, decimal.Zero), finance.UserProfile{}))
}

func TestQuickTips(t *testing.T) {
	target := decimal.RequireFromString("10000")
	tips := NewSelector("").QuickTips(sampleReport(target), finance.UserProfile{SavingsTarget: target})

	require.Len(t, tips, 5)
	assert.Contains(t, tips[0], "investment contributions")
	assert.Contains(t, tips[1], "exceeding your savings target")

	empty := NewSelector("").QuickTips(aggregate.Build(nil, decimal.Zero), finance.UserProfile{})
	assert.Len(t, empty, 3)
}

package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-coach/internal/finance"
)

// Trend describes the direction of monthly expenses over the dataset.
type Trend string

const (
	TrendIncreasing       Trend = "increasing"
	TrendDecreasing       Trend = "decreasing"
	TrendStable           Trend = "stable"
	TrendInsufficientData Trend = "insufficient_data"
)

const topCategoryCount = 5

var hundred = decimal.NewFromInt(100)

// Summary is the total for one category within one month.
type Summary struct {
	Period         string
	Category       string
	Total          decimal.Decimal
	Count          int
	PercentOfTotal float64
}

// MonthTotals holds the income and expense totals for one month. Expenses is
// a magnitude.
type MonthTotals struct {
	Period   string
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// CategoryShare is a category's share of all expenses.
type CategoryShare struct {
	Category string
	Amount   decimal.Decimal
	Count    int
	Share    float64
}

// Report is everything derived from a transaction set. It is recomputed on
// demand and never persisted.
type Report struct {
	Summaries []Summary
	Months    []MonthTotals

	TransactionCount   int
	TotalIncome        decimal.Decimal
	TotalExpenses      decimal.Decimal
	MonthlyIncomeAvg   decimal.Decimal
	MonthlyExpensesAvg decimal.Decimal
	MonthlySavings     decimal.Decimal
	SavingsRate        float64

	ExpenseBreakdown []CategoryShare
	TopCategories    []CategoryShare

	Trend                Trend
	HighestSpendingMonth string
	LowestSpendingMonth  string

	HealthScore int
}

// Build aggregates categorized transactions. savingsTarget is the monthly
// savings goal from the user profile and only affects the health score; pass
// decimal.Zero when there is none.
func Build(txs []finance.Transaction, savingsTarget decimal.Decimal) Report {
	report := Report{
		TotalIncome:        decimal.Zero,
		TotalExpenses:      decimal.Zero,
		MonthlyIncomeAvg:   decimal.Zero,
		MonthlyExpensesAvg: decimal.Zero,
		MonthlySavings:     decimal.Zero,
		Trend:              TrendInsufficientData,
	}
	if len(txs) == 0 {
		report.HealthScore = healthScore(report, savingsTarget)
		return report
	}

	type key struct{ period, category string }
	summaries := make(map[key]*Summary)
	periodTotals := make(map[string]decimal.Decimal)
	months := make(map[string]*MonthTotals)
	breakdown := make(map[string]*CategoryShare)

	for _, tx := range txs {
		period := tx.Period()
		category := tx.Category
		if category == "" {
			category = finance.OtherCategory
		}

		k := key{period: period, category: category}
		s, ok := summaries[k]
		if !ok {
			s = &Summary{Period: period, Category: category, Total: decimal.Zero}
			summaries[k] = s
		}
		s.Total = s.Total.Add(tx.Amount)
		s.Count++
		periodTotals[period] = periodTotals[period].Add(tx.Amount)

		m, ok := months[period]
		if !ok {
			m = &MonthTotals{Period: period, Income: decimal.Zero, Expenses: decimal.Zero}
			months[period] = m
		}

		if tx.Type == finance.Credit {
			report.TotalIncome = report.TotalIncome.Add(tx.Amount.Abs())
			m.Income = m.Income.Add(tx.Amount.Abs())
			continue
		}

		spent := tx.Amount.Abs()
		report.TotalExpenses = report.TotalExpenses.Add(spent)
		m.Expenses = m.Expenses.Add(spent)

		b, ok := breakdown[category]
		if !ok {
			b = &CategoryShare{Category: category, Amount: decimal.Zero}
			breakdown[category] = b
		}
		b.Amount = b.Amount.Add(spent)
		b.Count++
	}

	report.TransactionCount = len(txs)

	report.Summaries = make([]Summary, 0, len(summaries))
	for _, s := range summaries {
		s.PercentOfTotal = percent(s.Total, periodTotals[s.Period])
		report.Summaries = append(report.Summaries, *s)
	}
	sort.Slice(report.Summaries, func(i, j int) bool {
		a, b := report.Summaries[i], report.Summaries[j]
		if a.Period != b.Period {
			return a.Period < b.Period
		}
		return a.Category < b.Category
	})

	report.Months = make([]MonthTotals, 0, len(months))
	for _, m := range months {
		m.Net = m.Income.Sub(m.Expenses)
		report.Months = append(report.Months, *m)
	}
	sort.Slice(report.Months, func(i, j int) bool {
		return report.Months[i].Period < report.Months[j].Period
	})

	monthCount := decimal.NewFromInt(int64(len(report.Months)))
	report.MonthlyIncomeAvg = report.TotalIncome.Div(monthCount).Round(2)
	report.MonthlyExpensesAvg = report.TotalExpenses.Div(monthCount).Round(2)
	report.MonthlySavings = report.MonthlyIncomeAvg.Sub(report.MonthlyExpensesAvg)
	report.SavingsRate = percent(report.TotalIncome.Sub(report.TotalExpenses), report.TotalIncome)

	report.ExpenseBreakdown = make([]CategoryShare, 0, len(breakdown))
	for _, b := range breakdown {
		b.Share = percent(b.Amount, report.TotalExpenses)
		report.ExpenseBreakdown = append(report.ExpenseBreakdown, *b)
	}
	sort.Slice(report.ExpenseBreakdown, func(i, j int) bool {
		a, b := report.ExpenseBreakdown[i], report.ExpenseBreakdown[j]
		if !a.Amount.Equal(b.Amount) {
			return a.Amount.GreaterThan(b.Amount)
		}
		return a.Category < b.Category
	})
	top := len(report.ExpenseBreakdown)
	if top > topCategoryCount {
		top = topCategoryCount
	}
	report.TopCategories = report.ExpenseBreakdown[:top:top]

	report.Trend = spendingTrend(report.Months)
	report.HighestSpendingMonth, report.LowestSpendingMonth = spendingExtremes(report.Months)
	report.HealthScore = healthScore(report, savingsTarget)

	return report
}

// Category returns the expense breakdown entry for name.
func (r Report) Category(name string) (CategoryShare, bool) {
	for _, c := range r.ExpenseBreakdown {
		if c.Category == name {
			return c, true
		}
	}
	return CategoryShare{Category: name, Amount: decimal.Zero}, false
}

// MonthlyCategorySpend is the average monthly spend on a category across the
// months present in the report.
func (r Report) MonthlyCategorySpend(name string) decimal.Decimal {
	c, ok := r.Category(name)
	if !ok || len(r.Months) == 0 {
		return decimal.Zero
	}
	return c.Amount.Div(decimal.NewFromInt(int64(len(r.Months)))).Round(2)
}

// TopCategory returns the category with the largest spend.
func (r Report) TopCategory() (CategoryShare, bool) {
	if len(r.ExpenseBreakdown) == 0 {
		return CategoryShare{}, false
	}
	return r.ExpenseBreakdown[0], true
}

// Empty reports whether the report was built from no transactions.
func (r Report) Empty() bool {
	return r.TransactionCount == 0
}

// SummariesFor returns the summaries of a single month.
func (r Report) SummariesFor(period string) []Summary {
	var out []Summary
	for _, s := range r.Summaries {
		if s.Period == period {
			out = append(out, s)
		}
	}
	return out
}

func percent(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).Round(2).InexactFloat64()
}

// spendingTrend classifies the sign of the least-squares slope of monthly
// expenses. With x = 0..n-1 the slope has the sign of sum((2x - (n-1)) * y),
// which keeps the arithmetic exact.
func spendingTrend(months []MonthTotals) Trend {
	if len(months) < 2 {
		return TrendInsufficientData
	}

	n := int64(len(months))
	sum := decimal.Zero
	for i, m := range months {
		weight := decimal.NewFromInt(2*int64(i) - (n - 1))
		sum = sum.Add(weight.Mul(m.Expenses))
	}

	switch sum.Sign() {
	case 1:
		return TrendIncreasing
	case -1:
		return TrendDecreasing
	}
	return TrendStable
}

// spendingExtremes returns the months with the highest and lowest expenses,
// ignoring months without any. Ties go to the earlier month.
func spendingExtremes(months []MonthTotals) (highest, lowest string) {
	var hi, lo *MonthTotals
	for i := range months {
		m := &months[i]
		if !m.Expenses.IsPositive() {
			continue
		}
		if hi == nil || m.Expenses.GreaterThan(hi.Expenses) {
			hi = m
		}
		if lo == nil || m.Expenses.LessThan(lo.Expenses) {
			lo = m
		}
	}
	if hi == nil {
		return "", ""
	}
	return hi.Period, lo.Period
}

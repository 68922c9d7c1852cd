package insight

import (
	"github.com/carson-networks/budget-coach/internal/advice"
	"github.com/carson-networks/budget-coach/internal/aggregate"
)

// CategoryShare is one row of the expense breakdown.
type CategoryShare struct {
	Category string  `json:"category"`
	Amount   string  `json:"amount" doc:"Total spent, decimal"`
	Count    int     `json:"count"`
	Share    float64 `json:"share" doc:"Percent of all expenses"`
}

// Month is the income and expense totals for one month.
type Month struct {
	Period   string `json:"period" doc:"YYYY-MM"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Net      string `json:"net"`
}

// CategoryMonth is the total for one category within one month.
type CategoryMonth struct {
	Period         string  `json:"period"`
	Category       string  `json:"category"`
	Total          string  `json:"total"`
	Count          int     `json:"count"`
	PercentOfTotal float64 `json:"percentOfTotal"`
}

// Summary is the API form of an aggregate report.
type Summary struct {
	TransactionCount     int             `json:"transactionCount"`
	TotalIncome          string          `json:"totalIncome"`
	TotalExpenses        string          `json:"totalExpenses"`
	MonthlyIncome        string          `json:"monthlyIncome" doc:"Average income per month with transactions"`
	MonthlyExpenses      string          `json:"monthlyExpenses" doc:"Average expenses per month with transactions"`
	MonthlySavings       string          `json:"monthlySavings"`
	SavingsRate          float64         `json:"savingsRate" doc:"Savings as a percent of income"`
	HealthScore          int             `json:"healthScore" minimum:"0" maximum:"100"`
	Trend                string          `json:"trend" enum:"increasing,decreasing,stable,insufficient_data"`
	HighestSpendingMonth string          `json:"highestSpendingMonth,omitempty"`
	LowestSpendingMonth  string          `json:"lowestSpendingMonth,omitempty"`
	ExpenseBreakdown     []CategoryShare `json:"expenseBreakdown"`
	TopCategories        []CategoryShare `json:"topCategories"`
	Months               []Month         `json:"months"`
	CategoryMonths       []CategoryMonth `json:"categoryMonths"`
}

func fromReport(r aggregate.Report) Summary {
	s := Summary{
		TransactionCount:     r.TransactionCount,
		TotalIncome:          r.TotalIncome.StringFixed(2),
		TotalExpenses:        r.TotalExpenses.StringFixed(2),
		MonthlyIncome:        r.MonthlyIncomeAvg.StringFixed(2),
		MonthlyExpenses:      r.MonthlyExpensesAvg.StringFixed(2),
		MonthlySavings:       r.MonthlySavings.StringFixed(2),
		SavingsRate:          r.SavingsRate,
		HealthScore:          r.HealthScore,
		Trend:                string(r.Trend),
		HighestSpendingMonth: r.HighestSpendingMonth,
		LowestSpendingMonth:  r.LowestSpendingMonth,
		ExpenseBreakdown:     shares(r.ExpenseBreakdown),
		TopCategories:        shares(r.TopCategories),
		Months:               make([]Month, len(r.Months)),
		CategoryMonths:       make([]CategoryMonth, len(r.Summaries)),
	}
	for i, m := range r.Months {
		s.Months[i] = Month{
			Period:   m.Period,
			Income:   m.Income.StringFixed(2),
			Expenses: m.Expenses.StringFixed(2),
			Net:      m.Net.StringFixed(2),
		}
	}
	for i, c := range r.Summaries {
		s.CategoryMonths[i] = CategoryMonth{
			Period:         c.Period,
			Category:       c.Category,
			Total:          c.Total.StringFixed(2),
			Count:          c.Count,
			PercentOfTotal: c.PercentOfTotal,
		}
	}
	return s
}

func shares(in []aggregate.CategoryShare) []CategoryShare {
	out := make([]CategoryShare, len(in))
	for i, c := range in {
		out[i] = CategoryShare{
			Category: c.Category,
			Amount:   c.Amount.StringFixed(2),
			Count:    c.Count,
			Share:    c.Share,
		}
	}
	return out
}

// Suggestion is one line of advice.
type Suggestion struct {
	Kind     string `json:"kind"`
	Category string `json:"category,omitempty"`
	Text     string `json:"text"`
}

// BudgetLine is one row of the recommended monthly budget.
type BudgetLine struct {
	Category    string  `json:"category"`
	Percentage  float64 `json:"percentage" doc:"Share of monthly income"`
	Recommended string  `json:"recommended"`
	Current     string  `json:"current"`
	Difference  string  `json:"difference" doc:"Recommended minus current"`
}

func suggestions(in []advice.Suggestion) []Suggestion {
	out := make([]Suggestion, len(in))
	for i, s := range in {
		out[i] = Suggestion{Kind: string(s.Kind), Category: s.Category, Text: s.Text}
	}
	return out
}

func budgetLines(in []advice.BudgetLine) []BudgetLine {
	out := make([]BudgetLine, len(in))
	for i, l := range in {
		out[i] = BudgetLine{
			Category:    l.Category,
			Percentage:  l.Percentage,
			Recommended: l.Recommended.StringFixed(2),
			Current:     l.Current.StringFixed(2),
			Difference:  l.Difference.StringFixed(2),
		}
	}
	return out
}

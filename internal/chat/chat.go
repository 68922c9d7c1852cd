package chat

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-coach/internal/aggregate"
	"github.com/carson-networks/budget-coach/internal/finance"
)

const maxSuggestedQuestions = 5

// Reply is a single chat answer.
type Reply struct {
	Topic    Topic
	Category string
	Text     string
}

// Responder answers free-text questions by substring triggers. It keeps no
// state between calls.
type Responder struct {
	currency string
}

func NewResponder(currencySymbol string) *Responder {
	if currencySymbol == "" {
		currencySymbol = finance.DefaultCurrencySymbol
	}
	return &Responder{currency: currencySymbol}
}

// Respond answers question using the current report. profile may be nil when
// the questionnaire has not been filled in.
func (r *Responder) Respond(question string, report aggregate.Report, profile *finance.UserProfile) Reply {
	text := strings.ToLower(strings.TrimSpace(question))

	if containsAny(text, spendWords) {
		if category, ok := mentionedCategory(text); ok {
			return Reply{Topic: TopicCategorySpend, Category: category, Text: r.categorySpend(category, report)}
		}
		if top, ok := report.TopCategory(); ok && containsAny(text, []string{"spend", "spent"}) {
			return Reply{Topic: TopicTopSpend, Category: top.Category, Text: r.topSpend(top, report)}
		}
	}

	topic := identifyTopic(text)
	reply := pick(templates[topic], text)
	if extra := r.personalContext(topic, report, profile); extra != "" {
		reply += "\n\n" + extra
	}
	return Reply{Topic: topic, Text: reply}
}

// SuggestedQuestions offers follow-up questions that fit the user's numbers.
func (r *Responder) SuggestedQuestions(report aggregate.Report, profile *finance.UserProfile) []string {
	if profile == nil || report.Empty() {
		return append([]string(nil), defaultQuestions...)
	}

	var out []string
	switch {
	case report.HealthScore < 40:
		out = append(out,
			"How can I improve my financial health?",
			"What should I prioritize: saving or paying debt?",
			"How can I reduce my monthly expenses?",
		)
	case report.HealthScore > 70:
		out = append(out,
			"How can I optimize my investments?",
			"What are good long-term investment options?",
			"How can I maximize my savings rate?",
		)
	}

	if report.MonthlyExpensesAvg.GreaterThan(report.MonthlyIncomeAvg) {
		out = append(out, "I'm spending more than I earn. What should I do?")
	}

	top := make(map[string]bool, len(report.TopCategories))
	for _, c := range report.TopCategories {
		top[c.Category] = true
	}
	if top["Food & Dining"] {
		out = append(out, "How can I reduce my food expenses?")
	}
	if top["Transportation"] {
		out = append(out, "What are cost-effective transportation options?")
	}
	if top["Shopping"] {
		out = append(out, "How can I save money on shopping?")
	}

	if profile.SavingsTarget.IsPositive() && report.MonthlySavings.LessThan(profile.SavingsTarget) {
		out = append(out, "How can I reach my monthly savings target?")
	}

	out = append(out,
		"How should I allocate my monthly income?",
		"What's a good emergency fund amount?",
		"How can I track my expenses better?",
	)
	if len(out) > maxSuggestedQuestions {
		out = out[:maxSuggestedQuestions]
	}
	return out
}

func (r *Responder) categorySpend(category string, report aggregate.Report) string {
	if report.Empty() {
		return fmt.Sprintf("I don't have any transactions yet. Upload a statement and I can tell you how much you spend on %s.", category)
	}
	spend, ok := report.Category(category)
	if !ok {
		return fmt.Sprintf("You haven't spent anything on %s in the uploaded transactions.", category)
	}
	return fmt.Sprintf("You spent %s on %s across %d transactions (%.2f%% of your expenses). That's about %s per month.",
		r.money(spend.Amount), category, spend.Count, spend.Share, r.money(report.MonthlyCategorySpend(category)))
}

func (r *Responder) topSpend(top aggregate.CategoryShare, report aggregate.Report) string {
	return fmt.Sprintf("Your biggest expense category is %s at %s (%.2f%% of your expenses). In total you spent %s.",
		top.Category, r.money(top.Amount), top.Share, r.money(report.TotalExpenses))
}

func (r *Responder) personalContext(topic Topic, report aggregate.Report, profile *finance.UserProfile) string {
	if report.Empty() {
		return ""
	}

	switch topic {
	case TopicBudget:
		if !report.MonthlyIncomeAvg.IsPositive() {
			return ""
		}
		switch {
		case report.SavingsRate < 10:
			return "Based on your current spending, consider reducing expenses in your top categories to improve your savings rate."
		case report.SavingsRate > 20:
			return "Great job on your savings rate! You're doing well with your budget."
		}
	case TopicSaving:
		if profile == nil || !profile.SavingsTarget.IsPositive() {
			return ""
		}
		if report.MonthlySavings.LessThan(profile.SavingsTarget) {
			gap := profile.SavingsTarget.Sub(report.MonthlySavings)
			return fmt.Sprintf("You're currently saving %s but your target is %s. You need to save %s more per month.",
				r.money(report.MonthlySavings), r.money(profile.SavingsTarget), r.money(gap))
		}
		return fmt.Sprintf("Excellent! You're meeting your savings target of %s per month.", r.money(profile.SavingsTarget))
	case TopicInvesting:
		if inv, ok := report.Category("Investments"); !ok || inv.Amount.IsZero() {
			return "I notice you don't have any investment transactions yet. This could be a great next step for you!"
		}
	case TopicFood, TopicTransport, TopicShopping:
		category := topicCategory[topic]
		if spend, ok := report.Category(category); ok {
			return fmt.Sprintf("Your %s expenses are %s. Here are some specific tips to reduce this category.",
				category, r.money(spend.Amount))
		}
	case TopicExpenses:
		if top, ok := report.TopCategory(); ok {
			return fmt.Sprintf("Your largest expense category is %s at %s.", top.Category, r.money(top.Amount))
		}
	}
	return ""
}

var topicCategory = map[Topic]string{
	TopicFood:      "Food & Dining",
	TopicTransport: "Transportation",
	TopicShopping:  "Shopping",
}

func (r *Responder) money(d decimal.Decimal) string {
	return finance.FormatMoney(r.currency, d)
}

func identifyTopic(text string) Topic {
	for _, t := range topicTriggers {
		if containsAny(text, t.keywords) {
			return t.topic
		}
	}
	return TopicGeneral
}

func mentionedCategory(text string) (string, bool) {
	for _, alias := range categoryAliases {
		if containsAny(text, alias.words) {
			return alias.category, true
		}
	}
	return "", false
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// pick chooses a template from the question text so the same question always
// gets the same answer.
func pick(options []string, text string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(text))
	return options[h.Sum32()%uint32(len(options))]
}

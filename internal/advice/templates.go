package advice

// Kind groups suggestions so clients can style or filter them.
type Kind string

const (
	KindSavingsGap         Kind = "savings_gap"
	KindSavingsOnTrack     Kind = "savings_on_track"
	KindBudgeting          Kind = "budgeting"
	KindLowSavings         Kind = "low_savings"
	KindCategory           Kind = "category"
	KindInvesting          Kind = "investing"
	KindBudgetOptimization Kind = "budget_optimization"
	KindOverspending       Kind = "overspending"
	KindGeneral            Kind = "general"
)

const budgetingTip = "Use the 50/30/20 rule: 50% for needs, 30% for wants, 20% for savings and debt repayment."

var lowSavingsTips = []string{
	"Set up automatic transfers to a savings account on payday to build your emergency fund.",
	"Start with saving 10% of your income and gradually increase it to 20%.",
	"Track your expenses daily to identify areas where you can cut back and save more.",
	"Open a high-yield savings account to earn better returns on your savings.",
}

var categoryTips = map[string]string{
	"Food & Dining":  "Your food expenses are high. Try meal planning and cooking at home to save 30-40% on food costs.",
	"Transportation": "Your transportation costs are significant. Consider carpooling or public transport to reduce fuel expenses.",
	"Shopping":       "Your shopping expenses are high. Apply a 24-hour rule before making non-essential purchases.",
	"Entertainment":  "Review your subscription services and cancel unused ones. Look for free or low-cost entertainment.",
}

const genericCategoryTip = "Your %s spending is above the recommended %s%% of income. Set a monthly cap for it and track it weekly."

var investingTips = []string{
	"Start investing in low-risk options like index funds or SIPs to grow your wealth over time.",
	"Start with small amounts in mutual funds or SIPs to build investment habits.",
}

var budgetOptimizationTips = []string{
	"Create a detailed monthly budget and track your spending against it.",
	"Review your budget monthly and adjust based on your spending patterns.",
}

const overspendingTip = "You are spending more than you earn. Cut non-essential categories first and avoid new debt until expenses fall below income."

var generalTips = []string{
	"Use budgeting apps to track your expenses and stay within your financial goals.",
	"Set specific financial goals like building an emergency fund or saving for a vacation.",
	"Educate yourself about personal finance through books, podcasts, or online courses.",
	"Build an emergency fund of 3-6 months of expenses before making major investments.",
	"Pay off high-interest debt first before focusing on investments or savings.",
}

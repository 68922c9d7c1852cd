package chat

// Topic is the subject a question was matched to.
type Topic string

const (
	TopicCategorySpend Topic = "category_spend"
	TopicTopSpend      Topic = "top_spend"
	TopicBudget        Topic = "budget"
	TopicSaving        Topic = "saving"
	TopicInvesting     Topic = "investing"
	TopicDebt          Topic = "debt"
	TopicFood          Topic = "food"
	TopicTransport     Topic = "transport"
	TopicShopping      Topic = "shopping"
	TopicExpenses      Topic = "expenses"
	TopicGeneral       Topic = "general"
)

type trigger struct {
	topic    Topic
	keywords []string
}

// Checked in order; the first topic with a matching keyword wins.
var topicTriggers = []trigger{
	{topic: TopicBudget, keywords: []string{"budget", "allocate", "spend"}},
	{topic: TopicSaving, keywords: []string{"save", "saving", "emergency fund"}},
	{topic: TopicInvesting, keywords: []string{"invest", "mutual fund", "sip", "stock"}},
	{topic: TopicDebt, keywords: []string{"debt", "loan", "credit card", "pay off"}},
	{topic: TopicFood, keywords: []string{"food", "eating", "restaurant", "grocery"}},
	{topic: TopicTransport, keywords: []string{"transport", "fuel", "petrol", "uber", "taxi"}},
	{topic: TopicShopping, keywords: []string{"shopping", "amazon", "flipkart", "buy", "purchase"}},
	{topic: TopicExpenses, keywords: []string{"expense", "spending", "cost", "reduce"}},
}

var spendWords = []string{"spend", "spent", "spending", "how much"}

type categoryAlias struct {
	category string
	words    []string
}

// Words in a question that name a category.
var categoryAliases = []categoryAlias{
	{category: "Food & Dining", words: []string{"food", "dining", "eating", "restaurant", "grocer"}},
	{category: "Transportation", words: []string{"transport", "fuel", "petrol", "uber", "taxi", "commute"}},
	{category: "Shopping", words: []string{"shopping", "amazon", "clothes"}},
	{category: "Bills & Utilities", words: []string{"bill", "utilit", "electricity", "subscription"}},
	{category: "Entertainment", words: []string{"entertainment", "movie", "netflix"}},
	{category: "Healthcare", words: []string{"health", "medical", "medicine", "doctor"}},
	{category: "Education", words: []string{"education", "tuition", "school", "course"}},
	{category: "Travel", words: []string{"travel", "trip", "vacation", "hotel", "flight"}},
	{category: "Investments", words: []string{"investment", "invested"}},
}

var templates = map[Topic][]string{
	TopicBudget: {
		"Here's a simple budgeting approach: use the 50/30/20 rule. 50% for needs, 30% for wants and 20% for savings and debt repayment.",
		"Start by tracking all your expenses for a month to understand where your money goes, then create a realistic budget.",
		"Set specific financial goals and allocate your income accordingly. A budget is a plan for your money.",
		"Use a budgeting app to track your expenses and stay within your financial goals.",
	},
	TopicSaving: {
		"Start small. Saving 100 a day adds up to 36,500 a year! Set up automatic transfers to make it easier.",
		"Build an emergency fund first (3-6 months of expenses), then focus on other savings goals.",
		"Consider high-yield savings accounts or fixed deposits for better returns on your savings.",
		"Set up automatic transfers to a savings account on payday to build your emergency fund.",
	},
	TopicInvesting: {
		"Start with low-risk options like index funds or SIPs. Time in the market beats timing the market.",
		"Diversify your investments across different asset classes to reduce risk.",
		"Consider your risk tolerance and investment horizon before making investment decisions.",
		"Start with small amounts in mutual funds or SIPs to build investment habits.",
	},
	TopicDebt: {
		"Focus on paying high-interest debt first (like credit cards) before low-interest debt.",
		"Consider debt consolidation if you have multiple high-interest loans.",
		"Create a debt repayment plan and stick to it. Every extra payment reduces the total interest.",
		"Pay more than the minimum payment on credit cards to reduce interest charges.",
	},
	TopicExpenses: {
		"Track your expenses daily using an app or a simple spreadsheet to identify spending patterns.",
		"Use the 24-hour rule for non-essential purchases: wait a day before buying.",
		"Look for ways to reduce recurring expenses like subscriptions you don't use.",
		"Create a shopping list and stick to it to avoid unnecessary purchases.",
	},
	TopicFood: {
		"Plan your meals for the week and make a grocery list to avoid impulse purchases.",
		"Cook in bulk and freeze portions for busy days to save time and money.",
		"Buy generic brands for basic items. They're often just as good as name brands.",
		"Limit eating out to special occasions and cook more meals at home.",
	},
	TopicTransport: {
		"Carpool with colleagues or friends to split fuel costs.",
		"Use public transportation when possible. It's much cheaper than driving.",
		"Consider walking or cycling for short distances to save money and stay healthy.",
		"Plan your routes efficiently to minimize fuel consumption.",
	},
	TopicShopping: {
		"Wait for sales and use coupons when shopping for non-essential items.",
		"Unsubscribe from marketing emails to reduce impulse buying.",
		"Use cash or debit cards for shopping to avoid credit card interest.",
		"Buy quality items that last longer instead of cheap items that need frequent replacement.",
	},
	TopicGeneral: {
		"Financial success comes from consistent small actions over time, not big changes overnight.",
		"Educate yourself about personal finance through books, podcasts or online courses.",
		"Set SMART financial goals: Specific, Measurable, Achievable, Relevant and Time-bound.",
		"Build an emergency fund of 3-6 months of expenses before making major investments.",
	},
}

var defaultQuestions = []string{
	"How can I start budgeting?",
	"What's the best way to save money?",
	"Should I invest in mutual funds?",
	"How much should I save for emergencies?",
	"How can I reduce my expenses?",
}

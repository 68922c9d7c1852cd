// Package demo generates a plausible three-month statement for trying the
// dashboard without real bank data.
package demo

import (
	"math/rand/v2"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-coach/internal/finance"
)

type template struct {
	descriptions []string
	min, max     int64
	typ          finance.TransactionType
}

var templates = []template{
	{[]string{"SWIGGY FOOD DELIVERY", "ZOMATO ORDER", "DOMINOS PIZZA", "MCDONALDS", "STARBUCKS COFFEE", "GROCERY STORE", "SUPERMARKET", "RESTAURANT BILL"}, 50, 800, finance.Debit},
	{[]string{"UBER RIDE", "OLA CAB", "PETROL PUMP", "DIESEL FILLING", "BUS TICKET", "TRAIN TICKET", "PARKING FEE", "TOLL GATE"}, 20, 500, finance.Debit},
	{[]string{"AMAZON PURCHASE", "FLIPKART ORDER", "MYNTRA SHOPPING", "CLOTHES STORE", "ELECTRONICS SHOP", "BOOKSTORE", "ONLINE SHOPPING", "MALL PURCHASE"}, 100, 2000, finance.Debit},
	{[]string{"ELECTRICITY BILL", "WATER BILL", "INTERNET BILL", "PHONE BILL", "GAS BILL", "RENT PAYMENT", "INSURANCE PREMIUM", "CREDIT CARD BILL"}, 200, 1500, finance.Debit},
	{[]string{"NETFLIX SUBSCRIPTION", "SPOTIFY PREMIUM", "MOVIE TICKET", "GAME PURCHASE", "CONCERT TICKET", "THEATER SHOW", "GAMING STORE", "STREAMING SERVICE"}, 50, 1000, finance.Debit},
	{[]string{"SALARY CREDIT", "BONUS PAYMENT", "FREELANCE INCOME", "INVESTMENT RETURN", "REFUND CREDIT", "CASHBACK REWARD", "INTEREST EARNED", "DIVIDEND PAYMENT"}, 5000, 50000, finance.Credit},
}

// Days is how far back generated transactions reach.
const Days = 90

// Transactions returns n uncategorized transactions dated within Days of end,
// ordered by date. The same rng seed gives the same statement.
func Transactions(rng *rand.Rand, n int, end time.Time) []finance.Transaction {
	start := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -Days)

	out := make([]finance.Transaction, n)
	for i := range out {
		t := templates[rng.IntN(len(templates))]
		// Whole paise between min and max rupees.
		paise := t.min*100 + rng.Int64N((t.max-t.min)*100+1)
		out[i] = finance.Transaction{
			ID:          uuid.Must(uuid.NewV4()),
			Date:        start.AddDate(0, 0, rng.IntN(Days+1)),
			Description: t.descriptions[rng.IntN(len(t.descriptions))],
			Amount:      decimal.New(paise, -2),
			Type:        t.typ,
		}.Normalize()
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Profile is a sample questionnaire to go with the demo statement.
func Profile() finance.UserProfile {
	return finance.UserProfile{
		Income:             decimal.NewFromInt(50000),
		AgeBand:            finance.AgeBand26To35,
		Occupation:         "Software Engineer",
		SavingsTarget:      decimal.NewFromInt(15000),
		PriorityCategories: []string{"Food & Dining", "Transportation", "Shopping"},
		CutCostCategories:  []string{"Food & Dining", "Entertainment"},
	}
}

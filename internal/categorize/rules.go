package categorize

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/carson-networks/budget-coach/internal/finance"
)

// Rule maps a category onto the keywords that select it. Rules are checked
// in slice order, so earlier rules win.
type Rule struct {
	Category string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

type rulesFile struct {
	Categories []Rule `yaml:"categories"`
}

var ErrNoRules = errors.New("rules file defines no categories")

// DefaultRules returns the built-in keyword table.
func DefaultRules() []Rule {
	return []Rule{
		{Category: "Food & Dining", Keywords: []string{
			"food", "restaurant", "swiggy", "zomato", "dominos", "mcdonalds",
			"starbucks", "grocery", "supermarket", "cafe", "dining", "meal",
			"pizza", "burger", "coffee", "tea", "snack", "lunch", "dinner",
		}},
		{Category: "Transportation", Keywords: []string{
			"uber", "ola", "taxi", "cab", "petrol", "diesel", "fuel", "gas",
			"bus", "train", "metro", "parking", "toll", "transport", "ride",
		}},
		{Category: "Shopping", Keywords: []string{
			"amazon", "flipkart", "myntra", "shopping", "mall", "store", "shop",
			"clothes", "fashion", "electronics", "book", "purchase", "order",
		}},
		{Category: "Bills & Utilities", Keywords: []string{
			"electricity", "water", "internet", "phone", "bill", "utility",
			"gas", "rent", "insurance", "credit card", "premium", "subscription",
		}},
		{Category: "Entertainment", Keywords: []string{
			"netflix", "spotify", "movie", "cinema", "game", "gaming", "entertainment",
			"concert", "theater", "streaming", "music", "video", "show",
		}},
		{Category: "Healthcare", Keywords: []string{
			"hospital", "doctor", "medicine", "pharmacy", "health", "medical",
			"clinic", "dental", "eye", "prescription", "treatment",
		}},
		{Category: "Education", Keywords: []string{
			"school", "college", "university", "course", "book", "education",
			"tuition", "fee", "student", "learning", "training",
		}},
		{Category: "Travel", Keywords: []string{
			"hotel", "flight", "travel", "vacation", "trip", "booking",
			"airline", "resort", "tourism", "journey",
		}},
		{Category: "Investments", Keywords: []string{
			"investment", "mutual fund", "stock", "savings", "sip", "equity",
			"portfolio", "fund", "trading", "brokerage",
		}},
		{Category: "Income", Keywords: []string{
			"salary", "bonus", "income", "credit", "deposit", "refund",
			"cashback", "interest", "dividend", "freelance", "payment",
		}},
	}
}

// LoadRules reads a YAML rules file of the form
//
//	categories:
//	  - name: Food & Dining
//	    keywords: [food, restaurant]
func LoadRules(path string) ([]Rule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	var file rulesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	if len(file.Categories) == 0 {
		return nil, ErrNoRules
	}

	rules := make([]Rule, 0, len(file.Categories))
	for i, r := range file.Categories {
		name := strings.TrimSpace(r.Category)
		if name == "" {
			return nil, fmt.Errorf("rules file %s: category %d has no name", path, i)
		}
		if name == finance.OtherCategory {
			continue
		}
		rules = append(rules, Rule{Category: name, Keywords: r.Keywords})
	}
	return rules, nil
}

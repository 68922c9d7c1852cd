package aggregate

import (
	"github.com/shopspring/decimal"
)

const (
	baseHealthScore = 50
	minHealthScore  = 0
	maxHealthScore  = 100
)

var (
	ratioGood     = decimal.RequireFromString("0.2")
	ratioFair     = decimal.RequireFromString("0.1")
	targetNear    = decimal.RequireFromString("0.8")
	targetHalfway = decimal.RequireFromString("0.5")
)

// healthScore is a fixed heuristic combining savings ratio, progress toward the
// savings target, the spending trend and how concentrated expenses are.
func healthScore(r Report, savingsTarget decimal.Decimal) int {
	score := baseHealthScore

	if r.MonthlyIncomeAvg.IsPositive() {
		savings := r.MonthlyIncomeAvg.Sub(r.MonthlyExpensesAvg)
		ratio := savings.Div(r.MonthlyIncomeAvg)

		switch {
		case ratio.GreaterThan(ratioGood):
			score += 20
		case ratio.GreaterThan(ratioFair):
			score += 10
		case ratio.IsPositive():
			score += 5
		default:
			score -= 20
		}

		if savingsTarget.IsPositive() {
			switch {
			case savings.GreaterThanOrEqual(savingsTarget):
				score += 15
			case savings.GreaterThanOrEqual(savingsTarget.Mul(targetNear)):
				score += 10
			case savings.GreaterThanOrEqual(savingsTarget.Mul(targetHalfway)):
				score += 5
			}
		}
	}

	switch r.Trend {
	case TrendDecreasing:
		score += 10
	case TrendIncreasing:
		score -= 10
	}

	if top, ok := r.TopCategory(); ok {
		switch {
		case top.Share > 50:
			score -= 10
		case top.Share < 30:
			score += 5
		}
	}

	if score < minHealthScore {
		return minHealthScore
	}
	if score > maxHealthScore {
		return maxHealthScore
	}
	return score
}

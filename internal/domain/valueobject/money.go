package valueobject

import "github.com/shopspring/decimal"

// MoneyScale is the number of fractional digits kept for money and percentages.
const MoneyScale = 2

var hundred = decimal.NewFromInt(100)

// Achievement returns actual as a percentage of target, rounded half-up to two
// decimal places. A target that is zero or negative yields zero.
func Achievement(actual, target decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() {
		return decimal.Zero
	}
	return actual.Mul(hundred).DivRound(target, MoneyScale)
}

// IsAchieved reports whether an achievement percentage reaches 100.
func IsAchieved(achievement decimal.Decimal) bool {
	return achievement.GreaterThanOrEqual(hundred)
}

// FormatMoney renders an amount with exactly two decimal places.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(MoneyScale)
}

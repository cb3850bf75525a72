package valuation

import (
	"math"
	"time"

	"github.com/simaogato/wealthflow-forecast/internal/domain"
)

// LiabilityCalculator values debts amortized by a fixed monthly payment.
// Results are negative balances, or exactly 0 once paid off.
type LiabilityCalculator struct{}

// Liabilities is the shared LiabilityCalculator
var Liabilities = LiabilityCalculator{}

// CalculateValueAtDate returns the remaining (negative) balance at targetDate
// Logic:
//   - Non-liability records and dates before the debt started: 0
//   - Without a monthly payment the debt never shrinks
//   - Otherwise the payment is taken linearly over fractional months
//     (30.44-day basis) since the start date
func (c LiabilityCalculator) CalculateValueAtDate(liability *domain.AssetLiability, targetDate time.Time) float64 {
	if !liability.IsLiability() {
		return 0
	}

	start := liability.StartDate()
	if start == nil || targetDate.Before(*start) {
		return 0
	}

	initialDebt := math.Abs(ParseAmount(liability.CurrentValue))
	monthlyPayment := math.Abs(parseAmountOrZero(liability.MonthlyExpense))

	if monthlyPayment == 0 {
		return negate(initialDebt)
	}

	monthsElapsed := ElapsedMonths(*start, targetDate)
	amountPaid := monthlyPayment * monthsElapsed
	remaining := math.Max(0, initialDebt-amountPaid)

	return negate(remaining)
}

// ProjectValue returns the remaining (negative) balance months from now.
// It works from the stored CurrentValue and does not replay the payment
// history, so it can disagree with CalculateValueAtDate for the same day.
func (c LiabilityCalculator) ProjectValue(liability *domain.AssetLiability, months int) float64 {
	if !liability.IsLiability() {
		return 0
	}

	currentDebt := math.Abs(ParseAmount(liability.CurrentValue))
	monthlyPayment := math.Abs(parseAmountOrZero(liability.MonthlyExpense))

	remaining := math.Max(0, currentDebt-monthlyPayment*float64(months))
	return negate(remaining)
}

// negate flips a debt magnitude into a balance without producing -0
func negate(amount float64) float64 {
	if amount == 0 {
		return 0
	}
	return -amount
}

package goal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/simaogato/wealthflow-forecast/internal/domain"
	"github.com/simaogato/wealthflow-forecast/internal/usecase/valuation"
)

// maxMonths is the longest horizon still reported as reachable
const maxMonths = valuation.MonthsPerYear * 100

// Prediction describes when a goal becomes affordable
type Prediction struct {
	Remaining     decimal.Decimal
	FreeCapital   decimal.Decimal
	AffordableNow bool
	Reachable     bool       // False when nothing is left over each month
	MonthsNeeded  int        // Zero when affordable now or unreachable
	EstimatedDate *time.Time // Nil when unreachable
}

// MonthlyFreeCapital calculates what is left each month to save towards goals
// Logic: FreeCapital = Income - Expenses - Sum(|MonthlyExpense|) of liabilities still carrying a balance
// Liabilities whose stored balance is already zero no longer cost anything.
func MonthlyFreeCapital(income, expenses decimal.Decimal, records []*domain.AssetLiability) decimal.Decimal {
	free := income.Sub(expenses)

	for _, record := range records {
		if !record.IsLiability() || record.MonthlyExpense == "" {
			continue
		}
		balance, err := decimal.NewFromString(record.CurrentValue)
		if err != nil || balance.IsZero() {
			continue
		}
		payment, err := decimal.NewFromString(record.MonthlyExpense)
		if err != nil {
			continue
		}
		free = free.Sub(payment.Abs())
	}

	return free
}

// Predict estimates when a goal becomes affordable given the monthly free capital
// Logic:
//  1. Nothing remaining -> affordable now
//  2. No positive free capital -> unreachable
//  3. Otherwise MonthsNeeded = ceil(Remaining / FreeCapital)
func Predict(goal *domain.Goal, freeCapital decimal.Decimal, now time.Time) Prediction {
	remaining := goal.Remaining()
	prediction := Prediction{
		Remaining:   remaining,
		FreeCapital: freeCapital,
	}

	if remaining.IsZero() {
		prediction.AffordableNow = true
		prediction.Reachable = true
		prediction.EstimatedDate = &now
		return prediction
	}

	if freeCapital.LessThanOrEqual(decimal.Zero) {
		return prediction
	}

	// Compared as a decimal so huge quotients never overflow int
	quotient := remaining.Div(freeCapital).Ceil()
	if quotient.GreaterThan(decimal.NewFromInt(maxMonths)) {
		// A century away is as good as never
		return prediction
	}
	months := int(quotient.IntPart())

	estimated := now.AddDate(0, months, 0)
	prediction.Reachable = true
	prediction.MonthsNeeded = months
	prediction.EstimatedDate = &estimated

	return prediction
}

package valuation

import (
	"math"
	"time"

	"github.com/simaogato/wealthflow-forecast/internal/domain"
)

// AssetValueCalculator values appreciating or depreciating assets.
// It holds no state and is safe for concurrent use.
type AssetValueCalculator struct{}

// Assets is the shared AssetValueCalculator
var Assets = AssetValueCalculator{}

// CalculateValueAtDate returns the asset's value at targetDate
// Logic:
//   - Before CreatedAt (or now, when unset) the asset did not exist: 0
//   - Before the purchase date (PurchaseDate, else CreatedAt): 0
//   - Otherwise compound the base value (PurchasePrice, else CurrentValue)
//     over the elapsed years since purchase
//
// The record type is not checked here, any record can be valued.
func (c AssetValueCalculator) CalculateValueAtDate(asset *domain.AssetLiability, targetDate time.Time) float64 {
	createdAt := asset.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	if targetDate.Before(createdAt) {
		return 0
	}

	purchaseDate := createdAt
	if asset.PurchaseDate != nil {
		purchaseDate = *asset.PurchaseDate
	}

	base := ParseAmount(asset.CurrentValue)
	if price := ParseAmount(asset.PurchasePrice); !math.IsNaN(price) {
		base = price
	}

	if targetDate.Before(purchaseDate) {
		return 0
	}

	years := ElapsedYears(purchaseDate, targetDate)
	return compound(asset, base, years)
}

// ProjectValue returns the asset's value months from now.
// The projection starts from CurrentValue, not from the purchase price.
func (c AssetValueCalculator) ProjectValue(asset *domain.AssetLiability, months int) float64 {
	years := float64(months) / MonthsPerYear
	return compound(asset, ParseAmount(asset.CurrentValue), years)
}

// compound applies the asset's growth or decay rate to base over years.
// The appreciation rate is checked first and wins when both rates are set.
func compound(asset *domain.AssetLiability, base float64, years float64) float64 {
	if asset.AppreciationRate != "" {
		rate := ParseAmount(asset.AppreciationRate) / 100
		return base * math.Pow(1+rate, years)
	}

	if asset.DepreciationRate != "" {
		rate := ParseAmount(asset.DepreciationRate) / 100
		// A decay above 100% a year leaves nothing
		factor := 1 - rate
		if factor < 0 {
			factor = 0
		}
		return math.Max(0, base*math.Pow(factor, years))
	}

	return base
}

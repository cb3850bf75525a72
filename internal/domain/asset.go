package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetType discriminates owned value from owed debt
type AssetType string

const (
	AssetTypeAsset     AssetType = "asset"
	AssetTypeLiability AssetType = "liability"
)

// AssetLiability represents an asset or a liability record owned by a user.
// Numeric fields are decimal strings as stored; an empty string means the
// field is absent.
type AssetLiability struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Name             string
	Type             AssetType
	CurrentValue     string     // Valuation (asset) or outstanding principal magnitude (liability). Never negative in storage.
	PurchasePrice    string     // Compounding base when present
	PurchaseDate     *time.Time // Falls back to CreatedAt
	CreatedAt        time.Time
	AppreciationRate string // Percent per year
	DepreciationRate string // Percent per year
	MonthlyExpense   string // Liabilities: fixed monthly payment
}

// IsLiability reports whether the record is a liability
func (a *AssetLiability) IsLiability() bool {
	return a.Type == AssetTypeLiability
}

// StartDate returns the date the asset was acquired or the debt began.
// Returns nil when neither PurchaseDate nor CreatedAt is set.
func (a *AssetLiability) StartDate() *time.Time {
	if a.PurchaseDate != nil {
		return a.PurchaseDate
	}
	if !a.CreatedAt.IsZero() {
		createdAt := a.CreatedAt
		return &createdAt
	}
	return nil
}

// Validate ensures the record adheres to domain rules before it is written.
// The calculators never call this; they tolerate malformed rows.
func (a *AssetLiability) Validate() error {
	if a.Name == "" {
		return Invalidf("asset name cannot be empty")
	}

	if a.Type != AssetTypeAsset && a.Type != AssetTypeLiability {
		return Invalidf("asset type must be asset or liability")
	}

	currentValue, err := decimal.NewFromString(a.CurrentValue)
	if err != nil {
		return Invalidf("invalid current value")
	}
	if currentValue.LessThan(decimal.Zero) {
		return Invalidf("current value must be non-negative")
	}
	if err := CheckAmount("current value", currentValue); err != nil {
		return err
	}

	if a.PurchasePrice != "" {
		price, err := decimal.NewFromString(a.PurchasePrice)
		if err != nil {
			return Invalidf("invalid purchase price")
		}
		if price.LessThan(decimal.Zero) {
			return Invalidf("purchase price must be non-negative")
		}
		if err := CheckAmount("purchase price", price); err != nil {
			return err
		}
	}

	if a.AppreciationRate != "" && a.DepreciationRate != "" {
		return Invalidf("asset must have at most one of appreciation rate and depreciation rate")
	}
	if err := validateRate(a.AppreciationRate, "appreciation"); err != nil {
		return err
	}
	if err := validateRate(a.DepreciationRate, "depreciation"); err != nil {
		return err
	}

	if a.MonthlyExpense != "" {
		expense, err := decimal.NewFromString(a.MonthlyExpense)
		if err != nil {
			return Invalidf("invalid monthly expense")
		}
		if err := CheckAmount("monthly expense", expense); err != nil {
			return err
		}
	}

	return nil
}

// validateRate checks an optional percent-per-year rate lies in [0, 100]
func validateRate(rate string, kind string) error {
	if rate == "" {
		return nil
	}
	value, err := decimal.NewFromString(rate)
	if err != nil {
		return Invalidf("invalid %s rate", kind)
	}
	if value.LessThan(decimal.Zero) || value.GreaterThan(decimal.NewFromInt(100)) {
		return Invalidf("%s rate must be between 0 and 100", kind)
	}
	return nil
}

package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a wishlist item a user is saving towards
type Goal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	SavedAmount  decimal.Decimal
	CreatedAt    time.Time
}

// Validate ensures the goal adheres to domain rules
func (g *Goal) Validate() error {
	if g.Name == "" {
		return Invalidf("goal name cannot be empty")
	}
	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return Invalidf("goal target amount must be positive")
	}
	if g.SavedAmount.LessThan(decimal.Zero) {
		return Invalidf("goal saved amount must be non-negative")
	}
	if err := CheckAmount("goal target amount", g.TargetAmount); err != nil {
		return err
	}
	if err := CheckAmount("goal saved amount", g.SavedAmount); err != nil {
		return err
	}
	return nil
}

// Remaining returns how much is still missing to reach the target, never negative
func (g *Goal) Remaining() decimal.Decimal {
	return decimal.Max(decimal.Zero, g.TargetAmount.Sub(g.SavedAmount))
}

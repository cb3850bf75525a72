package forecast

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/wealthflow-forecast/internal/domain"
	"github.com/simaogato/wealthflow-forecast/internal/usecase/valuation"
)

// MaxPoints bounds the length of a history or projection series (50 years of months)
const MaxPoints = 600

// ErrInvalidValuation is returned when a record values to NaN or infinity,
// which happens when its stored numbers are malformed
var ErrInvalidValuation = errors.New("invalid valuation")

// NetWorthResult represents the calculated net worth
type NetWorthResult struct {
	Assets      decimal.Decimal
	Liabilities decimal.Decimal // Zero or negative
	Total       decimal.Decimal
}

// NetWorthPoint is one entry of a history or projection series
type NetWorthPoint struct {
	Date        time.Time
	MonthOffset int
	NetWorthResult
}

// ForecastService aggregates asset and liability valuations into net worth
type ForecastService struct {
	AssetRepo domain.AssetRepository
	Now       func() time.Time
}

// NewForecastService creates a new ForecastService instance
func NewForecastService(assetRepo domain.AssetRepository) *ForecastService {
	return &ForecastService{
		AssetRepo: assetRepo,
		Now:       time.Now,
	}
}

// GetNetWorth calculates a user's net worth at a given date
// Logic:
//   - Assets: Sum of every asset valued with the AssetValueCalculator
//   - Liabilities: Sum of every liability valued with the LiabilityCalculator (negative)
//   - Total: Assets + Liabilities
func (s *ForecastService) GetNetWorth(ctx context.Context, userID uuid.UUID, at time.Time) (*NetWorthResult, error) {
	records, err := s.AssetRepo.ListByUser(ctx, userID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	return netWorthAt(records, at)
}

// GetHistory returns one net worth point per month from `from` up to and including `to`
// All points are computed from a single read of the user's records
func (s *ForecastService) GetHistory(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]NetWorthPoint, error) {
	if to.Before(from) {
		return nil, domain.Invalidf("invalid range: from must not be after to")
	}

	records, err := s.AssetRepo.ListByUser(ctx, userID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	points := make([]NetWorthPoint, 0)
	for offset := 0; ; offset++ {
		date := from.AddDate(0, offset, 0)
		if date.After(to) {
			break
		}
		if offset >= MaxPoints {
			return nil, domain.Invalidf("invalid range: more than %d months requested", MaxPoints)
		}

		result, err := netWorthAt(records, date)
		if err != nil {
			return nil, err
		}
		points = append(points, NetWorthPoint{Date: date, MonthOffset: offset, NetWorthResult: *result})
	}

	return points, nil
}

// Project returns the projected net worth for every month offset 0..months from now.
// Projections start from the stored current values, not from the purchase history.
func (s *ForecastService) Project(ctx context.Context, userID uuid.UUID, months int) ([]NetWorthPoint, error) {
	if months < 0 || months > MaxPoints {
		return nil, domain.Invalidf("invalid months: must be between 0 and %d", MaxPoints)
	}

	records, err := s.AssetRepo.ListByUser(ctx, userID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	now := s.Now()
	points := make([]NetWorthPoint, 0, months+1)
	for offset := 0; offset <= months; offset++ {
		assets := decimal.Zero
		liabilities := decimal.Zero

		for _, record := range records {
			switch record.Type {
			case domain.AssetTypeAsset:
				value, err := toDecimal(record, valuation.Assets.ProjectValue(record, offset))
				if err != nil {
					return nil, err
				}
				assets = assets.Add(value)
			case domain.AssetTypeLiability:
				value, err := toDecimal(record, valuation.Liabilities.ProjectValue(record, offset))
				if err != nil {
					return nil, err
				}
				liabilities = liabilities.Add(value)
			}
		}

		points = append(points, NetWorthPoint{
			Date:           now.AddDate(0, offset, 0),
			MonthOffset:    offset,
			NetWorthResult: newResult(assets, liabilities),
		})
	}

	return points, nil
}

// netWorthAt values every record at the given date and sums them by type
func netWorthAt(records []*domain.AssetLiability, at time.Time) (*NetWorthResult, error) {
	assets := decimal.Zero
	liabilities := decimal.Zero

	for _, record := range records {
		switch record.Type {
		case domain.AssetTypeAsset:
			value, err := toDecimal(record, valuation.Assets.CalculateValueAtDate(record, at))
			if err != nil {
				return nil, err
			}
			assets = assets.Add(value)
		case domain.AssetTypeLiability:
			value, err := toDecimal(record, valuation.Liabilities.CalculateValueAtDate(record, at))
			if err != nil {
				return nil, err
			}
			liabilities = liabilities.Add(value)
		}
	}

	result := newResult(assets, liabilities)
	return &result, nil
}

// ValueOf values a single record at the given date, dispatching on its type
func ValueOf(record *domain.AssetLiability, at time.Time) (decimal.Decimal, error) {
	var value float64
	if record.IsLiability() {
		value = valuation.Liabilities.CalculateValueAtDate(record, at)
	} else {
		value = valuation.Assets.CalculateValueAtDate(record, at)
	}

	result, err := toDecimal(record, value)
	if err != nil {
		return decimal.Zero, err
	}
	return result.Round(2), nil
}

// toDecimal converts a calculator result, rejecting NaN and infinities
func toDecimal(record *domain.AssetLiability, value float64) (decimal.Decimal, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return decimal.Zero, fmt.Errorf("%w: record %s (%s) has malformed numeric fields", ErrInvalidValuation, record.ID, record.Name)
	}
	return decimal.NewFromFloat(value), nil
}

// newResult rounds the sums to cents and derives the total
func newResult(assets, liabilities decimal.Decimal) NetWorthResult {
	assets = assets.Round(2)
	liabilities = liabilities.Round(2)
	return NetWorthResult{
		Assets:      assets,
		Liabilities: liabilities,
		Total:       assets.Add(liabilities),
	}
}

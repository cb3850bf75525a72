package portfolio

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/wealthflow-forecast/internal/domain"
	"github.com/simaogato/wealthflow-forecast/internal/usecase/forecast"
)

// RegisterAssetInput holds the fields of a new asset or liability.
// Numeric fields are decimal strings; empty means absent.
type RegisterAssetInput struct {
	UserID           uuid.UUID
	Name             string
	Type             domain.AssetType
	CurrentValue     string
	PurchasePrice    string
	PurchaseDate     *time.Time
	AppreciationRate string
	DepreciationRate string
	MonthlyExpense   string
}

// PortfolioService handles asset and liability management
type PortfolioService struct {
	AssetRepo domain.AssetRepository
	Now       func() time.Time
}

// NewPortfolioService creates a new PortfolioService instance
func NewPortfolioService(assetRepo domain.AssetRepository) *PortfolioService {
	return &PortfolioService{
		AssetRepo: assetRepo,
		Now:       time.Now,
	}
}

// RegisterAsset validates and stores a new record
// CreatedAt is set to now, so the record has no value for earlier dates
func (s *PortfolioService) RegisterAsset(ctx context.Context, input RegisterAssetInput) (*domain.AssetLiability, error) {
	asset := &domain.AssetLiability{
		ID:               uuid.New(),
		UserID:           input.UserID,
		Name:             input.Name,
		Type:             input.Type,
		CurrentValue:     input.CurrentValue,
		PurchasePrice:    input.PurchasePrice,
		PurchaseDate:     input.PurchaseDate,
		CreatedAt:        s.Now(),
		AppreciationRate: input.AppreciationRate,
		DepreciationRate: input.DepreciationRate,
		MonthlyExpense:   input.MonthlyExpense,
	}

	if err := asset.Validate(); err != nil {
		return nil, err
	}

	if err := s.AssetRepo.Create(ctx, asset); err != nil {
		return nil, err
	}

	return asset, nil
}

// UpdateCurrentValue overwrites the stored current value of a record
// Logic: the value must be non-negative, liabilities store their magnitude
func (s *PortfolioService) UpdateCurrentValue(ctx context.Context, id uuid.UUID, value decimal.Decimal) error {
	if value.LessThan(decimal.Zero) {
		return domain.Invalidf("current value must be non-negative")
	}
	if err := domain.CheckAmount("current value", value); err != nil {
		return err
	}

	// Verify record exists
	if _, err := s.AssetRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.AssetRepo.UpdateCurrentValue(ctx, id, value.String())
}

// GetAssetValue values a single record at the given date
// Returns the record together with its value (negative for liabilities)
func (s *PortfolioService) GetAssetValue(ctx context.Context, id uuid.UUID, at time.Time) (*domain.AssetLiability, decimal.Decimal, error) {
	asset, err := s.AssetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, decimal.Zero, err
	}

	value, err := forecast.ValueOf(asset, at)
	if err != nil {
		return nil, decimal.Zero, err
	}

	return asset, value, nil
}

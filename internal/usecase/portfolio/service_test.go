package portfolio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/wealthflow-forecast/internal/domain"
	"github.com/simaogato/wealthflow-forecast/internal/usecase/forecast"
)

// MockAssetRepository is a mock implementation of AssetRepository for testing
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AssetLiability, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetLiability), args.Error(1)
}

func (m *MockAssetRepository) Create(ctx context.Context, asset *domain.AssetLiability) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) UpdateCurrentValue(ctx context.Context, id uuid.UUID, value string) error {
	args := m.Called(ctx, id, value)
	return args.Error(0)
}

func (m *MockAssetRepository) ListByUser(ctx context.Context, userID uuid.UUID, typeFilter domain.AssetType) ([]*domain.AssetLiability, error) {
	args := m.Called(ctx, userID, typeFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AssetLiability), args.Error(1)
}

func (m *MockAssetRepository) ListUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func TestRegisterAsset_Success(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	service := NewPortfolioService(mockAssetRepo)

	now := time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)
	service.Now = func() time.Time { return now }

	userID := uuid.New()
	mockAssetRepo.On("Create", ctx, mock.MatchedBy(func(a *domain.AssetLiability) bool {
		return a.UserID == userID &&
			a.Type == domain.AssetTypeAsset &&
			a.CurrentValue == "18000" &&
			a.CreatedAt.Equal(now)
	})).Return(nil)

	asset, err := service.RegisterAsset(ctx, RegisterAssetInput{
		UserID:           userID,
		Name:             "Car",
		Type:             domain.AssetTypeAsset,
		CurrentValue:     "18000",
		DepreciationRate: "15",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, asset.ID)
	mockAssetRepo.AssertExpectations(t)
}

func TestRegisterAsset_ValidationFails(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	service := NewPortfolioService(mockAssetRepo)

	_, err := service.RegisterAsset(ctx, RegisterAssetInput{
		UserID:           uuid.New(),
		Name:             "Car",
		Type:             domain.AssetTypeAsset,
		CurrentValue:     "18000",
		AppreciationRate: "2",
		DepreciationRate: "15",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at most one of appreciation rate and depreciation rate")
	mockAssetRepo.AssertNotCalled(t, "Create")
}

func TestUpdateCurrentValue(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	service := NewPortfolioService(mockAssetRepo)

	id := uuid.New()
	mockAssetRepo.On("GetByID", ctx, id).Return(&domain.AssetLiability{ID: id}, nil)
	mockAssetRepo.On("UpdateCurrentValue", ctx, id, "950.5").Return(nil)

	err := service.UpdateCurrentValue(ctx, id, decimal.RequireFromString("950.50"))

	assert.NoError(t, err)
	mockAssetRepo.AssertExpectations(t)
}

func TestUpdateCurrentValue_Negative(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	service := NewPortfolioService(mockAssetRepo)

	err := service.UpdateCurrentValue(ctx, uuid.New(), decimal.NewFromInt(-10))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "current value must be non-negative")
	mockAssetRepo.AssertNotCalled(t, "GetByID")
	mockAssetRepo.AssertNotCalled(t, "UpdateCurrentValue")
}

func TestUpdateCurrentValue_TooLarge(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	service := NewPortfolioService(mockAssetRepo)

	err := service.UpdateCurrentValue(ctx, uuid.New(), decimal.New(1, 16))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "current value must be less than")
	mockAssetRepo.AssertNotCalled(t, "UpdateCurrentValue")
}

func TestUpdateCurrentValue_NotFound(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	service := NewPortfolioService(mockAssetRepo)

	id := uuid.New()
	mockAssetRepo.On("GetByID", ctx, id).Return(nil, errors.New("asset not found"))

	err := service.UpdateCurrentValue(ctx, id, decimal.NewFromInt(10))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "asset not found")
	mockAssetRepo.AssertNotCalled(t, "UpdateCurrentValue")
}

func TestGetAssetValue_Liability(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	service := NewPortfolioService(mockAssetRepo)

	id := uuid.New()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	loan := &domain.AssetLiability{
		ID:             id,
		Name:           "Loan",
		Type:           domain.AssetTypeLiability,
		CurrentValue:   "12000",
		MonthlyExpense: "1000",
		CreatedAt:      start,
	}
	mockAssetRepo.On("GetByID", ctx, id).Return(loan, nil)

	target := start.Add(time.Duration(3 * 30.44 * 24 * float64(time.Hour)))
	record, value, err := service.GetAssetValue(ctx, id, target)

	require.NoError(t, err)
	assert.Equal(t, loan, record)
	assert.True(t, value.Equal(decimal.NewFromInt(-9000)), "got %s", value)
}

func TestGetAssetValue_Malformed(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	service := NewPortfolioService(mockAssetRepo)

	id := uuid.New()
	mockAssetRepo.On("GetByID", ctx, id).Return(&domain.AssetLiability{
		ID:           id,
		Type:         domain.AssetTypeAsset,
		CurrentValue: "oops",
		CreatedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}, nil)

	_, _, err := service.GetAssetValue(ctx, id, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.True(t, errors.Is(err, forecast.ErrInvalidValuation))
}

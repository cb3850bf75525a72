package snapshot

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

// MockSnapshotRepository is a mock implementation of SnapshotRepository for testing
type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) Add(ctx context.Context, snapshot *domain.NetWorthSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockSnapshotRepository) ListByUser(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.NetWorthSnapshot, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.NetWorthSnapshot), args.Error(1)
}

func newTestRecorder() (*Recorder, *MockAssetRepository, *MockSnapshotRepository) {
	mockAssetRepo := new(MockAssetRepository)
	mockSnapshotRepo := new(MockSnapshotRepository)
	recorder := NewRecorder(mockAssetRepo, mockSnapshotRepo, forecast.NewForecastService(mockAssetRepo))
	return recorder, mockAssetRepo, mockSnapshotRepo
}

func TestRecordAll_SkipsFailingUsers(t *testing.T) {
	ctx := context.Background()
	recorder, mockAssetRepo, mockSnapshotRepo := newTestRecorder()

	at := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	healthyUser := uuid.New()
	brokenUser := uuid.New()
	unreachableUser := uuid.New()

	mockAssetRepo.On("ListUserIDs", ctx).Return([]uuid.UUID{brokenUser, healthyUser, unreachableUser}, nil)
	mockAssetRepo.On("ListByUser", ctx, healthyUser, domain.AssetType("")).Return([]*domain.AssetLiability{
		{ID: uuid.New(), Type: domain.AssetTypeAsset, CurrentValue: "2500", CreatedAt: at.AddDate(-1, 0, 0)},
		{ID: uuid.New(), Type: domain.AssetTypeLiability, CurrentValue: "1000", CreatedAt: at.AddDate(-1, 0, 0)},
	}, nil)
	mockAssetRepo.On("ListByUser", ctx, brokenUser, domain.AssetType("")).Return([]*domain.AssetLiability{
		{ID: uuid.New(), Name: "Broken", Type: domain.AssetTypeAsset, CurrentValue: "???", CreatedAt: at.AddDate(-1, 0, 0)},
	}, nil)
	mockAssetRepo.On("ListByUser", ctx, unreachableUser, domain.AssetType("")).Return(nil, errors.New("timeout"))

	mockSnapshotRepo.On("Add", ctx, mock.MatchedBy(func(s *domain.NetWorthSnapshot) bool {
		return s.UserID == healthyUser &&
			s.Date.Equal(at) &&
			s.Assets.Equal(decimal.NewFromInt(2500)) &&
			s.Liabilities.Equal(decimal.NewFromInt(-1000)) &&
			s.Total.Equal(decimal.NewFromInt(1500))
	})).Return(nil).Once()

	written, err := recorder.RecordAll(ctx, at)

	require.NoError(t, err)
	assert.Equal(t, 1, written)
	mockAssetRepo.AssertExpectations(t)
	mockSnapshotRepo.AssertExpectations(t)
}

func TestRecordAll_ListUsersFails(t *testing.T) {
	ctx := context.Background()
	recorder, mockAssetRepo, mockSnapshotRepo := newTestRecorder()

	mockAssetRepo.On("ListUserIDs", ctx).Return(nil, errors.New("db down"))

	written, err := recorder.RecordAll(ctx, time.Now())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list users")
	assert.Equal(t, 0, written)
	mockSnapshotRepo.AssertNotCalled(t, "Add")
}

func TestRecordAll_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	recorder, mockAssetRepo, mockSnapshotRepo := newTestRecorder()

	mockAssetRepo.On("ListUserIDs", ctx).Return([]uuid.UUID{uuid.New()}, nil)
	cancel()

	written, err := recorder.RecordAll(ctx, time.Now())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, written)
	mockSnapshotRepo.AssertNotCalled(t, "Add")
}

func TestListSnapshots(t *testing.T) {
	ctx := context.Background()
	recorder, _, mockSnapshotRepo := newTestRecorder()

	userID := uuid.New()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	snapshots := []*domain.NetWorthSnapshot{{ID: uuid.New(), UserID: userID, Date: from}}

	mockSnapshotRepo.On("ListByUser", ctx, userID, from, to).Return(snapshots, nil)

	got, err := recorder.ListSnapshots(ctx, userID, from, to)
	require.NoError(t, err)
	assert.Equal(t, snapshots, got)

	_, err = recorder.ListSnapshots(ctx, userID, to, from)
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	recorder, _, _ := newTestRecorder()

	err := recorder.Start("not a schedule")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid snapshot schedule")

	require.NoError(t, recorder.Start("@every 1h"))
	assert.Error(t, recorder.Start("@every 1h"), "second start must fail")

	recorder.Stop()
	// Stopping twice is a no-op
	recorder.Stop()

	require.NoError(t, recorder.Start("@daily"))
	recorder.Stop()
}

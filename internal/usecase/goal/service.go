package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/wealthflow-forecast/internal/domain"
)

// CreateGoalInput holds the fields of a new goal
type CreateGoalInput struct {
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	SavedAmount  decimal.Decimal
}

// GoalService handles goal-related operations
type GoalService struct {
	GoalRepo  domain.GoalRepository
	AssetRepo domain.AssetRepository
}

// NewGoalService creates a new GoalService instance
func NewGoalService(goalRepo domain.GoalRepository, assetRepo domain.AssetRepository) *GoalService {
	return &GoalService{
		GoalRepo:  goalRepo,
		AssetRepo: assetRepo,
	}
}

// CreateGoal validates and stores a new goal
func (s *GoalService) CreateGoal(ctx context.Context, input CreateGoalInput) (*domain.Goal, error) {
	goal := &domain.Goal{
		ID:           uuid.New(),
		UserID:       input.UserID,
		Name:         input.Name,
		TargetAmount: input.TargetAmount,
		SavedAmount:  input.SavedAmount,
		CreatedAt:    time.Now(),
	}

	if err := goal.Validate(); err != nil {
		return nil, err
	}

	if err := s.GoalRepo.Create(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

// PredictGoal loads a goal and the owner's liabilities and estimates when the goal becomes affordable
func (s *GoalService) PredictGoal(ctx context.Context, goalID uuid.UUID, income, expenses decimal.Decimal, now time.Time) (*domain.Goal, Prediction, error) {
	if income.LessThan(decimal.Zero) || expenses.LessThan(decimal.Zero) {
		return nil, Prediction{}, domain.Invalidf("income and expenses must be non-negative")
	}

	goal, err := s.GoalRepo.GetByID(ctx, goalID)
	if err != nil {
		return nil, Prediction{}, err
	}

	liabilities, err := s.AssetRepo.ListByUser(ctx, goal.UserID, domain.AssetTypeLiability)
	if err != nil {
		return nil, Prediction{}, fmt.Errorf("failed to list liabilities: %w", err)
	}

	freeCapital := MonthlyFreeCapital(income, expenses, liabilities)
	return goal, Predict(goal, freeCapital, now), nil
}

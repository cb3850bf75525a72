package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGoal_Validate(t *testing.T) {
	tests := []struct {
		name    string
		goal    Goal
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid goal",
			goal:    Goal{Name: "New Bike", TargetAmount: decimal.NewFromInt(1500), SavedAmount: decimal.NewFromInt(200)},
			wantErr: false,
		},
		{
			name:    "empty name",
			goal:    Goal{TargetAmount: decimal.NewFromInt(1500)},
			wantErr: true,
			errMsg:  "goal name cannot be empty",
		},
		{
			name:    "zero target",
			goal:    Goal{Name: "New Bike", TargetAmount: decimal.Zero},
			wantErr: true,
			errMsg:  "goal target amount must be positive",
		},
		{
			name:    "negative saved amount",
			goal:    Goal{Name: "New Bike", TargetAmount: decimal.NewFromInt(1500), SavedAmount: decimal.NewFromInt(-1)},
			wantErr: true,
			errMsg:  "goal saved amount must be non-negative",
		},
		{
			name:    "target beyond storage range",
			goal:    Goal{Name: "Island", TargetAmount: decimal.New(1, 16)},
			wantErr: true,
			errMsg:  "goal target amount must be less than",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.goal.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGoal_Remaining(t *testing.T) {
	goal := Goal{TargetAmount: decimal.NewFromInt(1000), SavedAmount: decimal.NewFromInt(400)}
	assert.True(t, goal.Remaining().Equal(decimal.NewFromInt(600)))

	// Over-saved goals never report a negative remainder
	overSaved := Goal{TargetAmount: decimal.NewFromInt(1000), SavedAmount: decimal.NewFromInt(1200)}
	assert.True(t, overSaved.Remaining().Equal(decimal.Zero))
}

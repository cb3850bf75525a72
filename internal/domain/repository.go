package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories when the requested row does not exist
var ErrNotFound = errors.New("not found")

// AssetRepository defines the interface for asset/liability persistence operations
type AssetRepository interface {
	// GetByID retrieves a record by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*AssetLiability, error)

	// Create creates a new record
	Create(ctx context.Context, asset *AssetLiability) error

	// UpdateCurrentValue overwrites the stored current value of a record
	UpdateCurrentValue(ctx context.Context, id uuid.UUID, value string) error

	// ListByUser retrieves the records owned by a user, optionally filtered by type
	// If typeFilter is empty, returns both assets and liabilities
	ListByUser(ctx context.Context, userID uuid.UUID, typeFilter AssetType) ([]*AssetLiability, error)

	// ListUserIDs returns every user owning at least one record
	ListUserIDs(ctx context.Context) ([]uuid.UUID, error)
}

// GoalRepository defines the interface for goal persistence operations
type GoalRepository interface {
	// GetByID retrieves a goal by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Goal, error)

	// Create creates a new goal
	Create(ctx context.Context, goal *Goal) error
}

// SnapshotRepository defines the interface for net worth snapshot persistence operations
type SnapshotRepository interface {
	// Add creates a new snapshot
	Add(ctx context.Context, snapshot *NetWorthSnapshot) error

	// ListByUser retrieves a user's snapshots between from and to (inclusive), oldest first
	ListByUser(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*NetWorthSnapshot, error)
}

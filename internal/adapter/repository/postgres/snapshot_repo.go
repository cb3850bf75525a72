package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/wealthflow-forecast/internal/domain"
)

// snapshotRepository implements domain.SnapshotRepository
type snapshotRepository struct {
	db *DB
}

// NewSnapshotRepository creates a new net worth snapshot repository
func NewSnapshotRepository(db *DB) domain.SnapshotRepository {
	return &snapshotRepository{db: db}
}

// Add creates a new snapshot
func (r *snapshotRepository) Add(ctx context.Context, snapshot *domain.NetWorthSnapshot) error {
	query := `
		INSERT INTO net_worth_snapshots (id, user_id, date, assets, liabilities, total)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		snapshot.ID,
		snapshot.UserID,
		snapshot.Date,
		snapshot.Assets.String(),
		snapshot.Liabilities.String(),
		snapshot.Total.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert net worth snapshot: %w", err)
	}

	return nil
}

// ListByUser retrieves a user's snapshots between from and to (inclusive), oldest first
func (r *snapshotRepository) ListByUser(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.NetWorthSnapshot, error) {
	query := `
		SELECT id, user_id, date, assets, liabilities, total
		FROM net_worth_snapshots
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query net worth snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.NetWorthSnapshot, 0)
	for rows.Next() {
		var snapshot domain.NetWorthSnapshot
		var assetsStr, liabilitiesStr, totalStr string

		if err := rows.Scan(
			&snapshot.ID,
			&snapshot.UserID,
			&snapshot.Date,
			&assetsStr,
			&liabilitiesStr,
			&totalStr,
		); err != nil {
			return nil, fmt.Errorf("failed to scan net worth snapshot: %w", err)
		}

		// Parse amounts (DECIMAL)
		if snapshot.Assets, err = decimal.NewFromString(assetsStr); err != nil {
			return nil, fmt.Errorf("failed to parse assets: %w", err)
		}
		if snapshot.Liabilities, err = decimal.NewFromString(liabilitiesStr); err != nil {
			return nil, fmt.Errorf("failed to parse liabilities: %w", err)
		}
		if snapshot.Total, err = decimal.NewFromString(totalStr); err != nil {
			return nil, fmt.Errorf("failed to parse total: %w", err)
		}

		snapshots = append(snapshots, &snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating net worth snapshots: %w", err)
	}

	return snapshots, nil
}

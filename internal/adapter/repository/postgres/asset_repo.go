package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/wealthflow-forecast/internal/domain"
)

const assetColumns = `id, user_id, name, type, current_value, purchase_price, purchase_date,
	created_at, appreciation_rate, depreciation_rate, monthly_expense`

// assetRepository implements domain.AssetRepository
type assetRepository struct {
	db *DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *DB) domain.AssetRepository {
	return &assetRepository{db: db}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAsset reads one row selected with assetColumns
// NUMERIC columns are read as text so the stored decimal string is kept as-is
func scanAsset(row rowScanner) (*domain.AssetLiability, error) {
	var asset domain.AssetLiability
	var purchasePrice, appreciationRate, depreciationRate, monthlyExpense sql.NullString
	var purchaseDate sql.NullTime

	err := row.Scan(
		&asset.ID,
		&asset.UserID,
		&asset.Name,
		&asset.Type,
		&asset.CurrentValue,
		&purchasePrice,
		&purchaseDate,
		&asset.CreatedAt,
		&appreciationRate,
		&depreciationRate,
		&monthlyExpense,
	)
	if err != nil {
		return nil, err
	}

	asset.PurchasePrice = purchasePrice.String
	asset.AppreciationRate = appreciationRate.String
	asset.DepreciationRate = depreciationRate.String
	asset.MonthlyExpense = monthlyExpense.String
	if purchaseDate.Valid {
		date := purchaseDate.Time
		asset.PurchaseDate = &date
	}

	return &asset, nil
}

// GetByID retrieves a record by its ID
func (r *assetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AssetLiability, error) {
	query := `SELECT ` + assetColumns + ` FROM assets_liabilities WHERE id = $1`

	asset, err := scanAsset(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("asset %s %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get asset by ID: %w", err)
	}

	return asset, nil
}

// Create creates a new record
func (r *assetRepository) Create(ctx context.Context, asset *domain.AssetLiability) error {
	query := `
		INSERT INTO assets_liabilities (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	var purchaseDate interface{}
	if asset.PurchaseDate != nil {
		purchaseDate = *asset.PurchaseDate
	}

	_, err := r.db.ExecContext(ctx, query,
		asset.ID,
		asset.UserID,
		asset.Name,
		string(asset.Type),
		asset.CurrentValue,
		nullable(asset.PurchasePrice),
		purchaseDate,
		asset.CreatedAt,
		nullable(asset.AppreciationRate),
		nullable(asset.DepreciationRate),
		nullable(asset.MonthlyExpense),
	)
	if err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}

	return nil
}

// UpdateCurrentValue overwrites the stored current value of a record
func (r *assetRepository) UpdateCurrentValue(ctx context.Context, id uuid.UUID, value string) error {
	query := `UPDATE assets_liabilities SET current_value = $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, value)
	if err != nil {
		return fmt.Errorf("failed to update current value: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update current value: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("asset %s %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListByUser retrieves the records owned by a user, optionally filtered by type
func (r *assetRepository) ListByUser(ctx context.Context, userID uuid.UUID, typeFilter domain.AssetType) ([]*domain.AssetLiability, error) {
	query := `SELECT ` + assetColumns + ` FROM assets_liabilities WHERE user_id = $1`
	args := []interface{}{userID}

	if typeFilter != "" {
		query += ` AND type = $2`
		args = append(args, string(typeFilter))
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	assets := make([]*domain.AssetLiability, 0)
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, asset)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assets: %w", err)
	}

	return assets, nil
}

// ListUserIDs returns every user owning at least one record
func (r *assetRepository) ListUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT user_id FROM assets_liabilities ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	userIDs := make([]uuid.UUID, 0)
	for rows.Next() {
		var userID uuid.UUID
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan user ID: %w", err)
		}
		userIDs = append(userIDs, userID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return userIDs, nil
}

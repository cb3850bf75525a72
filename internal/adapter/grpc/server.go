package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/wealthflow-forecast/internal/domain"
	"github.com/simaogato/wealthflow-forecast/internal/usecase/forecast"
	"github.com/simaogato/wealthflow-forecast/internal/usecase/goal"
	"github.com/simaogato/wealthflow-forecast/internal/usecase/portfolio"
	"github.com/simaogato/wealthflow-forecast/internal/usecase/snapshot"
)

// Server implements the NetWorthService gRPC server
type Server struct {
	PortfolioService *portfolio.PortfolioService
	ForecastService  *forecast.ForecastService
	GoalService      *goal.GoalService
	Recorder         *snapshot.Recorder
	Now              func() time.Time
}

var _ NetWorthServiceServer = (*Server)(nil)

// NewServer creates a new gRPC server instance
func NewServer(
	portfolioService *portfolio.PortfolioService,
	forecastService *forecast.ForecastService,
	goalService *goal.GoalService,
	recorder *snapshot.Recorder,
) *Server {
	return &Server{
		PortfolioService: portfolioService,
		ForecastService:  forecastService,
		GoalService:      goalService,
		Recorder:         recorder,
		Now:              time.Now,
	}
}

// RegisterAsset handles the RegisterAsset RPC
func (s *Server) RegisterAsset(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := uuidField(req, "user_id")
	if err != nil {
		return nil, err
	}

	// Parse optional purchase date
	var purchaseDate *time.Time
	if stringField(req, "purchase_date") != "" {
		date, err := dateField(req, "purchase_date", nil)
		if err != nil {
			return nil, err
		}
		purchaseDate = &date
	}

	input := portfolio.RegisterAssetInput{
		UserID:           userID,
		Name:             stringField(req, "name"),
		Type:             domain.AssetType(stringField(req, "type")),
		CurrentValue:     stringField(req, "current_value"),
		PurchasePrice:    stringField(req, "purchase_price"),
		PurchaseDate:     purchaseDate,
		AppreciationRate: stringField(req, "appreciation_rate"),
		DepreciationRate: stringField(req, "depreciation_rate"),
		MonthlyExpense:   stringField(req, "monthly_expense"),
	}

	asset, err := s.PortfolioService.RegisterAsset(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	return newResponse(map[string]interface{}{"asset": assetToMap(asset)})
}

// UpdateAssetValue handles the UpdateAssetValue RPC
func (s *Server) UpdateAssetValue(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	assetID, err := uuidField(req, "asset_id")
	if err != nil {
		return nil, err
	}

	value, err := decimalField(req, "current_value", nil)
	if err != nil {
		return nil, err
	}

	if err := s.PortfolioService.UpdateCurrentValue(ctx, assetID, value); err != nil {
		return nil, mapError(err)
	}

	return newResponse(map[string]interface{}{
		"asset_id":      assetID.String(),
		"current_value": value.String(),
	})
}

// GetAssetValue handles the GetAssetValue RPC
// The date defaults to now
func (s *Server) GetAssetValue(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	assetID, err := uuidField(req, "asset_id")
	if err != nil {
		return nil, err
	}

	now := s.Now()
	at, err := dateField(req, "date", &now)
	if err != nil {
		return nil, err
	}

	asset, value, err := s.PortfolioService.GetAssetValue(ctx, assetID, at)
	if err != nil {
		return nil, mapError(err)
	}

	return newResponse(map[string]interface{}{
		"asset_id": asset.ID.String(),
		"type":     string(asset.Type),
		"date":     formatTime(at),
		"value":    value.String(),
	})
}

// GetNetWorth handles the GetNetWorth RPC
// The date defaults to now
func (s *Server) GetNetWorth(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := uuidField(req, "user_id")
	if err != nil {
		return nil, err
	}

	now := s.Now()
	at, err := dateField(req, "date", &now)
	if err != nil {
		return nil, err
	}

	result, err := s.ForecastService.GetNetWorth(ctx, userID, at)
	if err != nil {
		return nil, mapError(err)
	}

	return newResponse(map[string]interface{}{
		"date":        formatTime(at),
		"assets":      result.Assets.String(),
		"liabilities": result.Liabilities.String(),
		"total":       result.Total.String(),
	})
}

// GetHistory handles the GetHistory RPC
func (s *Server) GetHistory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := uuidField(req, "user_id")
	if err != nil {
		return nil, err
	}

	from, err := dateField(req, "from", nil)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	to, err := dateField(req, "to", &now)
	if err != nil {
		return nil, err
	}

	points, err := s.ForecastService.GetHistory(ctx, userID, from, to)
	if err != nil {
		return nil, mapError(err)
	}

	return newResponse(map[string]interface{}{"points": pointsToList(points)})
}

// ProjectNetWorth handles the ProjectNetWorth RPC
func (s *Server) ProjectNetWorth(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := uuidField(req, "user_id")
	if err != nil {
		return nil, err
	}

	months, err := intField(req, "months")
	if err != nil {
		return nil, err
	}

	points, err := s.ForecastService.Project(ctx, userID, months)
	if err != nil {
		return nil, mapError(err)
	}

	return newResponse(map[string]interface{}{"points": pointsToList(points)})
}

// ListSnapshots handles the ListSnapshots RPC
// The range defaults to the last year
func (s *Server) ListSnapshots(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := uuidField(req, "user_id")
	if err != nil {
		return nil, err
	}

	now := s.Now()
	yearAgo := now.AddDate(-1, 0, 0)
	from, err := dateField(req, "from", &yearAgo)
	if err != nil {
		return nil, err
	}
	to, err := dateField(req, "to", &now)
	if err != nil {
		return nil, err
	}

	snapshots, err := s.Recorder.ListSnapshots(ctx, userID, from, to)
	if err != nil {
		return nil, mapError(err)
	}

	return newResponse(map[string]interface{}{"snapshots": snapshotsToList(snapshots)})
}

// CreateGoal handles the CreateGoal RPC
func (s *Server) CreateGoal(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := uuidField(req, "user_id")
	if err != nil {
		return nil, err
	}

	target, err := decimalField(req, "target_amount", nil)
	if err != nil {
		return nil, err
	}

	zero := decimal.Zero
	saved, err := decimalField(req, "saved_amount", &zero)
	if err != nil {
		return nil, err
	}

	created, err := s.GoalService.CreateGoal(ctx, goal.CreateGoalInput{
		UserID:       userID,
		Name:         stringField(req, "name"),
		TargetAmount: target,
		SavedAmount:  saved,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return newResponse(map[string]interface{}{
		"goal_id":    created.ID.String(),
		"created_at": formatTime(created.CreatedAt),
	})
}

// PredictGoal handles the PredictGoal RPC
func (s *Server) PredictGoal(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	goalID, err := uuidField(req, "goal_id")
	if err != nil {
		return nil, err
	}

	income, err := decimalField(req, "monthly_income", nil)
	if err != nil {
		return nil, err
	}

	expenses, err := decimalField(req, "monthly_expenses", nil)
	if err != nil {
		return nil, err
	}

	g, prediction, err := s.GoalService.PredictGoal(ctx, goalID, income, expenses, s.Now())
	if err != nil {
		return nil, mapError(err)
	}

	body := map[string]interface{}{
		"goal_id":        g.ID.String(),
		"remaining":      prediction.Remaining.String(),
		"free_capital":   prediction.FreeCapital.String(),
		"affordable_now": prediction.AffordableNow,
		"reachable":      prediction.Reachable,
		"months_needed":  prediction.MonthsNeeded,
	}
	if prediction.EstimatedDate != nil {
		body["estimated_date"] = formatTime(*prediction.EstimatedDate)
	}

	return newResponse(body)
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok && status.Code(err) != codes.Unknown {
		return err
	}

	if errors.Is(err, domain.ErrNotFound) {
		return status.Errorf(codes.NotFound, "%s", err.Error())
	}

	// Stored data is malformed, the request itself is fine
	if errors.Is(err, forecast.ErrInvalidValuation) {
		return status.Errorf(codes.FailedPrecondition, "%s", err.Error())
	}

	// Map validation errors to InvalidArgument
	if errors.Is(err, domain.ErrInvalidInput) {
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", err.Error())
}

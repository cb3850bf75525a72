package grpc

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/wealthflow-forecast/internal/domain"
	"github.com/simaogato/wealthflow-forecast/internal/usecase/forecast"
)

const dateLayout = "2006-01-02"

// stringField returns a string field of the request, "" when missing
func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

// uuidField parses a required UUID field
func uuidField(req *structpb.Struct, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(stringField(req, name))
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", name, err)
	}
	return id, nil
}

// decimalField parses a decimal string field; a missing field yields def
func decimalField(req *structpb.Struct, name string, def *decimal.Decimal) (decimal.Decimal, error) {
	raw := stringField(req, name)
	if raw == "" && def != nil {
		return *def, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", name, err)
	}
	return value, nil
}

// dateField parses a YYYY-MM-DD or RFC 3339 field; a missing field yields def
func dateField(req *structpb.Struct, name string, def *time.Time) (time.Time, error) {
	raw := stringField(req, name)
	if raw == "" {
		if def != nil {
			return *def, nil
		}
		return time.Time{}, status.Errorf(codes.InvalidArgument, "%s is required", name)
	}

	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "invalid %s format: expected YYYY-MM-DD or RFC 3339", name)
	}
	return t, nil
}

// intField reads a required whole-number field
func intField(req *structpb.Struct, name string) (int, error) {
	value, ok := req.GetFields()[name]
	if !ok {
		return 0, status.Errorf(codes.InvalidArgument, "%s is required", name)
	}
	number := value.GetNumberValue()
	if number != math.Trunc(number) || math.IsInf(number, 0) {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be a whole number", name)
	}
	return int(number), nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// assetToMap converts a domain record into a response body
func assetToMap(asset *domain.AssetLiability) map[string]interface{} {
	body := map[string]interface{}{
		"id":            asset.ID.String(),
		"user_id":       asset.UserID.String(),
		"name":          asset.Name,
		"type":          string(asset.Type),
		"current_value": asset.CurrentValue,
		"created_at":    formatTime(asset.CreatedAt),
	}

	optional := map[string]string{
		"purchase_price":    asset.PurchasePrice,
		"appreciation_rate": asset.AppreciationRate,
		"depreciation_rate": asset.DepreciationRate,
		"monthly_expense":   asset.MonthlyExpense,
	}
	for key, value := range optional {
		if value != "" {
			body[key] = value
		}
	}
	if asset.PurchaseDate != nil {
		body["purchase_date"] = formatTime(*asset.PurchaseDate)
	}

	return body
}

// pointsToList converts a net worth series into a response list
func pointsToList(points []forecast.NetWorthPoint) []interface{} {
	list := make([]interface{}, 0, len(points))
	for _, point := range points {
		list = append(list, map[string]interface{}{
			"date":         formatTime(point.Date),
			"month_offset": point.MonthOffset,
			"assets":       point.Assets.String(),
			"liabilities":  point.Liabilities.String(),
			"total":        point.Total.String(),
		})
	}
	return list
}

// snapshotsToList converts recorded snapshots into a response list
func snapshotsToList(snapshots []*domain.NetWorthSnapshot) []interface{} {
	list := make([]interface{}, 0, len(snapshots))
	for _, snapshot := range snapshots {
		list = append(list, map[string]interface{}{
			"id":          snapshot.ID.String(),
			"date":        formatTime(snapshot.Date),
			"assets":      snapshot.Assets.String(),
			"liabilities": snapshot.Liabilities.String(),
			"total":       snapshot.Total.String(),
		})
	}
	return list
}

// newResponse builds a Struct response body
func newResponse(body map[string]interface{}) (*structpb.Struct, error) {
	resp, err := structpb.NewStruct(body)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}
	return resp, nil
}

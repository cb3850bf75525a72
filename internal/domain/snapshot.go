package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NetWorthSnapshot is a recorded net worth for one user at one point in time
// This struct lets the history be read back without recomputing old valuations
type NetWorthSnapshot struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	Assets      decimal.Decimal
	Liabilities decimal.Decimal // Zero or negative
	Total       decimal.Decimal
}

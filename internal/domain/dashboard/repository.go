package dashboard

import (
	"context"
	"time"
)

// Range is the optional [Start, End] date window shared by every
// range-scoped metric. Nil bounds are open.
type Range struct {
	Start *time.Time
	End   *time.Time
}

// Totals carries the COALESCE'd receipt aggregates for a range.
type Totals struct {
	Sum float64
	Avg float64
	Max float64
}

// Group is one row of a SUM/COUNT group-by, ordered by Amount descending.
// Row order among equal amounts is whatever the store returns.
type Group struct {
	Name   string
	Amount float64
	Count  int64
}

// Repository is the read-only slice of the store the aggregation needs.
// Every query is scoped to a single user.
type Repository interface {
	CountReceipts(ctx context.Context, userID string, rng Range) (int64, error)
	ReceiptTotals(ctx context.Context, userID string, rng Range) (*Totals, error)
	SumIncome(ctx context.Context, userID string, rng Range) (float64, error)
	CountReceiptsInMonth(ctx context.Context, userID string, month time.Month, year int) (int64, error)
	CountReceiptsSince(ctx context.Context, userID string, since time.Time) (int64, error)
	GroupReceiptsByMerchant(ctx context.Context, userID string, rng Range, limit int) ([]*Group, error)
	GroupReceiptsByCategory(ctx context.Context, userID string, rng Range) ([]*Group, error)
	GroupIncomeBySource(ctx context.Context, userID string, rng Range, limit int) ([]*Group, error)
	GroupIncomeByCategory(ctx context.Context, userID string, rng Range) ([]*Group, error)
}

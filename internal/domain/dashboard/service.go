package dashboard

import (
	"context"
	"math"
	"time"

	appErrors "github.com/baccarifarah/spendLog/internal/errors"
)

const topEntries = 5

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

// GetDashboard computes the aggregate view for one user. start and end bound
// the range-scoped metrics; ThisMonth and ReceiptsPerWeek are deliberately
// pinned to the evaluation-time calendar instead, so the summary cards keep
// answering "this month" and "lately" while the charts follow the picker.
func (s *Service) GetDashboard(ctx context.Context, userID string, start, end *time.Time) (*DashboardData, error) {
	rng := Range{Start: start, End: end}

	totalReceipts, err := s.Repository.CountReceipts(ctx, userID, rng)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	totals, err := s.Repository.ReceiptTotals(ctx, userID, rng)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	totalIncome, err := s.Repository.SumIncome(ctx, userID, rng)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	now := time.Now()
	thisMonth, err := s.Repository.CountReceiptsInMonth(ctx, userID, now.Month(), now.Year())
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	recentCount, err := s.Repository.CountReceiptsSince(ctx, userID, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	receiptsPerWeek := 0.0
	if recentCount > 0 {
		receiptsPerWeek = float64(recentCount) / 4.0
	}

	merchantGroups, err := s.Repository.GroupReceiptsByMerchant(ctx, userID, rng, topEntries)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	categoryGroups, err := s.Repository.GroupReceiptsByCategory(ctx, userID, rng)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	sourceGroups, err := s.Repository.GroupIncomeBySource(ctx, userID, rng, topEntries)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	incomeCategoryGroups, err := s.Repository.GroupIncomeByCategory(ctx, userID, rng)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return &DashboardData{
		Stats: DashboardStats{
			TotalReceipts:   totalReceipts,
			ThisMonth:       thisMonth,
			TotalSpent:      round2(totals.Sum),
			TotalIncome:     round2(totalIncome),
			AvgReceipt:      round2(totals.Avg),
			MostExpensive:   round2(totals.Max),
			ReceiptsPerWeek: round2(receiptsPerWeek),
		},
		TopMerchants:       merchantStats(merchantGroups, totals.Sum),
		SpendingByCategory: categoryStats(categoryGroups, totals.Sum),
		TopIncomeSources:   merchantStats(sourceGroups, totalIncome),
		IncomeByCategory:   categoryStats(incomeCategoryGroups, totalIncome),
	}, nil
}

func merchantStats(groups []*Group, total float64) []MerchantStat {
	stats := make([]MerchantStat, 0, len(groups))
	for _, g := range groups {
		stats = append(stats, MerchantStat{
			MerchantName: g.Name,
			Amount:       round2(g.Amount),
			Percentage:   percentage(g.Amount, total),
			Count:        g.Count,
		})
	}
	return stats
}

func categoryStats(groups []*Group, total float64) []CategoryStat {
	stats := make([]CategoryStat, 0, len(groups))
	for _, g := range groups {
		stats = append(stats, CategoryStat{
			Category:   g.Name,
			Amount:     round2(g.Amount),
			Percentage: percentage(g.Amount, total),
			Count:      g.Count,
		})
	}
	return stats
}

// percentage divides at full precision and rounds last; a zero total yields 0
// rather than a division error.
func percentage(amount, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return round2(amount / total * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

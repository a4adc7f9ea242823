package infrastructure

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/baccarifarah/spendLog/internal/domain/dashboard"
)

type DashboardRepository struct {
	DB *gorm.DB
}

var _ dashboard.Repository = (*DashboardRepository)(nil)

type groupRow struct {
	Name   string  `gorm:"column:name"`
	Amount float64 `gorm:"column:amount"`
	Count  int64   `gorm:"column:count"`
}

func applyRange(db *gorm.DB, rng dashboard.Range) *gorm.DB {
	if rng.Start != nil {
		db = db.Where("date >= ?", *rng.Start)
	}
	if rng.End != nil {
		db = db.Where("date <= ?", *rng.End)
	}
	return db
}

func (r *DashboardRepository) CountReceipts(ctx context.Context, userID string, rng dashboard.Range) (int64, error) {
	var count int64
	db := r.DB.WithContext(ctx).Table("receipts").Where("user_id = ?", userID)
	if err := applyRange(db, rng).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DashboardRepository) ReceiptTotals(ctx context.Context, userID string, rng dashboard.Range) (*dashboard.Totals, error) {
	var totals dashboard.Totals
	db := r.DB.WithContext(ctx).Table("receipts").Where("user_id = ?", userID)
	err := applyRange(db, rng).
		Select("COALESCE(SUM(total_amount), 0) as sum, COALESCE(AVG(total_amount), 0) as avg, COALESCE(MAX(total_amount), 0) as max").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

func (r *DashboardRepository) SumIncome(ctx context.Context, userID string, rng dashboard.Range) (float64, error) {
	var total float64
	db := r.DB.WithContext(ctx).Table("income").Where("user_id = ?", userID)
	err := applyRange(db, rng).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *DashboardRepository) CountReceiptsInMonth(ctx context.Context, userID string, month time.Month, year int) (int64, error) {
	startDate := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, 0)

	var count int64
	err := r.DB.WithContext(ctx).Table("receipts").
		Where("user_id = ? AND date >= ? AND date < ?", userID, startDate, endDate).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DashboardRepository) CountReceiptsSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Table("receipts").
		Where("user_id = ? AND date >= ?", userID, since).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DashboardRepository) GroupReceiptsByMerchant(ctx context.Context, userID string, rng dashboard.Range, limit int) ([]*dashboard.Group, error) {
	db := r.DB.WithContext(ctx).Table("receipts").
		Select("merchant_name as name, COALESCE(SUM(total_amount), 0) as amount, COUNT(*) as count").
		Where("user_id = ?", userID)
	db = applyRange(db, rng).
		Group("merchant_name").
		Order("amount DESC").
		Limit(limit)
	return scanGroups(db)
}

func (r *DashboardRepository) GroupReceiptsByCategory(ctx context.Context, userID string, rng dashboard.Range) ([]*dashboard.Group, error) {
	db := r.DB.WithContext(ctx).Table("receipts").
		Select("category as name, COALESCE(SUM(total_amount), 0) as amount, COUNT(*) as count").
		Where("user_id = ?", userID)
	db = applyRange(db, rng).
		Group("category").
		Order("amount DESC")
	return scanGroups(db)
}

func (r *DashboardRepository) GroupIncomeBySource(ctx context.Context, userID string, rng dashboard.Range, limit int) ([]*dashboard.Group, error) {
	db := r.DB.WithContext(ctx).Table("income").
		Select("source as name, COALESCE(SUM(amount), 0) as amount, COUNT(*) as count").
		Where("user_id = ?", userID)
	db = applyRange(db, rng).
		Group("source").
		Order("amount DESC").
		Limit(limit)
	return scanGroups(db)
}

func (r *DashboardRepository) GroupIncomeByCategory(ctx context.Context, userID string, rng dashboard.Range) ([]*dashboard.Group, error) {
	db := r.DB.WithContext(ctx).Table("income").
		Select("category as name, COALESCE(SUM(amount), 0) as amount, COUNT(*) as count").
		Where("user_id = ?", userID)
	db = applyRange(db, rng).
		Group("category").
		Order("amount DESC")
	return scanGroups(db)
}

func scanGroups(db *gorm.DB) ([]*dashboard.Group, error) {
	var rows []groupRow
	if err := db.Scan(&rows).Error; err != nil {
		return nil, err
	}
	groups := make([]*dashboard.Group, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, &dashboard.Group{
			Name:   row.Name,
			Amount: row.Amount,
			Count:  row.Count,
		})
	}
	return groups, nil
}

package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/baccarifarah/spendLog/internal/domain/income"
	"github.com/baccarifarah/spendLog/internal/pkg"
	"github.com/baccarifarah/spendLog/internal/pkg/query"
)

type IncomeRepository struct {
	DB *gorm.DB
}

var _ income.Repository = (*IncomeRepository)(nil)

type incomeDB struct {
	Id          string    `gorm:"type:varchar(26);primaryKey;column:id"`
	UserId      string    `gorm:"type:varchar(64);index;not null;column:user_id"`
	Source      string    `gorm:"type:varchar(255);not null;column:source"`
	Amount      float64   `gorm:"not null;column:amount"`
	Currency    string    `gorm:"type:varchar(8);column:currency"`
	Category    string    `gorm:"type:varchar(20);not null;column:category"`
	Date        time.Time `gorm:"type:date;not null;column:date"`
	Description *string   `gorm:"type:varchar(500);column:description"`
	CreatedAt   time.Time `gorm:"not null;column:created_at"`
}

func toDomainIncome(idb *incomeDB) (*income.Income, error) {
	id, err := pkg.ParseULID(idb.Id)
	if err != nil {
		return nil, err
	}
	return &income.Income{
		Id:          id,
		UserId:      idb.UserId,
		Source:      idb.Source,
		Amount:      idb.Amount,
		Currency:    idb.Currency,
		Category:    income.Category(idb.Category),
		Date:        idb.Date,
		Description: idb.Description,
		CreatedAt:   idb.CreatedAt,
	}, nil
}

func toDBIncome(i *income.Income) *incomeDB {
	return &incomeDB{
		Id:          i.Id.String(),
		UserId:      i.UserId,
		Source:      i.Source,
		Amount:      i.Amount,
		Currency:    i.Currency,
		Category:    string(i.Category),
		Date:        i.Date,
		Description: i.Description,
		CreatedAt:   i.CreatedAt,
	}
}

func (r *IncomeRepository) Create(ctx context.Context, entity *income.Income) error {
	return r.DB.WithContext(ctx).Table("income").Create(toDBIncome(entity)).Error
}

// incomeUpdateColumns builds the update map explicitly so a zero amount
// is written instead of skipped.
func incomeUpdateColumns(idb *incomeDB) map[string]interface{} {
	return map[string]interface{}{
		"source":      idb.Source,
		"amount":      idb.Amount,
		"currency":    idb.Currency,
		"category":    idb.Category,
		"date":        idb.Date,
		"description": idb.Description,
	}
}

func (r *IncomeRepository) Update(ctx context.Context, entity *income.Income) error {
	idb := toDBIncome(entity)
	return r.DB.WithContext(ctx).Table("income").
		Where("id = ? AND user_id = ?", idb.Id, idb.UserId).
		Updates(incomeUpdateColumns(idb)).Error
}

func (r *IncomeRepository) Delete(ctx context.Context, incomeID ulid.ULID, userID string) error {
	return r.DB.WithContext(ctx).Table("income").
		Where("id = ? AND user_id = ?", incomeID.String(), userID).
		Delete(&incomeDB{}).Error
}

func (r *IncomeRepository) GetByID(ctx context.Context, incomeID ulid.ULID, userID string) (*income.Income, error) {
	var idb incomeDB
	err := r.DB.WithContext(ctx).Table("income").
		Where("id = ? AND user_id = ?", incomeID.String(), userID).
		First(&idb).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainIncome(&idb)
}

func (r *IncomeRepository) List(
	ctx context.Context,
	userID string,
	category string,
	orderBy string,
	pagination *pkg.PaginationParams,
) ([]*income.Income, int64, error) {
	q := query.New[incomeDB](r.DB, "income").
		Context(ctx).
		Where("user_id = ?", userID).
		Order(orderBy)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	pagination = pkg.NormalizePagination(pagination)
	return query.Paginate(q, query.Page{Number: pagination.Page, Size: pagination.Limit}, toDomainIncome)
}

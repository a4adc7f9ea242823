package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/baccarifarah/spendLog/internal/domain/receipt"
	"github.com/baccarifarah/spendLog/internal/pkg"
	"github.com/baccarifarah/spendLog/internal/pkg/query"
)

type ReceiptRepository struct {
	DB *gorm.DB
}

var _ receipt.Repository = (*ReceiptRepository)(nil)

type receiptDB struct {
	Id           string    `gorm:"type:varchar(26);primaryKey;column:id"`
	UserId       string    `gorm:"type:varchar(64);index;not null;column:user_id"`
	MerchantName string    `gorm:"type:varchar(255);not null;column:merchant_name"`
	Date         time.Time `gorm:"type:date;not null;column:date"`
	TotalAmount  float64   `gorm:"not null;column:total_amount"`
	Currency     string    `gorm:"type:varchar(8);column:currency"`
	Category     string    `gorm:"type:varchar(30);column:category"`
	Location     *string   `gorm:"type:varchar(255);column:location"`
	ImageUrl     *string   `gorm:"type:varchar(500);column:image_url"`
	CreatedAt    time.Time `gorm:"not null;column:created_at"`
}

func toDomainReceipt(rdb *receiptDB) (*receipt.Receipt, error) {
	id, err := pkg.ParseULID(rdb.Id)
	if err != nil {
		return nil, err
	}
	return &receipt.Receipt{
		Id:           id,
		UserId:       rdb.UserId,
		MerchantName: rdb.MerchantName,
		Date:         rdb.Date,
		TotalAmount:  rdb.TotalAmount,
		Currency:     rdb.Currency,
		Category:     receipt.Category(rdb.Category),
		Location:     rdb.Location,
		ImageUrl:     rdb.ImageUrl,
		CreatedAt:    rdb.CreatedAt,
	}, nil
}

func toDBReceipt(r *receipt.Receipt) *receiptDB {
	return &receiptDB{
		Id:           r.Id.String(),
		UserId:       r.UserId,
		MerchantName: r.MerchantName,
		Date:         r.Date,
		TotalAmount:  r.TotalAmount,
		Currency:     r.Currency,
		Category:     string(r.Category),
		Location:     r.Location,
		ImageUrl:     r.ImageUrl,
		CreatedAt:    r.CreatedAt,
	}
}

func (r *ReceiptRepository) Create(ctx context.Context, entity *receipt.Receipt) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("receipts").Create(toDBReceipt(entity)).Error; err != nil {
			return err
		}
		for _, item := range entity.Items {
			if err := tx.Table("items").Create(toDBItem(item)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// receiptUpdateColumns builds the update map explicitly: Updates with a
// struct would skip zero values, silently dropping a total set to 0.
func receiptUpdateColumns(rdb *receiptDB) map[string]interface{} {
	return map[string]interface{}{
		"merchant_name": rdb.MerchantName,
		"date":          rdb.Date,
		"total_amount":  rdb.TotalAmount,
		"currency":      rdb.Currency,
		"category":      rdb.Category,
		"location":      rdb.Location,
		"image_url":     rdb.ImageUrl,
	}
}

func (r *ReceiptRepository) Update(ctx context.Context, entity *receipt.Receipt) error {
	rdb := toDBReceipt(entity)
	return r.DB.WithContext(ctx).Table("receipts").
		Where("id = ? AND user_id = ?", rdb.Id, rdb.UserId).
		Updates(receiptUpdateColumns(rdb)).Error
}

// Delete removes the receipt and detaches its items back onto the pending
// list instead of dropping them.
func (r *ReceiptRepository) Delete(ctx context.Context, receiptID ulid.ULID, userID string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("items").
			Where("receipt_id = ? AND user_id = ?", receiptID.String(), userID).
			Update("receipt_id", nil).Error; err != nil {
			return err
		}
		return tx.Table("receipts").
			Where("id = ? AND user_id = ?", receiptID.String(), userID).
			Delete(&receiptDB{}).Error
	})
}

func (r *ReceiptRepository) GetByID(ctx context.Context, receiptID ulid.ULID, userID string) (*receipt.Receipt, error) {
	var rdb receiptDB
	err := r.DB.WithContext(ctx).Table("receipts").
		Where("id = ? AND user_id = ?", receiptID.String(), userID).
		First(&rdb).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	entity, err := toDomainReceipt(&rdb)
	if err != nil {
		return nil, err
	}

	items, err := (&ItemRepository{DB: r.DB}).GetByReceipt(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	entity.Items = make([]receipt.Item, 0, len(items))
	for _, item := range items {
		entity.Items = append(entity.Items, *item)
	}
	return entity, nil
}

func (r *ReceiptRepository) List(
	ctx context.Context,
	userID string,
	filter receipt.ListFilter,
	orderBy string,
	pagination *pkg.PaginationParams,
) ([]*receipt.Receipt, int64, error) {
	q := query.New[receiptDB](r.DB, "receipts").
		Context(ctx).
		Where("user_id = ?", userID).
		Order(orderBy)
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.MerchantName != "" {
		q = q.Where("merchant_name ILIKE ?", "%"+filter.MerchantName+"%")
	}

	pagination = pkg.NormalizePagination(pagination)
	return query.Paginate(q, query.Page{Number: pagination.Page, Size: pagination.Limit}, toDomainReceipt)
}

func (r *ReceiptRepository) ReplaceItems(ctx context.Context, receiptID ulid.ULID, userID string, items []*receipt.Item) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("items").
			Where("receipt_id = ? AND user_id = ?", receiptID.String(), userID).
			Delete(&itemDB{}).Error; err != nil {
			return err
		}
		for _, item := range items {
			if err := tx.Table("items").Create(toDBItem(*item)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ReceiptRepository) AttachItems(ctx context.Context, receiptID ulid.ULID, userID string, itemIDs []ulid.ULID) error {
	if len(itemIDs) == 0 {
		return nil
	}
	ids := make([]string, 0, len(itemIDs))
	for _, id := range itemIDs {
		ids = append(ids, id.String())
	}
	return r.DB.WithContext(ctx).Table("items").
		Where("id IN ? AND user_id = ? AND receipt_id IS NULL", ids, userID).
		Update("receipt_id", receiptID.String()).Error
}

type ItemRepository struct {
	DB *gorm.DB
}

var _ receipt.ItemRepository = (*ItemRepository)(nil)

type itemDB struct {
	Id        string  `gorm:"type:varchar(26);primaryKey;column:id"`
	UserId    string  `gorm:"type:varchar(64);index;not null;column:user_id"`
	ReceiptId *string `gorm:"type:varchar(26);index;column:receipt_id"`
	Name      string  `gorm:"type:varchar(255);not null;column:name"`
	Price     float64 `gorm:"not null;column:price"`
	Quantity  int     `gorm:"not null;column:quantity"`
}

func toDomainItem(idb *itemDB) (*receipt.Item, error) {
	id, err := pkg.ParseULID(idb.Id)
	if err != nil {
		return nil, err
	}
	var receiptID *ulid.ULID
	if idb.ReceiptId != nil && *idb.ReceiptId != "" {
		parsed, err := pkg.ParseULID(*idb.ReceiptId)
		if err != nil {
			return nil, err
		}
		receiptID = &parsed
	}
	return &receipt.Item{
		Id:        id,
		UserId:    idb.UserId,
		ReceiptId: receiptID,
		Name:      idb.Name,
		Price:     idb.Price,
		Quantity:  idb.Quantity,
	}, nil
}

func toDBItem(i receipt.Item) *itemDB {
	var receiptID *string
	if i.ReceiptId != nil {
		s := i.ReceiptId.String()
		receiptID = &s
	}
	return &itemDB{
		Id:        i.Id.String(),
		UserId:    i.UserId,
		ReceiptId: receiptID,
		Name:      i.Name,
		Price:     i.Price,
		Quantity:  i.Quantity,
	}
}

func (r *ItemRepository) Create(ctx context.Context, item *receipt.Item) error {
	return r.DB.WithContext(ctx).Table("items").Create(toDBItem(*item)).Error
}

// itemUpdateColumns builds the update map explicitly so a price or
// quantity of 0 still reaches the row.
func itemUpdateColumns(idb *itemDB) map[string]interface{} {
	return map[string]interface{}{
		"name":       idb.Name,
		"price":      idb.Price,
		"quantity":   idb.Quantity,
		"receipt_id": idb.ReceiptId,
	}
}

func (r *ItemRepository) Update(ctx context.Context, item *receipt.Item) error {
	idb := toDBItem(*item)
	return r.DB.WithContext(ctx).Table("items").
		Where("id = ? AND user_id = ?", idb.Id, idb.UserId).
		Updates(itemUpdateColumns(idb)).Error
}

func (r *ItemRepository) Delete(ctx context.Context, itemID ulid.ULID, userID string) error {
	return r.DB.WithContext(ctx).Table("items").
		Where("id = ? AND user_id = ?", itemID.String(), userID).
		Delete(&itemDB{}).Error
}

func (r *ItemRepository) GetByID(ctx context.Context, itemID ulid.ULID, userID string) (*receipt.Item, error) {
	var idb itemDB
	err := r.DB.WithContext(ctx).Table("items").
		Where("id = ? AND user_id = ?", itemID.String(), userID).
		First(&idb).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainItem(&idb)
}

func (r *ItemRepository) GetByReceipt(ctx context.Context, receiptID ulid.ULID) ([]*receipt.Item, error) {
	q := query.New[itemDB](r.DB, "items").
		Context(ctx).
		Where("receipt_id = ?", receiptID.String()).
		Order("id ASC")
	return query.FindAll(q, toDomainItem)
}

func (r *ItemRepository) ListPending(ctx context.Context, userID string) ([]*receipt.Item, error) {
	q := query.New[itemDB](r.DB, "items").
		Context(ctx).
		Where("user_id = ? AND receipt_id IS NULL", userID).
		Order("id DESC")
	return query.FindAll(q, toDomainItem)
}

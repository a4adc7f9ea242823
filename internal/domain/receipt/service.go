package receipt

import (
	"context"
	"strings"

	"github.com/oklog/ulid/v2"

	appErrors "github.com/baccarifarah/spendLog/internal/errors"
	"github.com/baccarifarah/spendLog/internal/pkg"
)

type Service struct {
	Repository     Repository
	ItemRepository ItemRepository
}

func NewService(repo Repository, itemRepo ItemRepository) *Service {
	return &Service{Repository: repo, ItemRepository: itemRepo}
}

func (s *Service) CreateReceipt(ctx context.Context, receipt *Receipt, pendingItemIDs []ulid.ULID) error {
	if strings.TrimSpace(receipt.MerchantName) == "" {
		return appErrors.NewValidationError("merchant_name", "merchant name is required")
	}
	if receipt.Date.IsZero() {
		return appErrors.NewValidationError("date", "date is required")
	}
	if receipt.TotalAmount < 0 {
		return appErrors.NewValidationError("total_amount", "total amount must not be negative")
	}

	if receipt.Category == "" {
		receipt.Category = CategoryUncategorized
	}
	if !receipt.Category.IsValid() {
		return appErrors.NewValidationError("category", "unknown expense category")
	}
	if receipt.Currency == "" {
		receipt.Currency = DefaultCurrency
	}

	receipt.Id = pkg.GenerateULIDObject()
	receipt.CreatedAt = pkg.SetTimestamps()

	for i := range receipt.Items {
		item := &receipt.Items[i]
		if strings.TrimSpace(item.Name) == "" {
			return appErrors.NewValidationError("items", "item name is required")
		}
		if item.Quantity < 1 {
			item.Quantity = 1
		}
		item.Id = pkg.GenerateULIDObject()
		item.UserId = receipt.UserId
		id := receipt.Id
		item.ReceiptId = &id
	}

	if err := s.Repository.Create(ctx, receipt); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	if len(pendingItemIDs) > 0 {
		if err := s.Repository.AttachItems(ctx, receipt.Id, receipt.UserId, pendingItemIDs); err != nil {
			return appErrors.NewDatabaseError(err)
		}
	}

	return nil
}

func (s *Service) GetReceipt(ctx context.Context, receiptID ulid.ULID, userID string) (*Receipt, error) {
	receipt, err := s.Repository.GetByID(ctx, receiptID, userID)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, appErrors.ErrReceiptNotFound
	}
	return receipt, nil
}

func (s *Service) ListReceipts(
	ctx context.Context,
	userID string,
	filter ListFilter,
	sort pkg.Sort,
	pagination *pkg.PaginationParams,
) ([]*Receipt, int64, error) {
	if sort.Key == "" {
		sort.Key = "date"
	}
	orderBy, err := sort.Clause(SortColumns)
	if err != nil {
		return nil, 0, appErrors.NewValidationError("sort_by", err.Error())
	}
	if filter.Category != "" && !Category(filter.Category).IsValid() {
		return nil, 0, appErrors.NewValidationError("category", "unknown expense category")
	}

	receipts, total, err := s.Repository.List(ctx, userID, filter, orderBy, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return receipts, total, nil
}

func (s *Service) UpdateReceipt(ctx context.Context, receiptID ulid.ULID, userID string, update *ReceiptUpdate) (*Receipt, error) {
	stored, err := s.GetReceipt(ctx, receiptID, userID)
	if err != nil {
		return nil, err
	}

	if update.MerchantName != nil {
		if strings.TrimSpace(*update.MerchantName) == "" {
			return nil, appErrors.NewValidationError("merchant_name", "merchant name must not be empty")
		}
		stored.MerchantName = *update.MerchantName
	}
	if update.Date != nil {
		stored.Date = *update.Date
	}
	if update.TotalAmount != nil {
		if *update.TotalAmount < 0 {
			return nil, appErrors.NewValidationError("total_amount", "total amount must not be negative")
		}
		stored.TotalAmount = *update.TotalAmount
	}
	if update.Currency != nil {
		stored.Currency = *update.Currency
	}
	if update.Category != nil {
		if !update.Category.IsValid() {
			return nil, appErrors.NewValidationError("category", "unknown expense category")
		}
		stored.Category = *update.Category
	}
	if update.Location != nil {
		stored.Location = update.Location
	}
	if update.ImageUrl != nil {
		stored.ImageUrl = update.ImageUrl
	}

	if err := s.Repository.Update(ctx, stored); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	if update.Items != nil {
		for _, item := range update.Items {
			if strings.TrimSpace(item.Name) == "" {
				return nil, appErrors.NewValidationError("items", "item name is required")
			}
			if item.Quantity < 1 {
				item.Quantity = 1
			}
			item.Id = pkg.GenerateULIDObject()
			item.UserId = userID
			id := receiptID
			item.ReceiptId = &id
		}
		if err := s.Repository.ReplaceItems(ctx, receiptID, userID, update.Items); err != nil {
			return nil, appErrors.NewDatabaseError(err)
		}
	}

	return s.GetReceipt(ctx, receiptID, userID)
}

func (s *Service) DeleteReceipt(ctx context.Context, receiptID ulid.ULID, userID string) error {
	if _, err := s.GetReceipt(ctx, receiptID, userID); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, receiptID, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) AddItem(ctx context.Context, receiptID ulid.ULID, userID string, item *Item) error {
	if _, err := s.GetReceipt(ctx, receiptID, userID); err != nil {
		return err
	}
	if strings.TrimSpace(item.Name) == "" {
		return appErrors.NewValidationError("name", "item name is required")
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	item.Id = pkg.GenerateULIDObject()
	item.UserId = userID
	id := receiptID
	item.ReceiptId = &id

	if err := s.ItemRepository.Create(ctx, item); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetReceiptItems(ctx context.Context, receiptID ulid.ULID, userID string) ([]*Item, error) {
	if _, err := s.GetReceipt(ctx, receiptID, userID); err != nil {
		return nil, err
	}
	items, err := s.ItemRepository.GetByReceipt(ctx, receiptID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return items, nil
}

func (s *Service) GetItem(ctx context.Context, itemID ulid.ULID, userID string) (*Item, error) {
	item, err := s.ItemRepository.GetByID(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, appErrors.ErrItemNotFound
	}
	return item, nil
}

func (s *Service) UpdateItem(ctx context.Context, itemID ulid.ULID, userID string, name string, price float64, quantity int) (*Item, error) {
	item, err := s.GetItem(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, appErrors.NewValidationError("name", "item name is required")
	}
	if quantity < 1 {
		quantity = 1
	}

	item.Name = name
	item.Price = price
	item.Quantity = quantity

	if err := s.ItemRepository.Update(ctx, item); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return item, nil
}

func (s *Service) DeleteItem(ctx context.Context, itemID ulid.ULID, userID string) error {
	if _, err := s.GetItem(ctx, itemID, userID); err != nil {
		return err
	}
	if err := s.ItemRepository.Delete(ctx, itemID, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

// Pending items form the "to buy" list: they carry no price and no receipt
// until attached through CreateReceipt.
func (s *Service) ListPendingItems(ctx context.Context, userID string) ([]*Item, error) {
	items, err := s.ItemRepository.ListPending(ctx, userID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return items, nil
}

func (s *Service) CreatePendingItem(ctx context.Context, userID string, name string, quantity int) (*Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, appErrors.NewValidationError("name", "item name is required")
	}
	if quantity < 1 {
		quantity = 1
	}

	item := &Item{
		Id:       pkg.GenerateULIDObject(),
		UserId:   userID,
		Name:     name,
		Price:    0,
		Quantity: quantity,
	}

	if err := s.ItemRepository.Create(ctx, item); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return item, nil
}

func (s *Service) DeletePendingItem(ctx context.Context, itemID ulid.ULID, userID string) error {
	item, err := s.GetItem(ctx, itemID, userID)
	if err != nil {
		return err
	}
	if !item.Pending() {
		return appErrors.NewValidationError("id", "item is already attached to a receipt")
	}
	if err := s.ItemRepository.Delete(ctx, itemID, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

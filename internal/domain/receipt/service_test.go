package receipt_test

import (
	"context"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/baccarifarah/spendLog/internal/domain/receipt"
	appErrors "github.com/baccarifarah/spendLog/internal/errors"
	"github.com/baccarifarah/spendLog/internal/pkg"
)

type fakeReceiptRepository struct {
	createFn       func(ctx context.Context, r *receipt.Receipt) error
	updateFn       func(ctx context.Context, r *receipt.Receipt) error
	deleteFn       func(ctx context.Context, id ulid.ULID, userID string) error
	getByIDFn      func(ctx context.Context, id ulid.ULID, userID string) (*receipt.Receipt, error)
	listFn         func(ctx context.Context, userID string, filter receipt.ListFilter, orderBy string, pagination *pkg.PaginationParams) ([]*receipt.Receipt, int64, error)
	replaceItemsFn func(ctx context.Context, receiptID ulid.ULID, userID string, items []*receipt.Item) error
	attachItemsFn  func(ctx context.Context, receiptID ulid.ULID, userID string, itemIDs []ulid.ULID) error
}

func (f *fakeReceiptRepository) Create(ctx context.Context, r *receipt.Receipt) error {
	if f.createFn != nil {
		return f.createFn(ctx, r)
	}
	return nil
}

func (f *fakeReceiptRepository) Update(ctx context.Context, r *receipt.Receipt) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, r)
	}
	return nil
}

func (f *fakeReceiptRepository) Delete(ctx context.Context, id ulid.ULID, userID string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id, userID)
	}
	return nil
}

func (f *fakeReceiptRepository) GetByID(ctx context.Context, id ulid.ULID, userID string) (*receipt.Receipt, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id, userID)
	}
	return nil, nil
}

func (f *fakeReceiptRepository) List(ctx context.Context, userID string, filter receipt.ListFilter, orderBy string, pagination *pkg.PaginationParams) ([]*receipt.Receipt, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, userID, filter, orderBy, pagination)
	}
	return nil, 0, nil
}

func (f *fakeReceiptRepository) ReplaceItems(ctx context.Context, receiptID ulid.ULID, userID string, items []*receipt.Item) error {
	if f.replaceItemsFn != nil {
		return f.replaceItemsFn(ctx, receiptID, userID, items)
	}
	return nil
}

func (f *fakeReceiptRepository) AttachItems(ctx context.Context, receiptID ulid.ULID, userID string, itemIDs []ulid.ULID) error {
	if f.attachItemsFn != nil {
		return f.attachItemsFn(ctx, receiptID, userID, itemIDs)
	}
	return nil
}

type fakeItemRepository struct {
	createFn      func(ctx context.Context, item *receipt.Item) error
	updateFn      func(ctx context.Context, item *receipt.Item) error
	deleteFn      func(ctx context.Context, id ulid.ULID, userID string) error
	getByIDFn     func(ctx context.Context, id ulid.ULID, userID string) (*receipt.Item, error)
	getByReceiptFn func(ctx context.Context, receiptID ulid.ULID) ([]*receipt.Item, error)
	listPendingFn func(ctx context.Context, userID string) ([]*receipt.Item, error)
}

func (f *fakeItemRepository) Create(ctx context.Context, item *receipt.Item) error {
	if f.createFn != nil {
		return f.createFn(ctx, item)
	}
	return nil
}

func (f *fakeItemRepository) Update(ctx context.Context, item *receipt.Item) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, item)
	}
	return nil
}

func (f *fakeItemRepository) Delete(ctx context.Context, id ulid.ULID, userID string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id, userID)
	}
	return nil
}

func (f *fakeItemRepository) GetByID(ctx context.Context, id ulid.ULID, userID string) (*receipt.Item, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id, userID)
	}
	return nil, nil
}

func (f *fakeItemRepository) GetByReceipt(ctx context.Context, receiptID ulid.ULID) ([]*receipt.Item, error) {
	if f.getByReceiptFn != nil {
		return f.getByReceiptFn(ctx, receiptID)
	}
	return nil, nil
}

func (f *fakeItemRepository) ListPending(ctx context.Context, userID string) ([]*receipt.Item, error) {
	if f.listPendingFn != nil {
		return f.listPendingFn(ctx, userID)
	}
	return nil, nil
}

func TestServiceCreateReceiptValidations(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		receipt     receipt.Receipt
		wantErrCode string
	}{
		{
			name:        "missing merchant",
			receipt:     receipt.Receipt{UserId: "user-a", Date: date, TotalAmount: 10},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name:        "missing date",
			receipt:     receipt.Receipt{UserId: "user-a", MerchantName: "Monoprix", TotalAmount: 10},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name:        "negative total",
			receipt:     receipt.Receipt{UserId: "user-a", MerchantName: "Monoprix", Date: date, TotalAmount: -5},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name:        "unknown category",
			receipt:     receipt.Receipt{UserId: "user-a", MerchantName: "Monoprix", Date: date, TotalAmount: 5, Category: "Gadgets"},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name:    "valid",
			receipt: receipt.Receipt{UserId: "user-a", MerchantName: "Monoprix", Date: date, TotalAmount: 5},
		},
	}

	ctx := context.Background()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := receipt.NewService(&fakeReceiptRepository{}, &fakeItemRepository{})

			err := svc.CreateReceipt(ctx, &tt.receipt, nil)
			if tt.wantErrCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error")
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != tt.wantErrCode {
				t.Fatalf("expected code %s, got %s", tt.wantErrCode, appErr.Code)
			}
		})
	}
}

func TestServiceCreateReceiptDefaults(t *testing.T) {
	t.Parallel()

	var created *receipt.Receipt
	repo := &fakeReceiptRepository{
		createFn: func(ctx context.Context, r *receipt.Receipt) error {
			created = r
			return nil
		},
	}
	svc := receipt.NewService(repo, &fakeItemRepository{})

	entity := receipt.Receipt{
		UserId:       "user-a",
		MerchantName: "Carrefour",
		Date:         time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
		TotalAmount:  42.5,
		Items: []receipt.Item{
			{Name: "Milk", Price: 2.5, Quantity: 0},
		},
	}

	if err := svc.CreateReceipt(context.Background(), &entity, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatalf("expected repository create call")
	}
	if created.Category != receipt.CategoryUncategorized {
		t.Fatalf("expected default category, got %s", created.Category)
	}
	if created.Currency != receipt.DefaultCurrency {
		t.Fatalf("expected default currency, got %s", created.Currency)
	}
	if created.Id == (ulid.ULID{}) {
		t.Fatalf("expected generated receipt id")
	}

	item := created.Items[0]
	if item.Quantity != 1 {
		t.Fatalf("expected quantity floor of 1, got %d", item.Quantity)
	}
	if item.ReceiptId == nil || *item.ReceiptId != created.Id {
		t.Fatalf("expected item attached to receipt")
	}
	if item.UserId != "user-a" {
		t.Fatalf("expected item scoped to owner, got %q", item.UserId)
	}
}

func TestServiceCreateReceiptAttachesPendingItems(t *testing.T) {
	t.Parallel()

	pendingID := ulid.Make()
	var attachedTo ulid.ULID
	var attachedIDs []ulid.ULID

	repo := &fakeReceiptRepository{
		attachItemsFn: func(ctx context.Context, receiptID ulid.ULID, userID string, itemIDs []ulid.ULID) error {
			attachedTo = receiptID
			attachedIDs = itemIDs
			return nil
		},
	}
	svc := receipt.NewService(repo, &fakeItemRepository{})

	entity := receipt.Receipt{
		UserId:       "user-a",
		MerchantName: "Monoprix",
		Date:         time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		TotalAmount:  10,
	}
	if err := svc.CreateReceipt(context.Background(), &entity, []ulid.ULID{pendingID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attachedTo != entity.Id {
		t.Fatalf("expected pending items attached to new receipt")
	}
	if len(attachedIDs) != 1 || attachedIDs[0] != pendingID {
		t.Fatalf("expected pending item id forwarded, got %v", attachedIDs)
	}
}

func TestServiceListReceiptsSortKeyWhitelist(t *testing.T) {
	t.Parallel()

	var gotOrderBy string
	repo := &fakeReceiptRepository{
		listFn: func(ctx context.Context, userID string, filter receipt.ListFilter, orderBy string, pagination *pkg.PaginationParams) ([]*receipt.Receipt, int64, error) {
			gotOrderBy = orderBy
			return nil, 0, nil
		},
	}
	svc := receipt.NewService(repo, &fakeItemRepository{})
	ctx := context.Background()

	_, _, err := svc.ListReceipts(ctx, "user-a", receipt.ListFilter{}, pkg.Sort{Key: "total_amount", Order: "asc"}, &pkg.PaginationParams{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotOrderBy != "total_amount ASC" {
		t.Fatalf("expected whitelisted order clause, got %q", gotOrderBy)
	}

	_, _, err = svc.ListReceipts(ctx, "user-a", receipt.ListFilter{}, pkg.Sort{Key: "image_url"}, nil)
	if err == nil {
		t.Fatalf("expected error for unknown sort key")
	}
	appErr, _ := appErrors.AsAppError(err)
	if appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation error, got %s", appErr.Code)
	}

	// default sort is date descending
	_, _, err = svc.ListReceipts(ctx, "user-a", receipt.ListFilter{}, pkg.Sort{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotOrderBy != "date DESC" {
		t.Fatalf("expected default order clause, got %q", gotOrderBy)
	}
}

func TestServiceGetReceiptNotFound(t *testing.T) {
	t.Parallel()

	svc := receipt.NewService(&fakeReceiptRepository{}, &fakeItemRepository{})

	_, err := svc.GetReceipt(context.Background(), ulid.Make(), "user-a")
	if err == nil {
		t.Fatalf("expected error")
	}
	appErr, _ := appErrors.AsAppError(err)
	if appErr.Code != appErrors.ErrReceiptNotFound.Code {
		t.Fatalf("expected RECEIPT_NOT_FOUND, got %s", appErr.Code)
	}
}

func TestServiceUpdateReceiptPatchesFields(t *testing.T) {
	t.Parallel()

	receiptID := ulid.Make()
	stored := &receipt.Receipt{
		Id:           receiptID,
		UserId:       "user-a",
		MerchantName: "Monoprix",
		Date:         time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC),
		TotalAmount:  20,
		Currency:     "TND",
		Category:     receipt.CategoryFood,
	}

	var updated *receipt.Receipt
	repo := &fakeReceiptRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID, userID string) (*receipt.Receipt, error) {
			copy := *stored
			return &copy, nil
		},
		updateFn: func(ctx context.Context, r *receipt.Receipt) error {
			updated = r
			return nil
		},
	}
	svc := receipt.NewService(repo, &fakeItemRepository{})

	newAmount := 35.0
	newCategory := receipt.CategoryShopping
	_, err := svc.UpdateReceipt(context.Background(), receiptID, "user-a", &receipt.ReceiptUpdate{
		TotalAmount: &newAmount,
		Category:    &newCategory,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.TotalAmount != 35 {
		t.Fatalf("expected patched amount, got %v", updated.TotalAmount)
	}
	if updated.Category != receipt.CategoryShopping {
		t.Fatalf("expected patched category, got %s", updated.Category)
	}
	// untouched fields survive
	if updated.MerchantName != "Monoprix" {
		t.Fatalf("expected merchant untouched, got %s", updated.MerchantName)
	}
}

func TestServicePendingItems(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("create pending defaults price to zero", func(t *testing.T) {
		var created *receipt.Item
		itemRepo := &fakeItemRepository{
			createFn: func(ctx context.Context, item *receipt.Item) error {
				created = item
				return nil
			},
		}
		svc := receipt.NewService(&fakeReceiptRepository{}, itemRepo)

		item, err := svc.CreatePendingItem(ctx, "user-a", "Batteries", 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil || created.Price != 0 || created.ReceiptId != nil {
			t.Fatalf("expected pending item with zero price, got %+v", created)
		}
		if !item.Pending() {
			t.Fatalf("expected item to report pending")
		}
	})

	t.Run("delete refuses attached item", func(t *testing.T) {
		attachedReceipt := ulid.Make()
		itemRepo := &fakeItemRepository{
			getByIDFn: func(ctx context.Context, id ulid.ULID, userID string) (*receipt.Item, error) {
				return &receipt.Item{Id: id, UserId: userID, ReceiptId: &attachedReceipt, Name: "Milk"}, nil
			},
		}
		svc := receipt.NewService(&fakeReceiptRepository{}, itemRepo)

		err := svc.DeletePendingItem(ctx, ulid.Make(), "user-a")
		if err == nil {
			t.Fatalf("expected error")
		}
		appErr, _ := appErrors.AsAppError(err)
		if appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected validation error, got %s", appErr.Code)
		}
	})
}

package receipt

import (
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/baccarifarah/spendLog/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, receipt *Receipt) error
	Update(ctx context.Context, receipt *Receipt) error
	Delete(ctx context.Context, receiptID ulid.ULID, userID string) error
	GetByID(ctx context.Context, receiptID ulid.ULID, userID string) (*Receipt, error)
	List(ctx context.Context, userID string, filter ListFilter, orderBy string, pagination *pkg.PaginationParams) ([]*Receipt, int64, error)

	ReplaceItems(ctx context.Context, receiptID ulid.ULID, userID string, items []*Item) error
	AttachItems(ctx context.Context, receiptID ulid.ULID, userID string, itemIDs []ulid.ULID) error
}

type ItemRepository interface {
	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, itemID ulid.ULID, userID string) error
	GetByID(ctx context.Context, itemID ulid.ULID, userID string) (*Item, error)
	GetByReceipt(ctx context.Context, receiptID ulid.ULID) ([]*Item, error)
	ListPending(ctx context.Context, userID string) ([]*Item, error)
}

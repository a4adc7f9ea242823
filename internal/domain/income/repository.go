package income

import (
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/baccarifarah/spendLog/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, income *Income) error
	Update(ctx context.Context, income *Income) error
	Delete(ctx context.Context, incomeID ulid.ULID, userID string) error
	GetByID(ctx context.Context, incomeID ulid.ULID, userID string) (*Income, error)
	List(ctx context.Context, userID string, category string, orderBy string, pagination *pkg.PaginationParams) ([]*Income, int64, error)
}

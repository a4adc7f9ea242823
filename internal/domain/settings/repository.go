package settings

import "context"

type Repository interface {
	Create(ctx context.Context, entity *Settings) error
	Update(ctx context.Context, entity *Settings) error
	GetByUser(ctx context.Context, userID string) (*Settings, error)
}

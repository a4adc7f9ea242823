package user

import "context"

type Repository interface {
	Upsert(ctx context.Context, entity *User) error
	Update(ctx context.Context, entity *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	Delete(ctx context.Context, id string) error
}

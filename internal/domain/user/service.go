package user

import (
	"context"
	"strings"

	appErrors "github.com/baccarifarah/spendLog/internal/errors"
	"github.com/baccarifarah/spendLog/internal/pkg"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

// Sync upserts the identity-provider record. It runs on the provider's
// user.created and user.updated webhooks and is idempotent.
func (s *Service) Sync(ctx context.Context, entity *User) error {
	if strings.TrimSpace(entity.Id) == "" {
		return appErrors.NewValidationError("id", "user id is required")
	}
	if strings.TrimSpace(entity.Email) == "" {
		return appErrors.NewValidationError("email", "email is required")
	}

	entity.UpdatedAt = pkg.SetTimestamps()
	if err := s.Repository.Upsert(ctx, entity); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	entity, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	if entity == nil {
		return nil, appErrors.ErrUserNotFound
	}
	return entity, nil
}

func (s *Service) UpdateProfile(ctx context.Context, id string, update *UserUpdate) (*User, error) {
	stored, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Email != nil {
		if strings.TrimSpace(*update.Email) == "" {
			return nil, appErrors.NewValidationError("email", "email must not be empty")
		}
		stored.Email = *update.Email
	}
	if update.FullName != nil {
		stored.FullName = *update.FullName
	}
	if update.AvatarUrl != nil {
		stored.AvatarUrl = update.AvatarUrl
	}
	stored.UpdatedAt = pkg.SetTimestamps()

	if err := s.Repository.Update(ctx, stored); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return stored, nil
}

// Delete removes the identity row. Domain data owned by the user is
// removed by the store's cascade rules.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, id); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

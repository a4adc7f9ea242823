package user_test

import (
	"context"
	"testing"

	"github.com/baccarifarah/spendLog/internal/domain/user"
	appErrors "github.com/baccarifarah/spendLog/internal/errors"
)

type fakeUserRepository struct {
	upsertFn  func(ctx context.Context, entity *user.User) error
	updateFn  func(ctx context.Context, entity *user.User) error
	getByIDFn func(ctx context.Context, id string) (*user.User, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (f *fakeUserRepository) Upsert(ctx context.Context, entity *user.User) error {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, entity)
	}
	return nil
}

func (f *fakeUserRepository) Update(ctx context.Context, entity *user.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, entity)
	}
	return nil
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeUserRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func TestServiceSyncValidations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entity  user.User
		wantErr bool
	}{
		{name: "missing id", entity: user.User{Email: "farah@example.com"}, wantErr: true},
		{name: "missing email", entity: user.User{Id: "user-a"}, wantErr: true},
		{name: "valid", entity: user.User{Id: "user-a", Email: "farah@example.com"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := user.NewService(&fakeUserRepository{})

			err := svc.Sync(context.Background(), &tt.entity)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				appErr, _ := appErrors.AsAppError(err)
				if appErr.Code != "VALIDATION_ERROR" {
					t.Fatalf("expected validation error, got %s", appErr.Code)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestServiceSyncIsIdempotent(t *testing.T) {
	t.Parallel()

	calls := 0
	repo := &fakeUserRepository{
		upsertFn: func(ctx context.Context, entity *user.User) error {
			calls++
			return nil
		},
	}
	svc := user.NewService(repo)

	entity := user.User{Id: "user-a", Email: "farah@example.com"}
	for i := 0; i < 2; i++ {
		if err := svc.Sync(context.Background(), &entity); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if calls != 2 {
		t.Fatalf("expected 2 upserts, got %d", calls)
	}
}

func TestServiceGetByIDNotFound(t *testing.T) {
	t.Parallel()

	svc := user.NewService(&fakeUserRepository{})

	_, err := svc.GetByID(context.Background(), "ghost")
	if err == nil {
		t.Fatalf("expected error")
	}
	appErr, _ := appErrors.AsAppError(err)
	if appErr.Code != appErrors.ErrUserNotFound.Code {
		t.Fatalf("expected USER_NOT_FOUND, got %s", appErr.Code)
	}
}

func TestServiceUpdateProfilePatchesFields(t *testing.T) {
	t.Parallel()

	var updated *user.User
	repo := &fakeUserRepository{
		getByIDFn: func(ctx context.Context, id string) (*user.User, error) {
			return &user.User{Id: id, Email: "old@example.com", FullName: "Old Name"}, nil
		},
		updateFn: func(ctx context.Context, entity *user.User) error {
			updated = entity
			return nil
		},
	}
	svc := user.NewService(repo)

	name := "New Name"
	got, err := svc.UpdateProfile(context.Background(), "user-a", &user.UserUpdate{FullName: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FullName != "New Name" {
		t.Fatalf("expected patched name, got %s", got.FullName)
	}
	if updated.Email != "old@example.com" {
		t.Fatalf("expected untouched email, got %s", updated.Email)
	}
}

package settings_test

import (
	"context"
	"testing"

	"github.com/baccarifarah/spendLog/internal/domain/settings"
	appErrors "github.com/baccarifarah/spendLog/internal/errors"
)

type fakeSettingsRepository struct {
	createFn    func(ctx context.Context, entity *settings.Settings) error
	updateFn    func(ctx context.Context, entity *settings.Settings) error
	getByUserFn func(ctx context.Context, userID string) (*settings.Settings, error)
}

func (f *fakeSettingsRepository) Create(ctx context.Context, entity *settings.Settings) error {
	if f.createFn != nil {
		return f.createFn(ctx, entity)
	}
	return nil
}

func (f *fakeSettingsRepository) Update(ctx context.Context, entity *settings.Settings) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, entity)
	}
	return nil
}

func (f *fakeSettingsRepository) GetByUser(ctx context.Context, userID string) (*settings.Settings, error) {
	if f.getByUserFn != nil {
		return f.getByUserFn(ctx, userID)
	}
	return nil, nil
}

func TestServiceGetSettingsCreatesDefaults(t *testing.T) {
	t.Parallel()

	var created *settings.Settings
	repo := &fakeSettingsRepository{
		createFn: func(ctx context.Context, entity *settings.Settings) error {
			created = entity
			return nil
		},
	}
	svc := settings.NewService(repo)

	got, err := svc.GetSettings(context.Background(), "user-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatalf("expected a default row to be created")
	}
	if got.DefaultCurrency != "TND" {
		t.Fatalf("expected default currency TND, got %s", got.DefaultCurrency)
	}
	if got.UserId != "user-a" {
		t.Fatalf("expected settings scoped to user-a, got %s", got.UserId)
	}
}

func TestServiceGetSettingsReturnsExisting(t *testing.T) {
	t.Parallel()

	existing := &settings.Settings{UserId: "user-a", DefaultCurrency: "EUR"}
	repo := &fakeSettingsRepository{
		getByUserFn: func(ctx context.Context, userID string) (*settings.Settings, error) {
			return existing, nil
		},
		createFn: func(ctx context.Context, entity *settings.Settings) error {
			t.Fatalf("unexpected create for an existing row")
			return nil
		},
	}
	svc := settings.NewService(repo)

	got, err := svc.GetSettings(context.Background(), "user-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DefaultCurrency != "EUR" {
		t.Fatalf("expected stored currency, got %s", got.DefaultCurrency)
	}
}

func TestServiceUpdateSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		currency string
		want     string
		wantErr  bool
	}{
		{name: "normalizes case", currency: "usd", want: "USD"},
		{name: "too short", currency: "us", wantErr: true},
		{name: "too long", currency: "LONGCURRENCY", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeSettingsRepository{
				getByUserFn: func(ctx context.Context, userID string) (*settings.Settings, error) {
					return &settings.Settings{UserId: userID, DefaultCurrency: "TND"}, nil
				},
			}
			svc := settings.NewService(repo)

			got, err := svc.UpdateSettings(context.Background(), "user-a", &settings.SettingsUpdate{
				DefaultCurrency: &tt.currency,
			})
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
			if got.DefaultCurrency != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got.DefaultCurrency)
			}
		})
	}
}

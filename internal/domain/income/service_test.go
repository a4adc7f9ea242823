package income_test

import (
	"context"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/baccarifarah/spendLog/internal/domain/income"
	appErrors "github.com/baccarifarah/spendLog/internal/errors"
	"github.com/baccarifarah/spendLog/internal/pkg"
)

type fakeIncomeRepository struct {
	createFn  func(ctx context.Context, entity *income.Income) error
	updateFn  func(ctx context.Context, entity *income.Income) error
	deleteFn  func(ctx context.Context, id ulid.ULID, userID string) error
	getByIDFn func(ctx context.Context, id ulid.ULID, userID string) (*income.Income, error)
	listFn    func(ctx context.Context, userID string, category string, orderBy string, pagination *pkg.PaginationParams) ([]*income.Income, int64, error)
}

func (f *fakeIncomeRepository) Create(ctx context.Context, entity *income.Income) error {
	if f.createFn != nil {
		return f.createFn(ctx, entity)
	}
	return nil
}

func (f *fakeIncomeRepository) Update(ctx context.Context, entity *income.Income) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, entity)
	}
	return nil
}

func (f *fakeIncomeRepository) Delete(ctx context.Context, id ulid.ULID, userID string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id, userID)
	}
	return nil
}

func (f *fakeIncomeRepository) GetByID(ctx context.Context, id ulid.ULID, userID string) (*income.Income, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id, userID)
	}
	return nil, nil
}

func (f *fakeIncomeRepository) List(ctx context.Context, userID string, category string, orderBy string, pagination *pkg.PaginationParams) ([]*income.Income, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, userID, category, orderBy, pagination)
	}
	return nil, 0, nil
}

func TestServiceCreateIncomeValidations(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		entity      income.Income
		wantErrCode string
	}{
		{
			name:        "missing source",
			entity:      income.Income{UserId: "user-a", Amount: 1200, Date: date},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name:        "missing date",
			entity:      income.Income{UserId: "user-a", Source: "Acme Corp", Amount: 1200},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name:        "unknown category",
			entity:      income.Income{UserId: "user-a", Source: "Acme Corp", Amount: 1200, Date: date, Category: "Lottery"},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name:   "valid",
			entity: income.Income{UserId: "user-a", Source: "Acme Corp", Amount: 1200, Date: date, Category: income.CategorySalary},
		},
	}

	ctx := context.Background()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := income.NewService(&fakeIncomeRepository{})

			err := svc.CreateIncome(ctx, &tt.entity)
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

func TestServiceCreateIncomeDefaultsCategory(t *testing.T) {
	t.Parallel()

	var created *income.Income
	repo := &fakeIncomeRepository{
		createFn: func(ctx context.Context, entity *income.Income) error {
			created = entity
			return nil
		},
	}
	svc := income.NewService(repo)

	entity := income.Income{
		UserId: "user-a",
		Source: "Freelance gig",
		Amount: 300,
		Date:   time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC),
	}
	if err := svc.CreateIncome(context.Background(), &entity); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Category != income.CategoryOther {
		t.Fatalf("expected default category Other, got %s", created.Category)
	}
	if created.Id == (ulid.ULID{}) {
		t.Fatalf("expected generated id")
	}
}

func TestServiceListIncomeSortKeyWhitelist(t *testing.T) {
	t.Parallel()

	var gotOrderBy string
	repo := &fakeIncomeRepository{
		listFn: func(ctx context.Context, userID string, category string, orderBy string, pagination *pkg.PaginationParams) ([]*income.Income, int64, error) {
			gotOrderBy = orderBy
			return nil, 0, nil
		},
	}
	svc := income.NewService(repo)
	ctx := context.Background()

	_, _, err := svc.ListIncome(ctx, "user-a", "", pkg.Sort{Key: "amount", Order: "desc"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotOrderBy != "amount DESC" {
		t.Fatalf("expected whitelisted order clause, got %q", gotOrderBy)
	}

	_, _, err = svc.ListIncome(ctx, "user-a", "", pkg.Sort{Key: "description"}, nil)
	if err == nil {
		t.Fatalf("expected error for unknown sort key")
	}
	appErr, _ := appErrors.AsAppError(err)
	if appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation error, got %s", appErr.Code)
	}
}

func TestServiceUpdateIncomeNotFound(t *testing.T) {
	t.Parallel()

	svc := income.NewService(&fakeIncomeRepository{})

	_, err := svc.UpdateIncome(context.Background(), ulid.Make(), "user-a", &income.IncomeUpdate{})
	if err == nil {
		t.Fatalf("expected error")
	}
	appErr, _ := appErrors.AsAppError(err)
	if appErr.Code != appErrors.ErrIncomeNotFound.Code {
		t.Fatalf("expected INCOME_NOT_FOUND, got %s", appErr.Code)
	}
}

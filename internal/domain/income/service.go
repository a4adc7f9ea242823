package income

import (
	"context"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/baccarifarah/spendLog/internal/domain/receipt"
	appErrors "github.com/baccarifarah/spendLog/internal/errors"
	"github.com/baccarifarah/spendLog/internal/pkg"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) CreateIncome(ctx context.Context, entity *Income) error {
	if strings.TrimSpace(entity.Source) == "" {
		return appErrors.NewValidationError("source", "source is required")
	}
	if entity.Date.IsZero() {
		return appErrors.NewValidationError("date", "date is required")
	}

	if entity.Category == "" {
		entity.Category = CategoryOther
	}
	if !entity.Category.IsValid() {
		return appErrors.NewValidationError("category", "unknown income category")
	}
	if entity.Currency == "" {
		entity.Currency = receipt.DefaultCurrency
	}

	entity.Id = pkg.GenerateULIDObject()
	entity.CreatedAt = pkg.SetTimestamps()

	if err := s.Repository.Create(ctx, entity); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetIncome(ctx context.Context, incomeID ulid.ULID, userID string) (*Income, error) {
	entity, err := s.Repository.GetByID(ctx, incomeID, userID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, appErrors.ErrIncomeNotFound
	}
	return entity, nil
}

func (s *Service) ListIncome(
	ctx context.Context,
	userID string,
	category string,
	sort pkg.Sort,
	pagination *pkg.PaginationParams,
) ([]*Income, int64, error) {
	if sort.Key == "" {
		sort.Key = "date"
	}
	orderBy, err := sort.Clause(SortColumns)
	if err != nil {
		return nil, 0, appErrors.NewValidationError("sort_by", err.Error())
	}
	if category != "" && !Category(category).IsValid() {
		return nil, 0, appErrors.NewValidationError("category", "unknown income category")
	}

	entities, total, err := s.Repository.List(ctx, userID, category, orderBy, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return entities, total, nil
}

func (s *Service) UpdateIncome(ctx context.Context, incomeID ulid.ULID, userID string, update *IncomeUpdate) (*Income, error) {
	stored, err := s.GetIncome(ctx, incomeID, userID)
	if err != nil {
		return nil, err
	}

	if update.Source != nil {
		if strings.TrimSpace(*update.Source) == "" {
			return nil, appErrors.NewValidationError("source", "source must not be empty")
		}
		stored.Source = *update.Source
	}
	if update.Amount != nil {
		stored.Amount = *update.Amount
	}
	if update.Currency != nil {
		stored.Currency = *update.Currency
	}
	if update.Category != nil {
		if !update.Category.IsValid() {
			return nil, appErrors.NewValidationError("category", "unknown income category")
		}
		stored.Category = *update.Category
	}
	if update.Date != nil {
		stored.Date = *update.Date
	}
	if update.Description != nil {
		stored.Description = update.Description
	}

	if err := s.Repository.Update(ctx, stored); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return stored, nil
}

func (s *Service) DeleteIncome(ctx context.Context, incomeID ulid.ULID, userID string) error {
	if _, err := s.GetIncome(ctx, incomeID, userID); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, incomeID, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

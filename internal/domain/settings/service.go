package settings

import (
	"context"
	"strings"
	"time"

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

// GetSettings returns the user's settings, creating the default row on
// first access so callers never see a missing-settings state.
func (s *Service) GetSettings(ctx context.Context, userID string) (*Settings, error) {
	entity, err := s.Repository.GetByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	if entity != nil {
		return entity, nil
	}

	entity = &Settings{
		Id:              pkg.GenerateULIDObject(),
		UserId:          userID,
		DefaultCurrency: receipt.DefaultCurrency,
		CreatedAt:       pkg.SetTimestamps(),
		UpdatedAt:       pkg.SetTimestamps(),
	}
	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return entity, nil
}

func (s *Service) UpdateSettings(ctx context.Context, userID string, update *SettingsUpdate) (*Settings, error) {
	stored, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.DefaultCurrency != nil {
		currency := strings.ToUpper(strings.TrimSpace(*update.DefaultCurrency))
		if len(currency) < 3 || len(currency) > 8 {
			return nil, appErrors.NewValidationError("default_currency", "currency code must be 3 to 8 characters")
		}
		stored.DefaultCurrency = currency
	}
	stored.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, stored); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return stored, nil
}

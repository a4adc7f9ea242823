package infrastructure

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/baccarifarah/spendLog/internal/domain/settings"
)

type SettingsRepository struct {
	DB *gorm.DB
}

var _ settings.Repository = (*SettingsRepository)(nil)

func (r *SettingsRepository) Create(ctx context.Context, entity *settings.Settings) error {
	// Two first-access requests may race on the same user; the conflict
	// clause keeps the earlier row.
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(entity).Error
}

func (r *SettingsRepository) Update(ctx context.Context, entity *settings.Settings) error {
	return r.DB.WithContext(ctx).Model(&settings.Settings{}).
		Where("user_id = ?", entity.UserId).
		Updates(map[string]interface{}{
			"default_currency": entity.DefaultCurrency,
			"updated_at":       entity.UpdatedAt,
		}).Error
}

func (r *SettingsRepository) GetByUser(ctx context.Context, userID string) (*settings.Settings, error) {
	var entity settings.Settings
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

package infrastructure

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/baccarifarah/spendLog/internal/domain/settings"
	"github.com/baccarifarah/spendLog/internal/domain/user"
)

type UserRepository struct {
	DB *gorm.DB
}

var _ user.Repository = (*UserRepository)(nil)

func (r *UserRepository) Upsert(ctx context.Context, entity *user.User) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "full_name", "avatar_url", "updated_at"}),
		}).
		Create(entity).Error
}

func (r *UserRepository) Update(ctx context.Context, entity *user.User) error {
	return r.DB.WithContext(ctx).Model(&user.User{}).
		Where("id = ?", entity.Id).
		Updates(map[string]interface{}{
			"email":      entity.Email,
			"full_name":  entity.FullName,
			"avatar_url": entity.AvatarUrl,
			"updated_at": entity.UpdatedAt,
		}).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	var entity user.User
	err := r.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// Delete purges the identity row along with every row the user owns, in
// one transaction so a partial purge never survives.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("items").Where("user_id = ?", id).Delete(&itemDB{}).Error; err != nil {
			return err
		}
		if err := tx.Table("receipts").Where("user_id = ?", id).Delete(&receiptDB{}).Error; err != nil {
			return err
		}
		if err := tx.Table("income").Where("user_id = ?", id).Delete(&incomeDB{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&settings.Settings{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&user.User{}).Error
	})
}

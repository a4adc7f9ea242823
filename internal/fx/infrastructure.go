package fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/baccarifarah/spendLog/config"
	"github.com/baccarifarah/spendLog/internal/infrastructure"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newReceiptRepository,
		newItemRepository,
		newIncomeRepository,
		newSettingsRepository,
		newUserRepository,
		newDashboardRepository,
		newUploadStore,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newReceiptRepository(db *gorm.DB) *infrastructure.ReceiptRepository {
	return &infrastructure.ReceiptRepository{DB: db}
}

func newItemRepository(db *gorm.DB) *infrastructure.ItemRepository {
	return &infrastructure.ItemRepository{DB: db}
}

func newIncomeRepository(db *gorm.DB) *infrastructure.IncomeRepository {
	return &infrastructure.IncomeRepository{DB: db}
}

func newSettingsRepository(db *gorm.DB) *infrastructure.SettingsRepository {
	return &infrastructure.SettingsRepository{DB: db}
}

func newUserRepository(db *gorm.DB) *infrastructure.UserRepository {
	return &infrastructure.UserRepository{DB: db}
}

func newDashboardRepository(db *gorm.DB) *infrastructure.DashboardRepository {
	return &infrastructure.DashboardRepository{DB: db}
}

func newUploadStore(cfg *config.Config) (*infrastructure.UploadStore, error) {
	return infrastructure.NewUploadStore(cfg)
}

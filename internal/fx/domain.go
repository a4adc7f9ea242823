package fx

import (
	"go.uber.org/fx"

	"github.com/baccarifarah/spendLog/config"
	"github.com/baccarifarah/spendLog/internal/domain/auth"
	"github.com/baccarifarah/spendLog/internal/domain/dashboard"
	"github.com/baccarifarah/spendLog/internal/domain/income"
	"github.com/baccarifarah/spendLog/internal/domain/receipt"
	"github.com/baccarifarah/spendLog/internal/domain/settings"
	"github.com/baccarifarah/spendLog/internal/domain/user"
	"github.com/baccarifarah/spendLog/internal/infrastructure"
)

var DomainModule = fx.Module("domain",
	fx.Provide(
		newAuthService,
		newUserService,
		newReceiptService,
		newIncomeService,
		newSettingsService,
		newDashboardService,
	),
)

func newAuthService(cfg *config.Config) *auth.Service {
	return auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.Audience)
}

func newUserService(repo *infrastructure.UserRepository) *user.Service {
	return user.NewService(repo)
}

func newReceiptService(
	repo *infrastructure.ReceiptRepository,
	itemRepo *infrastructure.ItemRepository,
) *receipt.Service {
	return receipt.NewService(repo, itemRepo)
}

func newIncomeService(repo *infrastructure.IncomeRepository) *income.Service {
	return income.NewService(repo)
}

func newSettingsService(repo *infrastructure.SettingsRepository) *settings.Service {
	return settings.NewService(repo)
}

func newDashboardService(repo *infrastructure.DashboardRepository) *dashboard.Service {
	return dashboard.NewService(repo)
}

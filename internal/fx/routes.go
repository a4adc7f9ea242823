package fx

import (
	"time"

	"go.uber.org/fx"

	"github.com/baccarifarah/spendLog/config"
	"github.com/baccarifarah/spendLog/internal/domain/auth"
	"github.com/baccarifarah/spendLog/internal/domain/dashboard"
	"github.com/baccarifarah/spendLog/internal/domain/income"
	"github.com/baccarifarah/spendLog/internal/domain/receipt"
	"github.com/baccarifarah/spendLog/internal/domain/settings"
	"github.com/baccarifarah/spendLog/internal/domain/user"
	"github.com/baccarifarah/spendLog/internal/infrastructure"
	"github.com/baccarifarah/spendLog/internal/middleware"
	"github.com/baccarifarah/spendLog/internal/routes"
)

var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newRateLimiter,
	),
)

func newHandler(
	cfg *config.Config,
	authSvc *auth.Service,
	userSvc *user.Service,
	receiptSvc *receipt.Service,
	incomeSvc *income.Service,
	settingsSvc *settings.Service,
	dashboardSvc *dashboard.Service,
	uploadStore *infrastructure.UploadStore,
) *routes.Handler {
	return &routes.Handler{
		AuthService:      authSvc,
		UserService:      userSvc,
		ReceiptService:   receiptSvc,
		IncomeService:    incomeSvc,
		SettingsService:  settingsSvc,
		DashboardService: dashboardSvc,
		UploadStore:      uploadStore,
		WebhookSecret:    cfg.Auth.WebhookSecret,
	}
}

func newRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}

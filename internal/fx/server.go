package fx

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"github.com/baccarifarah/spendLog/config"
	docs "github.com/baccarifarah/spendLog/docs"
	"github.com/baccarifarah/spendLog/internal/domain/auth"
	"github.com/baccarifarah/spendLog/internal/logger"
	"github.com/baccarifarah/spendLog/internal/middleware"
	"github.com/baccarifarah/spendLog/internal/routes"
)

var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	authSvc *auth.Service,
	rateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.Cors(cfg.CORS.AllowedOrigins))

	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := router.Group("/api")
	public.Use(middleware.RateLimit(rateLimiter))
	{
		public.POST("/webhooks/auth", handler.IdentityWebhook)
	}

	private := router.Group("/api")
	private.Use(middleware.Authenticated(authSvc))
	private.Use(middleware.RateLimitByUser())
	{
		receipts := private.Group("/receipts")
		{
			receipts.GET("/dashboard/stats", handler.GetDashboard)
			receipts.POST("", handler.CreateReceipt)
			receipts.GET("", handler.ListReceipts)
			receipts.GET("/:id", handler.GetReceipt)
			receipts.PATCH("/:id", handler.UpdateReceipt)
			receipts.DELETE("/:id", handler.DeleteReceipt)
			receipts.POST("/:id/items", handler.AddReceiptItem)
			receipts.GET("/:id/items", handler.ListReceiptItems)
		}

		items := private.Group("/items")
		{
			items.GET("/pending", handler.ListPendingItems)
			items.POST("/pending", handler.CreatePendingItem)
			items.DELETE("/pending/:id", handler.DeletePendingItem)
			items.PATCH("/:id", handler.UpdateItem)
			items.DELETE("/:id", handler.DeleteItem)
		}

		incomeGroup := private.Group("/income")
		{
			incomeGroup.POST("", handler.CreateIncome)
			incomeGroup.GET("", handler.ListIncome)
			incomeGroup.GET("/:id", handler.GetIncome)
			incomeGroup.PATCH("/:id", handler.UpdateIncome)
			incomeGroup.DELETE("/:id", handler.DeleteIncome)
		}

		settingsGroup := private.Group("/settings")
		{
			settingsGroup.GET("", handler.GetSettings)
			settingsGroup.PATCH("", handler.UpdateSettings)
		}

		users := private.Group("/users")
		{
			users.GET("/me", handler.GetCurrentUser)
			users.PATCH("/me", handler.UpdateCurrentUser)
			users.DELETE("/me", handler.DeleteCurrentUser)
		}

		uploads := private.Group("/uploads")
		{
			uploads.POST("", handler.UploadReceiptImage)
			uploads.GET("/:name", handler.ServeReceiptImage)
			uploads.DELETE("/:name", handler.DeleteReceiptImage)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Server starting")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Server stopping...")
			return nil
		},
	})
}

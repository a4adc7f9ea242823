package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/baccarifarah/spendLog/internal/domain/auth"
	"github.com/baccarifarah/spendLog/internal/domain/dashboard"
	"github.com/baccarifarah/spendLog/internal/domain/income"
	"github.com/baccarifarah/spendLog/internal/domain/receipt"
	"github.com/baccarifarah/spendLog/internal/domain/settings"
	"github.com/baccarifarah/spendLog/internal/domain/user"
	appErrors "github.com/baccarifarah/spendLog/internal/errors"
	"github.com/baccarifarah/spendLog/internal/infrastructure"
	"github.com/baccarifarah/spendLog/internal/logger"
	"github.com/baccarifarah/spendLog/internal/pkg"
)

type Handler struct {
	AuthService      *auth.Service
	UserService      *user.Service
	ReceiptService   *receipt.Service
	IncomeService    *income.Service
	SettingsService  *settings.Service
	DashboardService *dashboard.Service
	UploadStore      *infrastructure.UploadStore
	WebhookSecret    string
}

func (h *Handler) GetUserIDFromContext(c *gin.Context) (string, error) {
	value, exists := c.Get("user_id")
	if !exists {
		return "", appErrors.ErrUnauthorized
	}
	userID, ok := value.(string)
	if !ok || userID == "" {
		return "", appErrors.ErrUnauthorized
	}
	return userID, nil
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "10")

	var pageNum, limitNum int
	if p, err := pkg.ParseInt(page); err == nil && p > 0 {
		pageNum = p
	} else {
		pageNum = 1
	}

	if l, err := pkg.ParseInt(limit); err == nil && l > 0 {
		limitNum = l
	} else {
		limitNum = 10
	}

	return &pkg.PaginationParams{
		Page:  pageNum,
		Limit: limitNum,
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}

package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baccarifarah/spendLog/internal/contracts"
	domainSettings "github.com/baccarifarah/spendLog/internal/domain/settings"
	appErrors "github.com/baccarifarah/spendLog/internal/errors"
)

func (h *Handler) GetSettings(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.SettingsService.GetSettings(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.SettingsResponse{Settings: entity})
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var body contracts.SettingsUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.SettingsService.UpdateSettings(ctx, userID, &domainSettings.SettingsUpdate{
		DefaultCurrency: body.DefaultCurrency,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.SettingsResponse{Settings: entity})
}

package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/baccarifarah/spendLog/internal/contracts"
	appErrors "github.com/baccarifarah/spendLog/internal/errors"
)

// GetDashboard serves the aggregate spending view. start_date and end_date
// are optional YYYY-MM-DD bounds applied to the range-scoped metrics.
func (h *Handler) GetDashboard(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var start, end *time.Time
	if raw := c.Query("start_date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("start_date", "must be a YYYY-MM-DD date"))
			return
		}
		start = &parsed
	}
	if raw := c.Query("end_date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("end_date", "must be a YYYY-MM-DD date"))
			return
		}
		end = &parsed
	}
	if start != nil && end != nil && end.Before(*start) {
		h.respondError(c, appErrors.NewValidationError("end_date", "must not be before start_date"))
		return
	}

	ctx := c.Request.Context()
	data, err := h.DashboardService.GetDashboard(ctx, userID, start, end)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.DashboardResponse{Dashboard: data})
}

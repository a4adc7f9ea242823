package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/baccarifarah/spendLog/internal/contracts"
	"github.com/baccarifarah/spendLog/internal/domain/income"
	appErrors "github.com/baccarifarah/spendLog/internal/errors"
	"github.com/baccarifarah/spendLog/internal/pkg"
)

func (h *Handler) CreateIncome(c *gin.Context) {
	var body contracts.IncomeCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	date, err := time.Parse(dateLayout, body.Date)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("date", "must be a YYYY-MM-DD date"))
		return
	}

	entity := income.Income{
		UserId:      userID,
		Source:      body.Source,
		Amount:      body.Amount,
		Currency:    body.Currency,
		Category:    income.Category(body.Category),
		Date:        date,
		Description: body.Description,
	}

	ctx := c.Request.Context()
	if err := h.IncomeService.CreateIncome(ctx, &entity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.IncomeResponse{Income: &entity})
}

func (h *Handler) GetIncome(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	incomeID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid id format"))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.IncomeService.GetIncome(ctx, incomeID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.IncomeResponse{Income: entity})
}

func (h *Handler) ListIncome(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	sort := pkg.Sort{
		Key:   c.Query("sort_by"),
		Order: c.Query("sort_order"),
	}
	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	entries, total, err := h.IncomeService.ListIncome(ctx, userID, c.Query("category"), sort, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.IncomeListResponse{
		Income:     entries,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		Total:      total,
		TotalPages: totalPages(total, pagination.Limit),
	})
}

func (h *Handler) UpdateIncome(c *gin.Context) {
	var body contracts.IncomeUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	incomeID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid id format"))
		return
	}

	update := income.IncomeUpdate{
		Source:      body.Source,
		Amount:      body.Amount,
		Currency:    body.Currency,
		Description: body.Description,
	}
	if body.Category != nil {
		category := income.Category(*body.Category)
		update.Category = &category
	}
	if body.Date != nil {
		date, err := time.Parse(dateLayout, *body.Date)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("date", "must be a YYYY-MM-DD date"))
			return
		}
		update.Date = &date
	}

	ctx := c.Request.Context()
	entity, err := h.IncomeService.UpdateIncome(ctx, incomeID, userID, &update)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.IncomeResponse{Income: entity})
}

func (h *Handler) DeleteIncome(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	incomeID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid id format"))
		return
	}

	ctx := c.Request.Context()
	if err := h.IncomeService.DeleteIncome(ctx, incomeID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Income entry deleted"})
}

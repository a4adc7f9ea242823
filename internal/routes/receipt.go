package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"github.com/baccarifarah/spendLog/internal/contracts"
	"github.com/baccarifarah/spendLog/internal/domain/receipt"
	appErrors "github.com/baccarifarah/spendLog/internal/errors"
	"github.com/baccarifarah/spendLog/internal/pkg"
)

const dateLayout = "2006-01-02"

func (h *Handler) CreateReceipt(c *gin.Context) {
	var body contracts.ReceiptCreateRequest
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

	items := make([]receipt.Item, 0, len(body.Items))
	for _, item := range body.Items {
		items = append(items, receipt.Item{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	pendingIDs := make([]ulid.ULID, 0, len(body.PendingItemIds))
	for _, raw := range body.PendingItemIds {
		id, err := pkg.ParseULID(raw)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("pending_item_ids", "invalid item id"))
			return
		}
		pendingIDs = append(pendingIDs, id)
	}

	entity := receipt.Receipt{
		UserId:       userID,
		MerchantName: body.MerchantName,
		Date:         date,
		TotalAmount:  body.TotalAmount,
		Currency:     body.Currency,
		Category:     receipt.Category(body.Category),
		Location:     body.Location,
		ImageUrl:     body.ImageUrl,
		Items:        items,
	}

	ctx := c.Request.Context()
	if err := h.ReceiptService.CreateReceipt(ctx, &entity, pendingIDs); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.ReceiptResponse{Receipt: &entity})
}

func (h *Handler) GetReceipt(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	receiptID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid id format"))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.ReceiptService.GetReceipt(ctx, receiptID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ReceiptResponse{Receipt: entity})
}

func (h *Handler) ListReceipts(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filter := receipt.ListFilter{
		Category:     c.Query("category"),
		MerchantName: c.Query("merchant"),
	}
	sort := pkg.Sort{
		Key:   c.Query("sort_by"),
		Order: c.Query("sort_order"),
	}
	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	receipts, total, err := h.ReceiptService.ListReceipts(ctx, userID, filter, sort, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ReceiptListResponse{
		Receipts:   receipts,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		Total:      total,
		TotalPages: totalPages(total, pagination.Limit),
	})
}

func (h *Handler) UpdateReceipt(c *gin.Context) {
	var body contracts.ReceiptUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	receiptID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid id format"))
		return
	}

	update := receipt.ReceiptUpdate{
		MerchantName: body.MerchantName,
		TotalAmount:  body.TotalAmount,
		Currency:     body.Currency,
		Location:     body.Location,
		ImageUrl:     body.ImageUrl,
	}
	if body.Date != nil {
		date, err := time.Parse(dateLayout, *body.Date)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("date", "must be a YYYY-MM-DD date"))
			return
		}
		update.Date = &date
	}
	if body.Category != nil {
		category := receipt.Category(*body.Category)
		update.Category = &category
	}
	if body.Items != nil {
		update.Items = make([]*receipt.Item, 0, len(body.Items))
		for _, item := range body.Items {
			update.Items = append(update.Items, &receipt.Item{
				Name:     item.Name,
				Price:    item.Price,
				Quantity: item.Quantity,
			})
		}
	}

	ctx := c.Request.Context()
	entity, err := h.ReceiptService.UpdateReceipt(ctx, receiptID, userID, &update)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ReceiptResponse{Receipt: entity})
}

func (h *Handler) DeleteReceipt(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	receiptID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid id format"))
		return
	}

	ctx := c.Request.Context()
	if err := h.ReceiptService.DeleteReceipt(ctx, receiptID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Receipt deleted"})
}

func totalPages(total int64, limit int) int {
	if limit < 1 {
		return 1
	}
	pages := int(total) / limit
	if int(total)%limit > 0 {
		pages++
	}
	if pages == 0 {
		pages = 1
	}
	return pages
}

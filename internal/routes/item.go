package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baccarifarah/spendLog/internal/contracts"
	"github.com/baccarifarah/spendLog/internal/domain/receipt"
	appErrors "github.com/baccarifarah/spendLog/internal/errors"
	"github.com/baccarifarah/spendLog/internal/pkg"
)

func (h *Handler) AddReceiptItem(c *gin.Context) {
	var body contracts.ItemCreateRequest
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

	item := receipt.Item{
		Name:     body.Name,
		Price:    body.Price,
		Quantity: body.Quantity,
	}

	ctx := c.Request.Context()
	if err := h.ReceiptService.AddItem(ctx, receiptID, userID, &item); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.ItemResponse{Item: &item})
}

func (h *Handler) ListReceiptItems(c *gin.Context) {
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
	items, err := h.ReceiptService.GetReceiptItems(ctx, receiptID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ItemListResponse{Items: items, Total: len(items)})
}

func (h *Handler) UpdateItem(c *gin.Context) {
	var body contracts.ItemUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	itemID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid id format"))
		return
	}

	ctx := c.Request.Context()
	stored, err := h.ReceiptService.GetItem(ctx, itemID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	name := stored.Name
	price := stored.Price
	quantity := stored.Quantity
	if body.Name != nil {
		name = *body.Name
	}
	if body.Price != nil {
		price = *body.Price
	}
	if body.Quantity != nil {
		quantity = *body.Quantity
	}

	item, err := h.ReceiptService.UpdateItem(ctx, itemID, userID, name, price, quantity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ItemResponse{Item: item})
}

func (h *Handler) DeleteItem(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	itemID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid id format"))
		return
	}

	ctx := c.Request.Context()
	if err := h.ReceiptService.DeleteItem(ctx, itemID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Item deleted"})
}

func (h *Handler) ListPendingItems(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	items, err := h.ReceiptService.ListPendingItems(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ItemListResponse{Items: items, Total: len(items)})
}

func (h *Handler) CreatePendingItem(c *gin.Context) {
	var body contracts.ItemCreateRequest
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
	item, err := h.ReceiptService.CreatePendingItem(ctx, userID, body.Name, body.Quantity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.ItemResponse{Item: item})
}

func (h *Handler) DeletePendingItem(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	itemID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid id format"))
		return
	}

	ctx := c.Request.Context()
	if err := h.ReceiptService.DeletePendingItem(ctx, itemID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Pending item deleted"})
}

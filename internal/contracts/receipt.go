package contracts

import (
	domainReceipt "github.com/baccarifarah/spendLog/internal/domain/receipt"
)

type ReceiptItemRequest struct {
	Name     string  `json:"name" binding:"required,max=255"`
	Price    float64 `json:"price" binding:"gte=0"`
	Quantity int     `json:"quantity" binding:"omitempty,gte=1"`
}

type ReceiptCreateRequest struct {
	MerchantName   string               `json:"merchant_name" binding:"required,max=255"`
	Date           string               `json:"date" binding:"required,datetime=2006-01-02"`
	TotalAmount    float64              `json:"total_amount" binding:"required,gt=0"`
	Currency       string               `json:"currency" binding:"omitempty,min=3,max=8"`
	Category       string               `json:"category" binding:"omitempty,max=30"`
	Location       *string              `json:"location" binding:"omitempty,max=255"`
	ImageUrl       *string              `json:"image_url" binding:"omitempty,max=500"`
	Items          []ReceiptItemRequest `json:"items" binding:"omitempty,dive"`
	PendingItemIds []string             `json:"pending_item_ids" binding:"omitempty,dive,len=26"`
}

type ReceiptUpdateRequest struct {
	MerchantName *string              `json:"merchant_name" binding:"omitempty,max=255"`
	Date         *string              `json:"date" binding:"omitempty,datetime=2006-01-02"`
	TotalAmount  *float64             `json:"total_amount" binding:"omitempty,gt=0"`
	Currency     *string              `json:"currency" binding:"omitempty,min=3,max=8"`
	Category     *string              `json:"category" binding:"omitempty,max=30"`
	Location     *string              `json:"location" binding:"omitempty,max=255"`
	ImageUrl     *string              `json:"image_url" binding:"omitempty,max=500"`
	Items        []ReceiptItemRequest `json:"items" binding:"omitempty,dive"`
}

type ReceiptResponse struct {
	Receipt *domainReceipt.Receipt `json:"receipt"`
}

type ReceiptListResponse struct {
	Receipts   []*domainReceipt.Receipt `json:"receipts"`
	Page       int                      `json:"page"`
	Limit      int                      `json:"limit"`
	Total      int64                    `json:"total"`
	TotalPages int                      `json:"total_pages"`
}

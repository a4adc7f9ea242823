package contracts

import (
	domainReceipt "github.com/baccarifarah/spendLog/internal/domain/receipt"
)

type ItemCreateRequest struct {
	Name     string  `json:"name" binding:"required,max=255"`
	Price    float64 `json:"price" binding:"gte=0"`
	Quantity int     `json:"quantity" binding:"omitempty,gte=1"`
}

type ItemUpdateRequest struct {
	Name     *string  `json:"name" binding:"omitempty,max=255"`
	Price    *float64 `json:"price" binding:"omitempty,gte=0"`
	Quantity *int     `json:"quantity" binding:"omitempty,gte=1"`
}

type ItemResponse struct {
	Item *domainReceipt.Item `json:"item"`
}

type ItemListResponse struct {
	Items []*domainReceipt.Item `json:"items"`
	Total int                   `json:"total"`
}

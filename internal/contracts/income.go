package contracts

import (
	domainIncome "github.com/baccarifarah/spendLog/internal/domain/income"
)

type IncomeCreateRequest struct {
	Source      string  `json:"source" binding:"required,max=255"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Currency    string  `json:"currency" binding:"omitempty,min=3,max=8"`
	Category    string  `json:"category" binding:"omitempty,max=20"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

type IncomeUpdateRequest struct {
	Source      *string  `json:"source" binding:"omitempty,max=255"`
	Amount      *float64 `json:"amount" binding:"omitempty,gt=0"`
	Currency    *string  `json:"currency" binding:"omitempty,min=3,max=8"`
	Category    *string  `json:"category" binding:"omitempty,max=20"`
	Date        *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description *string  `json:"description" binding:"omitempty,max=500"`
}

type IncomeResponse struct {
	Income *domainIncome.Income `json:"income"`
}

type IncomeListResponse struct {
	Income     []*domainIncome.Income `json:"income"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	Total      int64                  `json:"total"`
	TotalPages int                    `json:"total_pages"`
}

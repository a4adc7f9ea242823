package contracts

import (
	domainSettings "github.com/baccarifarah/spendLog/internal/domain/settings"
)

type SettingsUpdateRequest struct {
	DefaultCurrency *string `json:"default_currency" binding:"omitempty,min=3,max=8"`
}

type SettingsResponse struct {
	Settings *domainSettings.Settings `json:"settings"`
}

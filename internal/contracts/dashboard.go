package contracts

import (
	domainDashboard "github.com/baccarifarah/spendLog/internal/domain/dashboard"
)

type DashboardResponse struct {
	Dashboard *domainDashboard.DashboardData `json:"dashboard"`
}

type UploadResponse struct {
	FileName string `json:"file_name"`
	Url      string `json:"url"`
}

package update_quota

import "github.com/m04kA/SMC-WeekendService/internal/domain"

// UpdateQuotaRequest HTTP request model
type UpdateQuotaRequest struct {
	DailyQuota int `json:"dailyQuota"`
}

// UpdateQuotaResponse HTTP response model
type UpdateQuotaResponse struct {
	Location   string `json:"location"`
	Role       string `json:"role"`
	DailyQuota int    `json:"dailyQuota"`
}

// FromDomainConfig конвертирует конфигурацию квоты в HTTP response
func FromDomainConfig(cfg *domain.QuotaConfig) *UpdateQuotaResponse {
	return &UpdateQuotaResponse{
		Location:   string(cfg.Location),
		Role:       string(cfg.Role),
		DailyQuota: cfg.DailyQuota,
	}
}

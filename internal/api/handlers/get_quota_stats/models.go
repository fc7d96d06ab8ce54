package get_quota_stats

import "github.com/m04kA/SMC-WeekendService/internal/domain"

// RoleStatsResponse статистика одной должности
type RoleStatsResponse struct {
	Role           string `json:"role"`
	RoleName       string `json:"roleName"`
	DailyQuota     int    `json:"dailyQuota"`
	TotalUsed      int    `json:"totalUsed"`
	TotalAvailable int    `json:"totalAvailable"`
}

// LocationStatsResponse статистика одной локации
type LocationStatsResponse struct {
	Location     string               `json:"location"`
	LocationName string               `json:"locationName"`
	Roles        []*RoleStatsResponse `json:"roles"`
}

// QuotaStatsResponse HTTP response model
type QuotaStatsResponse struct {
	Locations []*LocationStatsResponse `json:"locations"`
}

// FromDomainStats конвертирует статистику в HTTP response
// Должности выводятся в порядке каталога
func FromDomainStats(stats []*domain.LocationStats) *QuotaStatsResponse {
	locations := make([]*LocationStatsResponse, 0, len(stats))
	for _, ls := range stats {
		roles := make([]*RoleStatsResponse, 0, len(ls.Roles))
		for _, role := range domain.Roles {
			rs, ok := ls.Roles[role]
			if !ok {
				continue
			}
			roles = append(roles, &RoleStatsResponse{
				Role:           string(role),
				RoleName:       role.Name(),
				DailyQuota:     rs.DailyQuota,
				TotalUsed:      rs.TotalUsed,
				TotalAvailable: rs.TotalAvailable,
			})
		}
		locations = append(locations, &LocationStatsResponse{
			Location:     string(ls.Location),
			LocationName: ls.Location.Name(),
			Roles:        roles,
		})
	}
	return &QuotaStatsResponse{Locations: locations}
}

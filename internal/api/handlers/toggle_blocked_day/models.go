package toggle_blocked_day

import "github.com/m04kA/SMC-DeliveryDates/internal/domain"

// ToggleResponse множество заблокированных дней после переключения
type ToggleResponse struct {
	ShopID      string           `json:"shopId"`
	Day         domain.Weekday   `json:"day"`
	Blocked     bool             `json:"blocked"`
	BlockedDays []domain.Weekday `json:"blockedDays"`
}

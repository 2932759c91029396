package get_shop_settings

import (
	"github.com/m04kA/SMC-DeliveryDates/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
	"github.com/m04kA/SMC-DeliveryDates/internal/service/dates/models"
)

// ShopSettingsResponse состояние экрана настроек мерчанта
type ShopSettingsResponse struct {
	ShopID         string                       `json:"shopId"`
	BlockedDays    []domain.Weekday             `json:"blockedDays"`
	Dates          []handlers.DateRangeResponse `json:"dates"`
	PendingRemoval *handlers.DateRangeResponse  `json:"pendingRemoval,omitempty"`
}

// ToResponse собирает ответ из дней недели и снимка сессии диапазонов
func ToResponse(shopID string, weekdays domain.BlockedWeekdaySet, snap *models.Snapshot) *ShopSettingsResponse {
	resp := &ShopSettingsResponse{
		ShopID:      shopID,
		BlockedDays: weekdays.Days(),
		Dates:       handlers.ToDateRangeResponses(snap.Ranges),
	}

	if snap.PendingRemoval != nil && *snap.PendingRemoval < len(resp.Dates) {
		pending := resp.Dates[*snap.PendingRemoval]
		resp.PendingRemoval = &pending
	}

	return resp
}

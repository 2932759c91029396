package get_disabled_dates

import (
	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
	getDisabledDates "github.com/m04kA/SMC-DeliveryDates/internal/usecase/get_disabled_dates"
)

// DisabledDatesResponse правила для календаря покупателя:
// строка - день недели, {"end"} - всё по эту дату, {"start","end"} - диапазон
type DisabledDatesResponse struct {
	ShopID   string        `json:"shopId"`
	Today    string        `json:"today"`
	Disabled []domain.Rule `json:"disabled"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *getDisabledDates.Response) *DisabledDatesResponse {
	return &DisabledDatesResponse{
		ShopID:   resp.ShopID,
		Today:    resp.Today.String(),
		Disabled: resp.Rules,
	}
}

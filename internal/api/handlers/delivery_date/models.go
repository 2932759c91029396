package delivery_date

import (
	deliveryGate "github.com/m04kA/SMC-DeliveryDates/internal/usecase/delivery_gate"
)

// SetDeliveryDateRequest выбор в календаре; пустой список сбрасывает выбор
type SetDeliveryDateRequest struct {
	Dates []string `json:"dates"`
}

// DeliveryDateResponse состояние выбора
type DeliveryDateResponse struct {
	State string  `json:"state"` // set | unset
	Date  *string `json:"date,omitempty"`
	Label string  `json:"label,omitempty"` // "Delivery date set for " + label
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *deliveryGate.PickResponse) *DeliveryDateResponse {
	result := &DeliveryDateResponse{
		State: resp.State.String(),
		Label: resp.Label,
	}
	if resp.Date != nil {
		date := resp.Date.String()
		result.Date = &date
	}
	return result
}

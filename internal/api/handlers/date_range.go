package handlers

import (
	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
)

// DateRangeResponse диапазон в ответах админки
type DateRangeResponse struct {
	Index int    `json:"index"`
	Start string `json:"start"` // YYYY-MM-DD
	End   string `json:"end"`   // YYYY-MM-DD
	Label string `json:"label"` // "2024-12-24" или "2024-12-24 – 2024-12-26"
}

// DateRangeRequest тело запроса на добавление или изменение диапазона
// end можно не передавать для одного дня
type DateRangeRequest struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// ToDateRangeResponse конвертирует доменный диапазон
func ToDateRangeResponse(index int, r domain.DateRange) DateRangeResponse {
	return DateRangeResponse{
		Index: index,
		Start: r.Start.String(),
		End:   r.End.String(),
		Label: r.String(),
	}
}

// ToDateRangeResponses конвертирует коллекцию с сохранением порядка
func ToDateRangeResponses(ranges []domain.DateRange) []DateRangeResponse {
	result := make([]DateRangeResponse, len(ranges))
	for i, r := range ranges {
		result[i] = ToDateRangeResponse(i, r)
	}
	return result
}

package get_disabled_dates

import (
	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
	"github.com/m04kA/SMC-DeliveryDates/pkg/types"
)

// Response декларативный ответ для календаря покупателя
type Response struct {
	ShopID string
	Today  types.Date    // Сегодня (UTC), всё до этой даты недоступно
	Rules  []domain.Rule // Дни недели, одна граница "по вчера", диапазоны
}

// MonthResponse все недоступные дни месяца
type MonthResponse struct {
	ShopID       string
	Month        string // YYYY-MM
	DisabledDays []types.Date
}

// DateCheckResponse результат проверки одной даты
type DateCheckResponse struct {
	ShopID   string
	Date     types.Date
	Disabled bool
}

package check_availability

import "github.com/m04kA/SMC-DeliveryDates/pkg/types"

// MonthResponse все недоступные дни месяца
type MonthResponse struct {
	ShopID   string       `json:"shopId"`
	Month    string       `json:"month"`
	Disabled []types.Date `json:"disabled"`
}

// DateResponse проверка одной даты
type DateResponse struct {
	ShopID    string     `json:"shopId"`
	Date      types.Date `json:"date"`
	Available bool       `json:"available"`
}

package get_blocked_dates

import "github.com/m04kA/SMC-DeliveryDates/pkg/types"

// BlockedDatesResponse явный список дней для календаря редактирования
// Дни пересекающихся диапазонов повторяются
type BlockedDatesResponse struct {
	ShopID       string       `json:"shopId"`
	ExcludeIndex *int         `json:"excludeIndex,omitempty"`
	Dates        []types.Date `json:"dates"`
}

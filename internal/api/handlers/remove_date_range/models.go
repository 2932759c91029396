package remove_date_range

import "github.com/m04kA/SMC-DeliveryDates/internal/api/handlers"

// RemovalResponse состояние удаления диапазона
type RemovalResponse struct {
	Status string                      `json:"status"` // pending | removed | canceled | none
	Range  *handlers.DateRangeResponse `json:"range,omitempty"`
}

const (
	statusPending  = "pending"
	statusRemoved  = "removed"
	statusCanceled = "canceled"
	statusNone     = "none"
)

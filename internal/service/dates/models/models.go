package models

import (
	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
)

// Snapshot состояние сессии редактирования диапазонов магазина
type Snapshot struct {
	Ranges []domain.DateRange
	// PendingRemoval индекс диапазона, ожидающего подтверждения удаления
	PendingRemoval *int
}

// RangeRequest запрос на добавление или изменение диапазона
// Пустой End означает один день (End = Start)
type RangeRequest struct {
	ShopID string
	Start  string
	End    string
}

package delivery_gate

import (
	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
	"github.com/m04kA/SMC-DeliveryDates/pkg/types"
)

// PickRequest выбор даты в календаре покупателя
// Календарь присылает список; пустой список означает сброс выбора
type PickRequest struct {
	ShopID        string
	CheckoutToken string
	Dates         []string
}

// PickResponse состояние выбора после операции
type PickResponse struct {
	State domain.SelectionState
	Date  *types.Date
	Label string // "Monday, December 23, 2024" для баннера подтверждения
}

// EvaluateRequest попытка покупателя перейти к следующему шагу checkout
type EvaluateRequest struct {
	CheckoutToken    string
	CanBlockProgress bool
}

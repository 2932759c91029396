package intercept_checkout

// InterceptRequest попытка покупателя перейти к следующему шагу
// Если canBlockProgress не передан, считается, что блокировать можно
type InterceptRequest struct {
	CanBlockProgress *bool `json:"canBlockProgress"`
}

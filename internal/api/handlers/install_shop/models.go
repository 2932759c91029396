package install_shop

import (
	installShop "github.com/m04kA/SMC-DeliveryDates/internal/usecase/install_shop"
)

// InstallShopResponse HTTP response model
type InstallShopResponse struct {
	ShopID  string   `json:"shopId"`
	Created int      `json:"created"`
	Existed int      `json:"existed"`
	Failed  []string `json:"failed,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *installShop.Response) *InstallShopResponse {
	return &InstallShopResponse{
		ShopID:  resp.ShopID,
		Created: resp.Created,
		Existed: resp.Existed,
		Failed:  resp.Failed,
	}
}

package install_shop

import (
	"context"

	installShop "github.com/m04kA/SMC-DeliveryDates/internal/usecase/install_shop"
)

type InstallShopUseCase interface {
	Execute(ctx context.Context, shopID string) (*installShop.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

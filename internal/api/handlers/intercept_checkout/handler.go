package intercept_checkout

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeliveryDates/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
	deliveryGate "github.com/m04kA/SMC-DeliveryDates/internal/usecase/delivery_gate"
)

type Handler struct {
	useCase DeliveryGateUseCase
	logger  Logger
}

func NewHandler(useCase DeliveryGateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkouts/{checkoutToken}/intercept
// Всегда отвечает 200 с решением allow или block.
// Нечитаемое тело запроса блокирует переход.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["checkoutToken"]

	req := InterceptRequest{}
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /checkouts/{token}/intercept - Invalid request body, blocking: %v", err)
			handlers.RespondJSON(w, http.StatusOK, domain.Block(domain.MsgDeliveryDateUnverifiable))
			return
		}
	}

	canBlock := req.CanBlockProgress == nil || *req.CanBlockProgress

	decision := h.useCase.Evaluate(r.Context(), &deliveryGate.EvaluateRequest{
		CheckoutToken:    token,
		CanBlockProgress: canBlock,
	})

	h.logger.Info("POST /checkouts/{token}/intercept - Decision: behavior=%s, reason=%q", decision.Behavior, decision.Reason)
	handlers.RespondJSON(w, http.StatusOK, decision)
}

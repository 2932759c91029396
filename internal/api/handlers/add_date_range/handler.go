package add_date_range

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeliveryDates/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryDates/internal/service/dates"
	"github.com/m04kA/SMC-DeliveryDates/internal/service/dates/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRange       = "некорректный диапазон дат: нужна дата начала, начало не позже конца, не длиннее года"
)

type Handler struct {
	service DatesService
	logger  Logger
}

func NewHandler(service DatesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/shops/{shopId}/dates
// Диапазон добавляется в конец коллекции
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["shopId"]

	var req handlers.DateRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shops/{id}/dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	index, added, err := h.service.Add(r.Context(), &models.RangeRequest{
		ShopID: shopID,
		Start:  req.Start,
		End:    req.End,
	})
	if err != nil {
		if errors.Is(err, dates.ErrInvalidInput) {
			h.logger.Warn("POST /shops/{id}/dates - Invalid range: shop_id=%s, error=%v", shopID, err)
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}

		h.logger.Error("POST /shops/{id}/dates - Failed to add range: shop_id=%s, error=%v", shopID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /shops/{id}/dates - Range added: shop_id=%s, index=%d, range=%s", shopID, index, added)
	handlers.RespondJSON(w, http.StatusCreated, handlers.ToDateRangeResponse(index, added))
}

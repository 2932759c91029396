package edit_date_range

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeliveryDates/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryDates/internal/service/dates"
	"github.com/m04kA/SMC-DeliveryDates/internal/service/dates/models"
)

const (
	msgInvalidIndex       = "некорректный индекс диапазона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRange       = "некорректный диапазон дат: нужна дата начала, начало не позже конца, не длиннее года"
	msgNotFound           = "диапазон не найден"
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

// Handle PUT /api/v1/shops/{shopId}/dates/{index}
// Диапазон заменяется на месте, остальные индексы не меняются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	shopID := vars["shopId"]

	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		h.logger.Warn("PUT /shops/{id}/dates/{index} - Invalid index: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIndex)
		return
	}

	var req handlers.DateRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /shops/{id}/dates/{index} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	edited, err := h.service.Edit(r.Context(), index, &models.RangeRequest{
		ShopID: shopID,
		Start:  req.Start,
		End:    req.End,
	})
	if err != nil {
		switch {
		case errors.Is(err, dates.ErrRangeNotFound):
			h.logger.Warn("PUT /shops/{id}/dates/{index} - Range not found: shop_id=%s, index=%d", shopID, index)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, dates.ErrInvalidInput):
			h.logger.Warn("PUT /shops/{id}/dates/{index} - Invalid range: shop_id=%s, error=%v", shopID, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("PUT /shops/{id}/dates/{index} - Failed to edit range: shop_id=%s, index=%d, error=%v",
				shopID, index, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /shops/{id}/dates/{index} - Range edited: shop_id=%s, index=%d, range=%s", shopID, index, edited)
	handlers.RespondJSON(w, http.StatusOK, handlers.ToDateRangeResponse(index, edited))
}

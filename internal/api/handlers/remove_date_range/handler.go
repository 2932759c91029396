package remove_date_range

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeliveryDates/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryDates/internal/service/dates"
)

const (
	msgInvalidIndex     = "некорректный индекс диапазона"
	msgInvalidShopID    = "некорректный ID магазина"
	msgNotFound         = "диапазон не найден"
	msgNoPendingRemoval = "удаление не запрошено"
)

// Handler двухфазное удаление: запрос, затем подтверждение или отмена
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

// HandleRequest POST /api/v1/shops/{shopId}/dates/{index}/removal
// Коллекция не меняется до подтверждения
func (h *Handler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	shopID := vars["shopId"]

	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		h.logger.Warn("POST /shops/{id}/dates/{index}/removal - Invalid index: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIndex)
		return
	}

	candidate, err := h.service.RequestRemove(r.Context(), shopID, index)
	if err != nil {
		h.respondError(w, "POST /shops/{id}/dates/{index}/removal", shopID, err)
		return
	}

	resp := handlers.ToDateRangeResponse(index, candidate)
	h.logger.Info("POST /shops/{id}/dates/{index}/removal - Removal pending: shop_id=%s, index=%d", shopID, index)
	handlers.RespondJSON(w, http.StatusOK, &RemovalResponse{Status: statusPending, Range: &resp})
}

// HandleConfirm POST /api/v1/shops/{shopId}/dates/removal/confirm
func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["shopId"]

	index, removed, err := h.service.ConfirmRemove(r.Context(), shopID)
	if err != nil {
		h.respondError(w, "POST /shops/{id}/dates/removal/confirm", shopID, err)
		return
	}

	resp := handlers.ToDateRangeResponse(index, removed)
	h.logger.Info("POST /shops/{id}/dates/removal/confirm - Range removed: shop_id=%s, range=%s", shopID, removed)
	handlers.RespondJSON(w, http.StatusOK, &RemovalResponse{Status: statusRemoved, Range: &resp})
}

// HandleCancel DELETE /api/v1/shops/{shopId}/dates/removal
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["shopId"]

	canceled, err := h.service.CancelRemove(r.Context(), shopID)
	if err != nil {
		h.respondError(w, "DELETE /shops/{id}/dates/removal", shopID, err)
		return
	}

	status := statusNone
	if canceled {
		status = statusCanceled
	}
	h.logger.Info("DELETE /shops/{id}/dates/removal - shop_id=%s, status=%s", shopID, status)
	handlers.RespondJSON(w, http.StatusOK, &RemovalResponse{Status: status})
}

func (h *Handler) respondError(w http.ResponseWriter, route, shopID string, err error) {
	switch {
	case errors.Is(err, dates.ErrRangeNotFound):
		h.logger.Warn("%s - Range not found: shop_id=%s, error=%v", route, shopID, err)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, dates.ErrNoPendingRemoval):
		h.logger.Warn("%s - No pending removal: shop_id=%s", route, shopID)
		handlers.RespondConflict(w, msgNoPendingRemoval)

	case errors.Is(err, dates.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: shop_id=%q", route, shopID)
		handlers.RespondBadRequest(w, msgInvalidShopID)

	default:
		h.logger.Error("%s - Failed: shop_id=%s, error=%v", route, shopID, err)
		handlers.RespondInternalError(w)
	}
}

package get_blocked_dates

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeliveryDates/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryDates/internal/availability"
	"github.com/m04kA/SMC-DeliveryDates/internal/service/dates"
	"github.com/m04kA/SMC-DeliveryDates/pkg/ptr"
	"github.com/m04kA/SMC-DeliveryDates/pkg/types"
)

const (
	msgInvalidExcludeIndex = "некорректный параметр excludeIndex"
	msgInvalidWindow       = "параметры from и to задаются вместе в формате YYYY-MM-DD"
	msgInvalidShopID       = "некорректный ID магазина"
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

// Handle GET /api/v1/shops/{shopId}/blocked-dates
// Query params:
//   - excludeIndex (опционально) - диапазон, который сейчас редактируется
//   - from, to (опционально, YYYY-MM-DD) - окно календаря; без окна возвращаются все дни
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["shopId"]

	var excludeIndex *int
	if raw := r.URL.Query().Get("excludeIndex"); raw != "" {
		index, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /shops/{id}/blocked-dates - Invalid excludeIndex: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidExcludeIndex)
			return
		}
		excludeIndex = ptr.Ptr(index)
	}

	window, err := parseWindow(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		h.logger.Warn("GET /shops/{id}/blocked-dates - Invalid window: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindow)
		return
	}

	days, err := h.service.BlockedDays(r.Context(), shopID, excludeIndex, window)
	if err != nil {
		if errors.Is(err, dates.ErrInvalidInput) {
			h.logger.Warn("GET /shops/{id}/blocked-dates - Invalid shop ID: %q", shopID)
			handlers.RespondBadRequest(w, msgInvalidShopID)
			return
		}

		h.logger.Error("GET /shops/{id}/blocked-dates - Failed to get blocked dates: shop_id=%s, error=%v", shopID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &BlockedDatesResponse{
		ShopID:       shopID,
		ExcludeIndex: excludeIndex,
		Dates:        days,
	})
}

func parseWindow(from, to string) (*availability.Window, error) {
	if from == "" && to == "" {
		return nil, nil
	}
	if from == "" || to == "" {
		return nil, fmt.Errorf("from=%q, to=%q: both are required", from, to)
	}

	start, err := types.ParseDate(from)
	if err != nil {
		return nil, err
	}
	end, err := types.ParseDate(to)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, fmt.Errorf("from %s is after to %s", start, end)
	}

	return &availability.Window{From: start, To: end}, nil
}

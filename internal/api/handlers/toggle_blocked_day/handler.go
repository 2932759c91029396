package toggle_blocked_day

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeliveryDates/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
	"github.com/m04kA/SMC-DeliveryDates/internal/service/weekdays"
)

const (
	msgInvalidDay = "некорректный день недели, ожидается Monday..Sunday"
)

type Handler struct {
	service WeekdaysService
	logger  Logger
}

func NewHandler(service WeekdaysService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/shops/{shopId}/blocked-days/{day}/toggle
// Изменение сразу сохраняется целиком
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	shopID := vars["shopId"]
	dayName := vars["day"]

	set, err := h.service.Toggle(r.Context(), shopID, dayName)
	if err != nil {
		if errors.Is(err, weekdays.ErrInvalidInput) {
			h.logger.Warn("POST /shops/{id}/blocked-days/{day}/toggle - Invalid input: shop_id=%s, day=%q", shopID, dayName)
			handlers.RespondBadRequest(w, msgInvalidDay)
			return
		}

		h.logger.Error("POST /shops/{id}/blocked-days/{day}/toggle - Failed to toggle: shop_id=%s, error=%v", shopID, err)
		handlers.RespondInternalError(w)
		return
	}

	day, _ := domain.ParseWeekday(dayName)
	h.logger.Info("POST /shops/{id}/blocked-days/{day}/toggle - Toggled: shop_id=%s, day=%s, blocked=%t",
		shopID, day, set.Contains(day))
	handlers.RespondJSON(w, http.StatusOK, &ToggleResponse{
		ShopID:      shopID,
		Day:         day,
		Blocked:     set.Contains(day),
		BlockedDays: set.Days(),
	})
}

package get_blocked_dates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryDates/internal/availability"
	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
	"github.com/m04kA/SMC-DeliveryDates/pkg/logger"
	"github.com/m04kA/SMC-DeliveryDates/pkg/types"
)

// closure on the whole of 2025, plus Christmas 2024
var closures = []domain.DateRange{
	{Start: types.NewDate(2025, time.January, 1), End: types.NewDate(2025, time.December, 31)},
	{Start: types.NewDate(2024, time.December, 24), End: types.NewDate(2024, time.December, 26)},
}

type fakeDates struct {
	calls int
}

func (f *fakeDates) BlockedDays(_ context.Context, _ string, excludeIndex *int, window *availability.Window) ([]types.Date, error) {
	f.calls++
	if window != nil {
		return availability.BlockedDaysIn(closures, excludeIndex, *window), nil
	}
	return availability.BlockedDays(closures, excludeIndex), nil
}

func get(svc DatesService, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/shops/shop-1/blocked-dates?"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"shopId": "shop-1"})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Window(t *testing.T) {
	rec := get(&fakeDates{}, "from=2024-12-30&to=2025-01-02")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"shopId":"shop-1","dates":["2025-01-01","2025-01-02"]}`, rec.Body.String())
}

func TestHandle_ExcludeIndexWithoutWindow(t *testing.T) {
	rec := get(&fakeDates{}, "excludeIndex=0")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"shopId":"shop-1","excludeIndex":0,"dates":["2024-12-24","2024-12-25","2024-12-26"]}`, rec.Body.String())
}

func TestHandle_InvalidParams(t *testing.T) {
	for _, query := range []string{
		"excludeIndex=first",
		"from=2025-01-01",
		"to=2025-01-01",
		"from=2025-02-01&to=2025-01-01",
		"from=01.01.2025&to=2025-01-31",
	} {
		svc := &fakeDates{}
		rec := get(svc, query)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
		assert.Zero(t, svc.calls, query)
	}
}

package intercept_checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
	deliveryGate "github.com/m04kA/SMC-DeliveryDates/internal/usecase/delivery_gate"
	"github.com/m04kA/SMC-DeliveryDates/pkg/logger"
)

type fakeGate struct {
	selected map[string]bool
	last     *deliveryGate.EvaluateRequest
}

func (f *fakeGate) Evaluate(_ context.Context, req *deliveryGate.EvaluateRequest) domain.GateDecision {
	f.last = req
	if !req.CanBlockProgress || f.selected[req.CheckoutToken] {
		return domain.Allow()
	}
	return domain.Block(domain.MsgDeliveryDateNotSet)
}

func serve(t *testing.T, gate *fakeGate, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkouts/"+token+"/intercept", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"checkoutToken": token})
	rec := httptest.NewRecorder()
	NewHandler(gate, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_BlocksWithoutSelection(t *testing.T) {
	rec := serve(t, &fakeGate{}, "tok-1", `{"canBlockProgress":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.JSONEq(t, `{
		"behavior":"block",
		"reason":"Delivery date not set",
		"errors":[{"message":"Delivery date not set"}]
	}`, rec.Body.String())
}

func TestHandle_AllowsWithSelection(t *testing.T) {
	rec := serve(t, &fakeGate{selected: map[string]bool{"tok-1": true}}, "tok-1", `{"canBlockProgress":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var decision domain.GateDecision
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decision))
	assert.True(t, decision.IsAllowed())
}

func TestHandle_CanBlockProgress(t *testing.T) {
	gate := &fakeGate{}

	rec := serve(t, gate, "tok-1", `{"canBlockProgress":false}`)
	assert.JSONEq(t, `{"behavior":"allow"}`, rec.Body.String())
	assert.False(t, gate.last.CanBlockProgress)

	serve(t, gate, "tok-1", "")
	assert.True(t, gate.last.CanBlockProgress)
}

func TestHandle_InvalidBodyBlocks(t *testing.T) {
	for _, body := range []string{`{"canBlockProgress":"yes"}`, `{not json`} {
		gate := &fakeGate{selected: map[string]bool{"tok-1": true}}

		rec := serve(t, gate, "tok-1", body)
		require.Equal(t, http.StatusOK, rec.Code, body)
		assert.JSONEq(t, `{
			"behavior":"block",
			"reason":"Delivery date could not be verified",
			"errors":[{"message":"Delivery date could not be verified"}]
		}`, rec.Body.String(), body)
		assert.Nil(t, gate.last, body)
	}
}

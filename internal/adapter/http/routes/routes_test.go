package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment_sync/internal/adapter/persistence/repository"
	"payment_sync/internal/adapter/platform"
	"payment_sync/internal/config"
	"payment_sync/internal/i18n"
	"payment_sync/internal/infrastructure/messaging"
	"payment_sync/internal/infrastructure/metrics"
	"payment_sync/internal/infrastructure/payments"
	"payment_sync/internal/usecase"
)

func newTestRouter(t *testing.T, secret string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gateway, err := payments.NewMercadoPagoGateway("", true)
	require.NoError(t, err)

	catalog := i18n.NewCatalog("en_US")
	publisher := messaging.NewPublisher(nil, "order-events", "customer-notifications")
	m := metrics.NewServerMetrics("api")

	service := usecase.NewOrderService(
		repository.NewMemoryOrderRepository(),
		repository.NewMemoryChargeRepository(),
		repository.NewMemoryCardRepository(),
		gateway,
		config.ModuleConfig{SaveCards: true},
		metrics.NewCountingPublisher(publisher, m),
		catalog,
	)

	return NewRouter(Dependencies{
		Orders:    service,
		Platforms: platform.NewFactory(repository.NewMemoryPlatformOrderRepository(), publisher, catalog),
		Metrics:   m,
		JWTSecret: secret,
	})
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	r := newTestRouter(t, "")
	w := serve(r, http.MethodGet, "/v1/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestOrderRoutesRequireTokenWhenSecretSet(t *testing.T) {
	r := newTestRouter(t, "hook-secret")

	w := serve(r, http.MethodGet, "/v1/orders/100001", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(r, http.MethodGet, "/v1/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateThenCancelOrder(t *testing.T) {
	r := newTestRouter(t, "")

	w := serve(r, http.MethodPost, "/v1/orders", `{
		"code": "100001",
		"grand_total": "100.00",
		"customer": {"name": "Ana", "email": "ana@example.com"},
		"payments": [{"method": "credit_card", "amount": "100.00", "card_token": "tok_ok"}]
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Order struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"order"`
		PlatformOrder struct {
			GatewayID string `json:"gateway_id"`
			TotalPaid string `json:"total_paid"`
		} `json:"platform_order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "paid", created.Order.Status)
	assert.Equal(t, created.Order.ID, created.PlatformOrder.GatewayID)
	assert.Equal(t, "100.00", created.PlatformOrder.TotalPaid)

	w = serve(r, http.MethodPost, "/v1/orders/100001/cancel", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var canceled struct {
		Canceled bool              `json:"canceled"`
		Failures map[string]string `json:"failures"`
		Platform struct {
			Status string `json:"status"`
		} `json:"platform_order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &canceled))
	assert.True(t, canceled.Canceled)
	assert.Empty(t, canceled.Failures)
	assert.Equal(t, "canceled", canceled.Platform.Status)

	w = serve(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `payment_sync_api_order_events_total{type="order.created"} 1`), w.Body.String())
}

func TestCreateDeclinedOrder(t *testing.T) {
	r := newTestRouter(t, "")

	w := serve(r, http.MethodPost, "/v1/orders", `{
		"code": "100002",
		"grand_total": "100.00",
		"payments": [{"method": "credit_card", "amount": "100.00", "card_token": "tok_declined_1"}]
	}`)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "PAYMENT_FAILED", body["code"])
	assert.Equal(t, "remote_charge_failure", body["kind"])

	w = serve(r, http.MethodGet, "/v1/orders/100002", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

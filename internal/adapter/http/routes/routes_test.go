package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"assistencia_tecnica/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(zap.NewNop(), Handlers{
		Service:     handlers.NewServiceHandler(nil),
		Stock:       handlers.NewStockHandler(nil),
		Sale:        handlers.NewSaleHandler(nil),
		Transaction: handlers.NewTransactionHandler(nil),
		Dashboard:   handlers.NewDashboardHandler(nil),
		PDV:         handlers.NewPDVHandler(nil),
		Document:    handlers.NewDocumentHandler(nil),
	})
}

func TestNewRouter_Ping(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestNewRouter_RegistersAPI(t *testing.T) {
	r := newTestRouter()

	got := map[string]bool{}
	for _, route := range r.Routes() {
		got[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /v1/services",
		"PATCH /v1/services/:id/status",
		"GET /v1/services/:id/print",
		"GET /v1/services/:id/pdf",
		"POST /v1/stock/:id/movements",
		"GET /v1/sales/:id/receipt",
		"PATCH /v1/transactions/:id/pay",
		"GET /v1/dashboard",
		"POST /v1/pdv/carts/:cart_id/items",
		"PUT /v1/pdv/carts/:cart_id/discount",
		"POST /v1/pdv/carts/:cart_id/checkout",
		"GET /v1/pdv/checkouts/:checkout_id/receipt",
		"GET /metrics",
	} {
		assert.True(t, got[want], "missing route %s", want)
	}
}

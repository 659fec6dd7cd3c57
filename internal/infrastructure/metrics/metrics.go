package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ServiceOrdersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "service_orders_created_total",
			Help: "Total de ordens de serviço abertas",
		},
	)

	SalesRegistered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_registered_total",
			Help: "Total de vendas registradas por origem (stock, external, pdv)",
		},
		[]string{"origin"},
	)

	CheckoutRevenue = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pdv_checkout_revenue_reais_total",
			Help: "Valor total finalizado no PDV, em reais",
		},
	)

	StockMovements = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stock_movements_total",
			Help: "Movimentações de estoque por direção (in, out)",
		},
		[]string{"direction"},
	)

	DocumentsRendered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "documents_rendered_total",
			Help: "Documentos gerados por tipo (service_order_html, service_order_pdf, receipt)",
		},
		[]string{"kind"},
	)
)

var registerOnce sync.Once

// Register adds the collectors to the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			ServiceOrdersCreated,
			SalesRegistered,
			CheckoutRevenue,
			StockMovements,
			DocumentsRendered,
		)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

// Direction labels a stock delta.
func Direction(delta int) string {
	if delta < 0 {
		return "out"
	}
	return "in"
}

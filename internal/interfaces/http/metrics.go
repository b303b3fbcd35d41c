package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Contadores del motor de transiciones. entity ∈ {requisition, order, pick_list}.
var (
	transitionsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "warehouse_transitions_applied_total",
		Help: "Transiciones de estado aplicadas, por entidad y estado destino.",
	}, []string{"entity", "status"})

	transitionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "warehouse_transitions_rejected_total",
		Help: "Transiciones rechazadas por la tabla de estados, por entidad.",
	}, []string{"entity"})

	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "warehouse_orders_created_total",
		Help: "Órdenes de compra creadas.",
	})
)

// MetricsHandler expone el registro Prometheus vía el adaptor net/http de Fiber.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

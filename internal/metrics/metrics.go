// Package metrics defines the Prometheus metrics recorded by the store
// service. All metrics are registered with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Users ─────────────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts registered users.
// Label:
//   - role: "customer" or "administrator"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of registered users, by role.",
	},
	[]string{"role"},
)

// ── Catalog ───────────────────────────────────────────────────────────────────

// CatalogProducts tracks the number of products currently in the catalog.
var CatalogProducts = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_products",
		Help:      "Current number of products in the catalog.",
	},
)

// StockUnitsSoldTotal counts stock units consumed by placed orders.
// Label:
//   - category: "general", "electronics" or "apparel"
var StockUnitsSoldTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_units_sold_total",
		Help:      "Total number of stock units consumed by orders, by product category.",
	},
	[]string{"category"},
)

// ── Orders ────────────────────────────────────────────────────────────────────

// OrdersPlacedTotal counts successfully placed orders.
var OrdersPlacedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of orders placed successfully.",
	},
)

// OrdersRejectedTotal counts orders that were refused.
// Label:
//   - reason: "not_found", "invalid_argument", "permission_denied",
//     "insufficient_stock", "invalid_state"
var OrdersRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_rejected_total",
		Help:      "Total number of order requests rejected, by reason.",
	},
	[]string{"reason"},
)

// OrderValue observes the total of each placed order.
var OrderValue = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "order_value",
		Help:      "Total value of placed orders.",
		Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000, 2500},
	},
)

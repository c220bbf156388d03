package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RegisteredWithDefaultRegistry(t *testing.T) {
	OrdersPlacedTotal.Add(0)
	OrdersRejectedTotal.WithLabelValues("not_found").Add(0)
	UsersRegisteredTotal.WithLabelValues("customer").Add(0)
	StockUnitsSoldTotal.WithLabelValues("general").Add(0)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, mf := range families {
		names[mf.GetName()] = true
	}

	for _, want := range []string{
		"storefront_users_registered_total",
		"storefront_catalog_products",
		"storefront_stock_units_sold_total",
		"storefront_orders_placed_total",
		"storefront_orders_rejected_total",
	} {
		assert.True(t, names[want], "metric %s not registered", want)
	}
}

func TestOrdersRejectedTotal_CountsByReason(t *testing.T) {
	before := testutil.ToFloat64(OrdersRejectedTotal.WithLabelValues("insufficient_stock"))
	OrdersRejectedTotal.WithLabelValues("insufficient_stock").Inc()
	after := testutil.ToFloat64(OrdersRejectedTotal.WithLabelValues("insufficient_stock"))

	assert.Equal(t, before+1, after)
}

func TestCatalogProducts_Expose(t *testing.T) {
	CatalogProducts.Set(3)

	expected := `
# HELP storefront_catalog_products Current number of products in the catalog.
# TYPE storefront_catalog_products gauge
storefront_catalog_products 3
`
	err := testutil.CollectAndCompare(CatalogProducts, strings.NewReader(expected))
	assert.NoError(t, err)
}

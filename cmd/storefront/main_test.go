package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/store-service/internal/core/service"
	"github.com/storefront/store-service/internal/infrastructure/idgen"
)

func TestRun_PrintsSession(t *testing.T) {
	store := service.NewStoreService(idgen.NewSequence("id-"), nil, zerolog.Nop())

	var out bytes.Buffer
	require.NoError(t, run(store, &out))

	text := out.String()
	assert.Contains(t, text, "Registered users:")
	assert.Contains(t, text, "[id-000004] Diego Pinera <admin@example.com> - Administrator")
	assert.Contains(t, text, "Order 1 placed:")
	assert.Contains(t, text, "Total: 519.79")
	assert.Contains(t, text, "Total: 67.45")
	assert.Contains(t, text, "Total: 89.99")
	assert.Contains(t, text, "Order history of Fernando Peman:")
	// Laptop went from 10 to 9, the jacket from 5 to 4.
	assert.Contains(t, text, "Laptop - Price: 399.99 - Stock: 9 - Warranty: 24 months")
	assert.Contains(t, text, "Jacket - Price: 89.99 - Stock: 4 - Size: L - Color: Black")
}

func TestDumpMetrics_FiltersToStorefront(t *testing.T) {
	reg := prometheus.NewRegistry()
	own := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_test_total", Help: "test"})
	foreign := prometheus.NewCounter(prometheus.CounterOpts{Name: "other_total", Help: "test"})
	reg.MustRegister(own, foreign)
	own.Add(2)

	var out bytes.Buffer
	require.NoError(t, dumpMetrics(reg, &out))

	assert.Contains(t, out.String(), "storefront_test_total 2")
	assert.False(t, strings.Contains(out.String(), "other_total"))
}

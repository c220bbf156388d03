// Command storefront runs a scripted session against the in-memory store:
// it registers users, stocks the catalog, places a few orders and prints the
// resulting state.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/shopspring/decimal"

	"github.com/storefront/store-service/internal/core/domain"
	"github.com/storefront/store-service/internal/core/ports"
	"github.com/storefront/store-service/internal/core/service"
	"github.com/storefront/store-service/internal/infrastructure/idgen"
	"github.com/storefront/store-service/internal/pkg/config"
	"github.com/storefront/store-service/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty && !cfg.IsProduction(),
		Service: "storefront",
	})

	ids, err := idgen.New(cfg.IDs.Strategy, cfg.IDs.Prefix)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid id strategy")
	}

	store := service.NewStoreService(ids, nil, logger.Component("store"))
	if err := run(store, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("demo failed")
	}

	if cfg.MetricsDump {
		if err := dumpMetrics(prometheus.DefaultGatherer, os.Stdout); err != nil {
			log.Error().Err(err).Msg("failed to dump metrics")
		}
	}
}

var separator = strings.Repeat("-", 60)

func run(store ports.StoreService, out io.Writer) error {
	c1, err := store.RegisterUser(ports.RegisterUserInput{Kind: "customer", Name: "Fernando Peman", Email: "fernando@example.com", PostalAddress: "Av Pablo Picasso 123"})
	if err != nil {
		return err
	}
	c2, err := store.RegisterUser(ports.RegisterUserInput{Kind: "customer", Name: "Mario Tuset", Email: "mario@example.com", PostalAddress: "Plaza Casares Quiroga 7"})
	if err != nil {
		return err
	}
	c3, err := store.RegisterUser(ports.RegisterUserInput{Kind: "customer", Name: "Nicolas Cerqueiro", Email: "nicolas@example.com", PostalAddress: "Av Caballero 5"})
	if err != nil {
		return err
	}
	admin, err := store.RegisterUser(ports.RegisterUserInput{Kind: "administrator", Name: "Diego Pinera", Email: "admin@example.com"})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Registered users:")
	for _, u := range []*domain.User{c1, c2, c3, admin} {
		fmt.Fprintln(out, u)
	}
	fmt.Fprintln(out, separator)

	catalog := []*domain.Product{
		domain.NewElectronics("", "Laptop", decimal.RequireFromString("399.99"), 10, 24),
		domain.NewElectronics("", "Headphones", decimal.RequireFromString("59.90"), 25, 12),
		domain.NewApparel("", "T-shirt", decimal.RequireFromString("12.50"), 50, "M", "Grey"),
		domain.NewApparel("", "Jacket", decimal.RequireFromString("89.99"), 5, "L", "Black"),
		domain.NewProduct("", "Book: A History of Metal", decimal.RequireFromString("29.95"), 20),
	}
	products := make([]*domain.Product, 0, len(catalog))
	for _, p := range catalog {
		stored, err := store.AddProduct(p)
		if err != nil {
			return err
		}
		products = append(products, stored)
	}

	fmt.Fprintln(out, "Initial inventory:")
	for _, p := range store.ListProducts() {
		fmt.Fprintln(out, p)
	}
	fmt.Fprintln(out, separator)

	requests := []struct {
		customer *domain.User
		items    []ports.OrderItemInput
	}{
		{c1, []ports.OrderItemInput{{ProductID: products[0].ID, Quantity: 1}, {ProductID: products[1].ID, Quantity: 2}}},
		{c2, []ports.OrderItemInput{{ProductID: products[2].ID, Quantity: 3}, {ProductID: products[4].ID, Quantity: 1}}},
		{c3, []ports.OrderItemInput{{ProductID: products[3].ID, Quantity: 1}}},
	}
	for i, r := range requests {
		order, err := store.PlaceOrder(r.customer.ID, r.items)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Order %d placed:\n%s\n%s\n", i+1, order, separator)
	}

	fmt.Fprintf(out, "Order history of %s:\n", c1.Name)
	history, err := store.ListOrdersForUser(c1.ID)
	if err != nil {
		return err
	}
	for _, o := range history {
		fmt.Fprintf(out, "%s\n---\n", o)
	}
	fmt.Fprintln(out, separator)

	fmt.Fprintln(out, "Stock after orders:")
	for _, p := range store.ListProducts() {
		fmt.Fprintln(out, p)
	}
	fmt.Fprintln(out, separator)

	return nil
}

// dumpMetrics writes every gathered metric family in the Prometheus text format.
func dumpMetrics(g prometheus.Gatherer, out io.Writer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "storefront_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return err
		}
	}
	return nil
}

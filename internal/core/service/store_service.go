package service

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/storefront/store-service/internal/core/domain"
	"github.com/storefront/store-service/internal/core/ports"
	"github.com/storefront/store-service/internal/metrics"
)

// StoreService owns the users, the product catalog and the order history.
// A single mutex guards all three collections for the whole of each call, so
// the check-then-decrement sequence of PlaceOrder cannot interleave with
// another order.
type StoreService struct {
	mu sync.Mutex

	products     map[string]*domain.Product
	productOrder []string
	users        map[string]*domain.User
	orders       []*domain.Order

	ids       ports.IDGenerator
	clock     ports.Clock
	validator *productValidator
	logger    zerolog.Logger
}

var _ ports.StoreService = (*StoreService)(nil)

// NewStoreService returns an empty store. A nil ids falls back to random
// UUIDs and a nil clock to the system clock.
func NewStoreService(ids ports.IDGenerator, clock ports.Clock, logger zerolog.Logger) *StoreService {
	if ids == nil {
		ids = ports.IDGeneratorFunc(uuid.NewString)
	}
	if clock == nil {
		clock = ports.SystemClock
	}
	return &StoreService{
		products:  make(map[string]*domain.Product),
		users:     make(map[string]*domain.User),
		ids:       ids,
		clock:     clock,
		validator: newProductValidator(),
		logger:    logger,
	}
}

// RegisterUser creates a customer or an administrator.
func (s *StoreService) RegisterUser(input ports.RegisterUserInput) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user *domain.User
	switch strings.ToLower(strings.TrimSpace(input.Kind)) {
	case "customer":
		user = domain.NewCustomer(s.ids.NewID(), input.Name, input.Email, input.PostalAddress)
	case "administrator", "admin":
		user = domain.NewAdministrator(s.ids.NewID(), input.Name, input.Email)
	default:
		s.logger.Warn().Str("kind", input.Kind).Msg("unknown user kind")
		return nil, fmt.Errorf("register user %q: %w", input.Kind, domain.ErrUnknownUserKind)
	}

	s.users[user.ID] = user
	metrics.UsersRegisteredTotal.WithLabelValues(string(user.Role())).Inc()
	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role())).Msg("user registered")

	return user.Clone(), nil
}

func (s *StoreService) GetUser(id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		s.logger.Warn().Str("user_id", id).Msg("user not found")
		return nil, fmt.Errorf("get user %s: %w", id, domain.ErrUserNotFound)
	}
	return user.Clone(), nil
}

// AddProduct validates product and stores a copy of it, replacing any product
// with the same id. A product without an id is assigned one.
func (s *StoreService) AddProduct(product *domain.Product) (*domain.Product, error) {
	if err := s.validator.Validate(product); err != nil {
		s.logger.Warn().Err(err).Msg("product rejected")
		return nil, fmt.Errorf("add product: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := product.Clone()
	if stored.ID == "" {
		stored.ID = s.ids.NewID()
	}
	if stored.Category == "" {
		stored.Category = domain.CategoryGeneral
	}

	if _, exists := s.products[stored.ID]; !exists {
		s.productOrder = append(s.productOrder, stored.ID)
	}
	s.products[stored.ID] = stored
	metrics.CatalogProducts.Set(float64(len(s.products)))

	s.logger.Info().
		Str("product_id", stored.ID).
		Str("category", string(stored.Category)).
		Int("stock", stored.Stock()).
		Msg("product added")

	return stored.Clone(), nil
}

func (s *StoreService) RemoveProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		s.logger.Warn().Str("product_id", id).Msg("product not found")
		return fmt.Errorf("remove product %s: %w", id, domain.ErrProductNotFound)
	}

	delete(s.products, id)
	s.productOrder = slices.DeleteFunc(s.productOrder, func(pid string) bool { return pid == id })
	metrics.CatalogProducts.Set(float64(len(s.products)))

	s.logger.Info().Str("product_id", id).Msg("product removed")
	return nil
}

// ListProducts returns every product in the order it was first added.
func (s *StoreService) ListProducts() []*domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		out = append(out, s.products[id].Clone())
	}
	return out
}

func (s *StoreService) GetProduct(id string) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		s.logger.Warn().Str("product_id", id).Msg("product not found")
		return nil, fmt.Errorf("get product %s: %w", id, domain.ErrProductNotFound)
	}
	return product.Clone(), nil
}

// reservation is an item that passed validation and awaits its stock update.
type reservation struct {
	product  *domain.Product
	quantity int
}

// PlaceOrder places an order for a customer. Either every item is taken from
// stock and the order is recorded, or nothing changes.
func (s *StoreService) PlaceOrder(customerID string, items []ports.OrderItemInput) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.placeOrder(customerID, items)
	if err != nil {
		reason := domain.ErrorReason(err)
		metrics.OrdersRejectedTotal.WithLabelValues(reason).Inc()
		s.logger.Warn().Err(err).Str("customer_id", customerID).Str("reason", reason).Msg("order rejected")
		return nil, fmt.Errorf("place order: %w", err)
	}

	total := order.Total()
	metrics.OrdersPlacedTotal.Inc()
	metrics.OrderValue.Observe(total.InexactFloat64())
	s.logger.Info().
		Str("order_id", order.ID).
		Str("customer_id", customerID).
		Int("lines", len(order.Lines)).
		Str("total", total.StringFixed(2)).
		Msg("order placed")

	return order.Clone(), nil
}

// placeOrder runs with s.mu held.
func (s *StoreService) placeOrder(customerID string, items []ports.OrderItemInput) (*domain.Order, error) {
	user, ok := s.users[customerID]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", customerID, domain.ErrUserNotFound)
	}
	if !user.IsCustomer() {
		return nil, fmt.Errorf("user %s: %w", customerID, domain.ErrCustomersOnly)
	}

	// 1. Validate every item before mutating anything.
	reserved := make([]reservation, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("product %s: %w", item.ProductID, domain.ErrInvalidQuantity)
		}
		if _, dup := seen[item.ProductID]; dup {
			return nil, fmt.Errorf("product %s: %w", item.ProductID, domain.ErrDuplicateItem)
		}
		seen[item.ProductID] = struct{}{}

		product, ok := s.products[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("product %s: %w", item.ProductID, domain.ErrProductNotFound)
		}
		if !product.HasStock(item.Quantity) {
			return nil, fmt.Errorf("%w for product '%s' (id=%s): requested %d, available %d",
				domain.ErrInsufficientStock, product.Name, product.ID, item.Quantity, product.Stock())
		}
		reserved = append(reserved, reservation{product: product, quantity: item.Quantity})
	}

	// 2. Take stock.
	if err := takeStock(reserved); err != nil {
		return nil, err
	}

	// 3. Record the order.
	order := &domain.Order{
		ID:         s.ids.NewID(),
		CustomerID: customerID,
		Lines:      make([]domain.OrderLine, 0, len(reserved)),
		CreatedAt:  s.clock.Now(),
	}
	for _, r := range reserved {
		order.Lines = append(order.Lines, domain.OrderLine{
			ProductID:   r.product.ID,
			ProductName: r.product.Name,
			UnitPrice:   r.product.UnitPrice,
			Quantity:    r.quantity,
		})
		metrics.StockUnitsSoldTotal.WithLabelValues(string(r.product.Category)).Add(float64(r.quantity))
	}
	s.orders = append(s.orders, order)

	return order, nil
}

// takeStock decrements every reservation in order. AdjustStock re-checks the
// stock invariant; if it fails, the decrements already applied are restored.
func takeStock(reserved []reservation) error {
	for i, r := range reserved {
		if err := r.product.AdjustStock(-r.quantity); err != nil {
			for _, applied := range reserved[:i] {
				// Restocking adds a positive delta and cannot fail.
				_ = applied.product.AdjustStock(applied.quantity)
			}
			return err
		}
	}
	return nil
}

// ListOrdersForUser returns the orders placed by userID, oldest first. Orders
// with equal timestamps keep the order in which they were placed.
func (s *StoreService) ListOrdersForUser(userID string) ([]*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		s.logger.Warn().Str("user_id", userID).Msg("user not found")
		return nil, fmt.Errorf("list orders for %s: %w", userID, domain.ErrUserNotFound)
	}

	out := make([]*domain.Order, 0)
	for _, o := range s.orders {
		if o.CustomerID == userID {
			out = append(out, o.Clone())
		}
	}
	slices.SortStableFunc(out, func(a, b *domain.Order) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out, nil
}

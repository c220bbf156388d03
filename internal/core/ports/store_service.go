package ports

import "github.com/storefront/store-service/internal/core/domain"

// RegisterUserInput carries the data needed to register a user.
type RegisterUserInput struct {
	// Kind selects the variant: "customer", "administrator" or "admin".
	// Matching is case-insensitive and ignores surrounding spaces.
	Kind  string
	Name  string
	Email string
	// PostalAddress is only used for customers.
	PostalAddress string
}

// OrderItemInput requests Quantity units of a product.
type OrderItemInput struct {
	ProductID string
	Quantity  int
}

// StoreService is the single owner of users, products and orders.
type StoreService interface {
	RegisterUser(input RegisterUserInput) (*domain.User, error)
	GetUser(id string) (*domain.User, error)

	AddProduct(product *domain.Product) (*domain.Product, error)
	RemoveProduct(id string) error
	ListProducts() []*domain.Product
	GetProduct(id string) (*domain.Product, error)

	// PlaceOrder validates every item before touching any stock. Items are
	// checked in the order given.
	PlaceOrder(customerID string, items []OrderItemInput) (*domain.Order, error)
	// ListOrdersForUser returns the user's orders oldest first.
	ListOrdersForUser(userID string) ([]*domain.Order, error)
}

package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ProductCategory is the variant tag of a Product.
type ProductCategory string

const (
	CategoryGeneral     ProductCategory = "general"
	CategoryElectronics ProductCategory = "electronics"
	CategoryApparel     ProductCategory = "apparel"
)

// ElectronicsDetails is the payload of the electronics variant.
type ElectronicsDetails struct {
	WarrantyMonths int `json:"warranty_months"`
}

// ApparelDetails is the payload of the apparel variant. Both fields may be blank.
type ApparelDetails struct {
	Size  string `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

// Product is a catalog entry. Stock is only changed through AdjustStock so it
// can never go negative.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Category  ProductCategory `json:"category"`

	Electronics *ElectronicsDetails `json:"electronics,omitempty"`
	Apparel     *ApparelDetails     `json:"apparel,omitempty"`

	stock int
}

// NewProduct builds a general product. An empty id is filled in by the store.
func NewProduct(id, name string, unitPrice decimal.Decimal, stock int) *Product {
	return &Product{
		ID:        id,
		Name:      name,
		UnitPrice: unitPrice,
		Category:  CategoryGeneral,
		stock:     stock,
	}
}

func NewElectronics(id, name string, unitPrice decimal.Decimal, stock, warrantyMonths int) *Product {
	p := NewProduct(id, name, unitPrice, stock)
	p.Category = CategoryElectronics
	p.Electronics = &ElectronicsDetails{WarrantyMonths: warrantyMonths}
	return p
}

func NewApparel(id, name string, unitPrice decimal.Decimal, stock int, size, color string) *Product {
	p := NewProduct(id, name, unitPrice, stock)
	p.Category = CategoryApparel
	p.Apparel = &ApparelDetails{Size: size, Color: color}
	return p
}

// Stock returns the units currently available.
func (p *Product) Stock() int { return p.stock }

// HasStock reports whether quantity units can be taken from stock.
func (p *Product) HasStock(quantity int) bool {
	return quantity <= p.stock
}

// AdjustStock applies delta to the stock: positive restocks, negative consumes.
// It fails with ErrInvalidState and leaves stock untouched if the result
// would be negative.
func (p *Product) AdjustStock(delta int) error {
	next := p.stock + delta
	if next < 0 {
		return fmt.Errorf("%w: insufficient stock for %s (id=%s)", ErrInvalidState, p.Name, p.ID)
	}
	p.stock = next
	return nil
}

// Clone returns a deep copy of p.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	c := *p
	if p.Electronics != nil {
		e := *p.Electronics
		c.Electronics = &e
	}
	if p.Apparel != nil {
		a := *p.Apparel
		c.Apparel = &a
	}
	return &c
}

func (p *Product) String() string {
	base := fmt.Sprintf("[%s] %s - Price: %s - Stock: %d", p.ID, p.Name, p.UnitPrice.StringFixed(2), p.stock)

	switch p.Category {
	case CategoryElectronics:
		months := 0
		if p.Electronics != nil {
			months = p.Electronics.WarrantyMonths
		}
		return fmt.Sprintf("%s - Warranty: %d months", base, months)
	case CategoryApparel:
		if p.Apparel == nil {
			return base
		}
		parts := []string{base}
		if p.Apparel.Size != "" {
			parts = append(parts, "Size: "+p.Apparel.Size)
		}
		if p.Apparel.Color != "" {
			parts = append(parts, "Color: "+p.Apparel.Color)
		}
		return strings.Join(parts, " - ")
	default:
		return base
	}
}

package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine is a single product and quantity on an order. Name and unit price
// are captured when the order is placed, so later catalog changes do not
// alter the order's total.
type OrderLine struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

// Subtotal returns unit price × quantity.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is an immutable record of a placed order.
type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	Lines      []OrderLine `json:"lines"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Total returns the sum of all line subtotals.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Clone returns a deep copy of o.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	c.Lines = append([]OrderLine(nil), o.Lines...)
	return &c
}

func (o *Order) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order [%s] - Date: %s\n", o.ID, o.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Customer id: %s\n", o.CustomerID)
	b.WriteString("Items:\n")
	for _, l := range o.Lines {
		fmt.Fprintf(&b, "  - %s (id=%s) x %d -> %s/unit\n", l.ProductName, l.ProductID, l.Quantity, l.UnitPrice.StringFixed(2))
	}
	fmt.Fprintf(&b, "Total: %s", o.Total().StringFixed(2))
	return b.String()
}

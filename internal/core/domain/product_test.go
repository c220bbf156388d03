package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_HasStock(t *testing.T) {
	p := NewProduct("p", "Book", decimal.NewFromInt(10), 5)

	for q := 0; q <= 8; q++ {
		assert.Equal(t, q <= 5, p.HasStock(q), "quantity %d", q)
	}
	assert.Equal(t, 5, p.Stock(), "HasStock must not mutate")
}

func TestProduct_AdjustStock(t *testing.T) {
	p := NewProduct("p", "Book", decimal.NewFromInt(10), 5)

	require.NoError(t, p.AdjustStock(3))
	assert.Equal(t, 8, p.Stock())

	require.NoError(t, p.AdjustStock(-8))
	assert.Equal(t, 0, p.Stock())

	err := p.AdjustStock(-1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidState))
	assert.Contains(t, err.Error(), "insufficient stock")
	assert.Equal(t, 0, p.Stock(), "failed adjustment must not change stock")
}

func TestProduct_Clone_IsDeep(t *testing.T) {
	orig := NewApparel("a", "Shirt", decimal.NewFromFloat(12.5), 50, "M", "Grey")
	c := orig.Clone()

	c.Apparel.Color = "Black"
	require.NoError(t, c.AdjustStock(-10))

	assert.Equal(t, "Grey", orig.Apparel.Color)
	assert.Equal(t, 50, orig.Stock())
	assert.Nil(t, (*Product)(nil).Clone())
}

func TestProduct_String(t *testing.T) {
	cases := []struct {
		name    string
		product *Product
		want    string
	}{
		{
			name:    "general",
			product: NewProduct("p5", "Metal history book", decimal.NewFromFloat(29.95), 20),
			want:    "[p5] Metal history book - Price: 29.95 - Stock: 20",
		},
		{
			name:    "electronics",
			product: NewElectronics("p1", "Laptop", decimal.NewFromFloat(399.99), 10, 24),
			want:    "[p1] Laptop - Price: 399.99 - Stock: 10 - Warranty: 24 months",
		},
		{
			name:    "apparel with size and color",
			product: NewApparel("p3", "T-shirt", decimal.NewFromFloat(12.5), 50, "M", "Grey"),
			want:    "[p3] T-shirt - Price: 12.50 - Stock: 50 - Size: M - Color: Grey",
		},
		{
			name:    "apparel with color only",
			product: NewApparel("p4", "Jacket", decimal.NewFromInt(90), 5, "", "Black"),
			want:    "[p4] Jacket - Price: 90.00 - Stock: 5 - Color: Black",
		},
		{
			name:    "apparel blank",
			product: NewApparel("p6", "Scarf", decimal.NewFromInt(5), 1, "", ""),
			want:    "[p6] Scarf - Price: 5.00 - Stock: 1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.product.String())
		})
	}
}

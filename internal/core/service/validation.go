package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/storefront/store-service/internal/core/domain"
)

// productRules is the validated view of a product.
type productRules struct {
	UnitPrice      decimal.Decimal        `validate:"decimal_gte0"`
	Stock          int                    `validate:"gte=0"`
	WarrantyMonths int                    `validate:"gte=0"`
	Category       domain.ProductCategory `validate:"omitempty,oneof=general electronics apparel"`

	HasElectronics bool
	HasApparel     bool
}

type productValidator struct {
	v *validator.Validate
}

func newProductValidator() *productValidator {
	v := validator.New()
	// Decimals are compared exactly; a float conversion would round tiny
	// negatives to zero.
	_ = v.RegisterValidation("decimal_gte0", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && !d.IsNegative()
	})
	v.RegisterStructValidation(productVariant, productRules{})
	return &productValidator{v: v}
}

// productVariant requires the category tag and the details payload to agree.
// An empty category is stored as general.
func productVariant(sl validator.StructLevel) {
	r := sl.Current().Interface().(productRules)

	var ok bool
	switch r.Category {
	case "", domain.CategoryGeneral:
		ok = !r.HasElectronics && !r.HasApparel
	case domain.CategoryElectronics:
		ok = r.HasElectronics && !r.HasApparel
	case domain.CategoryApparel:
		ok = r.HasApparel && !r.HasElectronics
	default:
		// reported by oneof
		return
	}
	if !ok {
		sl.ReportError(r.Category, "Category", "Category", "variant", "")
	}
}

// Validate checks the catalog invariants of p and returns an error wrapping
// domain.ErrInvalidArgument on failure.
func (pv *productValidator) Validate(p *domain.Product) error {
	if p == nil {
		return fmt.Errorf("%w: product is required", domain.ErrInvalidArgument)
	}

	rules := productRules{
		UnitPrice:      p.UnitPrice,
		Stock:          p.Stock(),
		Category:       p.Category,
		HasElectronics: p.Electronics != nil,
		HasApparel:     p.Apparel != nil,
	}
	if p.Electronics != nil {
		rules.WarrantyMonths = p.Electronics.WarrantyMonths
	}

	if err := pv.v.Struct(rules); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

func fieldError(fe validator.FieldError) string {
	field := toSnake(fe.Field())
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("%s must not be less than %s", field, fe.Param())
	case "decimal_gte0":
		return fmt.Sprintf("%s must not be negative", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "variant":
		return fmt.Sprintf("%s %q does not match the product details", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

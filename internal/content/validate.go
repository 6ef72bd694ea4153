package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/hidaya/internal/domain"
)

// Validator checks loaded content before it is served.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with the content-specific rules registered.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterStructValidation(planStructLevel, Plan{})
	v.RegisterStructValidation(pricingStructLevel, Pricing{})
	return &Validator{validate: v}
}

// Validate returns an error wrapping domain.ErrInvalidContent that lists every
// failed rule.
func (v *Validator) Validate(site *Site) error {
	if site == nil {
		return fmt.Errorf("%w: no content", domain.ErrInvalidContent)
	}
	err := v.validate.Struct(site)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidContent, err)
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, describe(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidContent, strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Site.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s needs at least %s entries", field, fe.Param())
	case "startswith":
		return fmt.Sprintf("%s must start with %q", field, fe.Param())
	case "nonnegative":
		return field + " must not be negative"
	case "gtprice":
		return field + " must be greater than the plan price"
	case "single_highlight":
		return field + " may mark at most one plan as highlighted"
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

// planStructLevel enforces price rules that struct tags cannot express on
// decimal values.
func planStructLevel(sl validator.StructLevel) {
	plan := sl.Current().Interface().(Plan)

	if plan.Price.IsNegative() {
		sl.ReportError(plan.Price, "Price", "Price", "nonnegative", "")
	}
	if plan.Discount != nil && !plan.Discount.OriginalPrice.GreaterThan(plan.Price) {
		sl.ReportError(plan.Discount.OriginalPrice, "Discount.OriginalPrice", "OriginalPrice", "gtprice", "")
	}
}

// pricingStructLevel keeps the "Most Popular" badge unambiguous.
func pricingStructLevel(sl validator.StructLevel) {
	pricing := sl.Current().Interface().(Pricing)

	highlighted := 0
	for _, p := range pricing.Plans {
		if p.Highlighted {
			highlighted++
		}
	}
	if highlighted > 1 {
		sl.ReportError(pricing.Plans, "Plans", "Plans", "single_highlight", "")
	}
}

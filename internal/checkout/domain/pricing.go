package domain

import "github.com/shopspring/decimal"

type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Shipping int64 `json:"shipping"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// PricingPolicy is applied once at checkout; payment charges the resulting
// total as-is.
type PricingPolicy struct {
	// Orders with a subtotal strictly above the threshold ship free.
	FreeShippingThreshold int64
	ShippingFee           int64
	TaxRate               decimal.Decimal
}

// DefaultPricing ships free and charges no tax.
func DefaultPricing() PricingPolicy {
	return PricingPolicy{TaxRate: decimal.Zero}
}

func (p PricingPolicy) Apply(subtotal int64) Totals {
	var shipping int64
	if p.ShippingFee > 0 && subtotal <= p.FreeShippingThreshold {
		shipping = p.ShippingFee
	}
	tax := decimal.NewFromInt(subtotal).Mul(p.TaxRate).Round(0).IntPart()

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

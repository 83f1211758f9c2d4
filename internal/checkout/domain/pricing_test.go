package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDefaultPricingChargesSubtotal(t *testing.T) {
	got := DefaultPricing().Apply(1198)
	assert.Equal(t, Totals{Subtotal: 1198, Shipping: 0, Tax: 0, Total: 1198}, got)
}

func TestThresholdAndTaxPolicy(t *testing.T) {
	p := PricingPolicy{
		FreeShippingThreshold: 500,
		ShippingFee:           50,
		TaxRate:               decimal.RequireFromString("0.18"),
	}

	tests := []struct {
		subtotal int64
		want     Totals
	}{
		{299, Totals{Subtotal: 299, Shipping: 50, Tax: 54, Total: 403}},
		{500, Totals{Subtotal: 500, Shipping: 50, Tax: 90, Total: 640}},
		{1198, Totals{Subtotal: 1198, Shipping: 0, Tax: 216, Total: 1414}},
		{0, Totals{Subtotal: 0, Shipping: 50, Tax: 0, Total: 50}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.Apply(tt.subtotal), "subtotal %d", tt.subtotal)
	}
}

func TestTaxRoundsHalfUp(t *testing.T) {
	p := PricingPolicy{TaxRate: decimal.RequireFromString("0.5")}
	assert.Equal(t, int64(2), p.Apply(3).Tax)
	assert.Equal(t, int64(1), p.Apply(1).Tax)
}

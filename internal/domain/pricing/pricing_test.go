package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testPolicy = Policy{MSPMarkup: 0.20, ManualDiscountCap: 0.15}

func TestDeriveFromDiscountPercent(t *testing.T) {
	out := Derive(Inputs{MRP: 1000, DiscountPercent: 10}, FieldDiscountPercent, testPolicy)

	assert.InDelta(t, 100.0, out.DiscountRs, 0.01)
	assert.InDelta(t, 900.0, out.Price, 0.01)
	assert.InDelta(t, 1080.0, out.MSP, 0.01)
}

func TestDeriveFromDiscountRs(t *testing.T) {
	out := Derive(Inputs{MRP: 1000, DiscountRs: 250}, FieldDiscountRs, testPolicy)

	assert.InDelta(t, 25.0, out.DiscountPercent, 0.01)
	assert.InDelta(t, 750.0, out.Price, 0.01)
}

func TestDeriveFromPrice(t *testing.T) {
	out := Derive(Inputs{MRP: 1000, Price: 850}, FieldPrice, testPolicy)

	assert.InDelta(t, 150.0, out.DiscountRs, 0.01)
	assert.InDelta(t, 15.0, out.DiscountPercent, 0.01)
	assert.InDelta(t, 1020.0, out.MSP, 0.01)
}

func TestDeriveFromMRP(t *testing.T) {
	t.Run("recomputes discounts when a price is set", func(t *testing.T) {
		out := Derive(Inputs{MRP: 1200, Price: 900}, FieldMRP, testPolicy)

		assert.InDelta(t, 300.0, out.DiscountRs, 0.01)
		assert.InDelta(t, 25.0, out.DiscountPercent, 0.01)
	})

	t.Run("leaves discounts alone when no price is set", func(t *testing.T) {
		out := Derive(Inputs{MRP: 1200}, FieldMRP, testPolicy)

		assert.Zero(t, out.DiscountRs)
		assert.Zero(t, out.DiscountPercent)
	})
}

func TestDeriveRoundTrip(t *testing.T) {
	// Editing the percent and then re-deriving from the resulting rupee
	// discount must reproduce the same fields within a paisa.
	first := Derive(Inputs{MRP: 999, DiscountPercent: 12.5}, FieldDiscountPercent, testPolicy)
	second := Derive(Inputs{MRP: 999, DiscountRs: first.DiscountRs}, FieldDiscountRs, testPolicy)

	assert.InDelta(t, first.DiscountPercent, second.DiscountPercent, 0.01)
	assert.InDelta(t, first.Price, second.Price, 0.01)
	assert.InDelta(t, first.MSP, second.MSP, 0.01)
}

func TestDeriveZeroMRP(t *testing.T) {
	tests := []struct {
		name   string
		in     Inputs
		edited Field
	}{
		{"percent edit with zero MRP", Inputs{MRP: 0, DiscountPercent: 10}, FieldDiscountPercent},
		{"rupee edit with zero MRP", Inputs{MRP: 0, DiscountRs: 50}, FieldDiscountRs},
		{"rupee edit with negative MRP", Inputs{MRP: -10, DiscountRs: 50}, FieldDiscountRs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Derive(tt.in, tt.edited, testPolicy)
			assert.Zero(t, out.Price)
			assert.GreaterOrEqual(t, out.DiscountPercent, 0.0)
		})
	}
}

func TestDeriveOverdiscountClampsPrice(t *testing.T) {
	out := Derive(Inputs{MRP: 100, DiscountRs: 150}, FieldDiscountRs, testPolicy)

	assert.Zero(t, out.Price)
	assert.Zero(t, out.MSP)
}

func TestDerivePriceAboveMRP(t *testing.T) {
	// Selling above MRP is a negative discount, not an error.
	out := Derive(Inputs{MRP: 100, Price: 120}, FieldPrice, testPolicy)

	assert.InDelta(t, -20.0, out.DiscountRs, 0.01)
	assert.InDelta(t, -20.0, out.DiscountPercent, 0.01)
}

func TestMSPFollowsConfiguredMarkup(t *testing.T) {
	out := Derive(Inputs{MRP: 1000, Price: 500}, FieldPrice, Policy{MSPMarkup: 0.15})

	assert.InDelta(t, 575.0, out.MSP, 0.01)
}

func TestSellingPrice(t *testing.T) {
	tests := []struct {
		name          string
		mrp           float64
		defaultPct    float64
		manualRs      float64
		manualEnabled bool
		want          float64
	}{
		{"default discount only", 1000, 10, 0, false, 900},
		{"manual toggle off ignores manual amount", 1000, 10, 50, false, 900},
		{"manual toggle on stacks manual amount", 1000, 10, 50, true, 850},
		{"never below zero", 100, 0, 200, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SellingPrice(tt.mrp, tt.defaultPct, tt.manualRs, tt.manualEnabled)
			assert.InDelta(t, tt.want, got, 0.01)
		})
	}
}

func TestMaxManualDiscount(t *testing.T) {
	assert.InDelta(t, 150.0, testPolicy.MaxManualDiscount(1000), 0.001)
	assert.InDelta(t, 149.85, testPolicy.MaxManualDiscount(999), 0.001)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.56, Round2(10.556))
	assert.Equal(t, 10.55, Round2(10.554))
	assert.Equal(t, 0.0, Round2(0.004))
}

func TestFieldValid(t *testing.T) {
	assert.True(t, FieldMRP.Valid())
	assert.True(t, FieldPrice.Valid())
	assert.False(t, Field("gst").Valid())
	assert.False(t, Field("").Valid())
}

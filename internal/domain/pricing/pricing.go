package pricing

import (
	"math"
)

// Field identifies which entry-form field the user edited last. Derivation
// is driven by this explicit value, never inferred from focus state.
type Field string

const (
	FieldMRP             Field = "mrp"
	FieldDiscountPercent Field = "discount_percent"
	FieldDiscountRs      Field = "discount_rs"
	FieldPrice           Field = "price"
)

// Valid reports whether f names a known editable field.
func (f Field) Valid() bool {
	switch f {
	case FieldMRP, FieldDiscountPercent, FieldDiscountRs, FieldPrice:
		return true
	}
	return false
}

// Policy carries the configured business parameters of the derivation
// engine. The MSP markup differs between historical screen variants, so it
// is a configuration value rather than a constant.
type Policy struct {
	MSPMarkup         float64 // MSP = price * (1 + MSPMarkup)
	ManualDiscountCap float64 // max manual discount as a fraction of MRP
}

// Inputs is the transient set of editable pricing fields on an entry form.
// Exactly one field is the last-edited one at any recompute; the others are
// functions of it and the MRP.
type Inputs struct {
	MRP             float64 `json:"mrp"`
	DiscountPercent float64 `json:"discount_percent"`
	DiscountRs      float64 `json:"discount_rs"`
	Price           float64 `json:"price"`
	MSP             float64 `json:"msp"`
}

// Derive recomputes the fields dependent on the edited one. Percent-based
// derivation with a non-positive MRP yields zero derived fields rather than
// an error; a price that would go negative is clamped to zero. Values are
// kept at full precision; rounding happens at the display boundary.
func Derive(in Inputs, edited Field, p Policy) Inputs {
	out := in

	switch edited {
	case FieldDiscountPercent:
		out.DiscountRs = in.MRP * in.DiscountPercent / 100
		out.Price = clampZero(in.MRP - out.DiscountRs)

	case FieldDiscountRs:
		out.DiscountPercent = percentOf(in.DiscountRs, in.MRP)
		out.Price = clampZero(in.MRP - in.DiscountRs)

	case FieldPrice:
		out.DiscountRs = in.MRP - in.Price
		out.DiscountPercent = percentOf(out.DiscountRs, in.MRP)

	case FieldMRP:
		// Discount fields are only meaningful once a price is known.
		if in.Price > 0 {
			out.DiscountRs = in.MRP - in.Price
			out.DiscountPercent = percentOf(out.DiscountRs, in.MRP)
		}
	}

	out.MSP = out.Price * (1 + p.MSPMarkup)
	return out
}

// SellingPrice computes the bill-side price: the MRP less the product's
// default discount, less the manual discount when the manual toggle is on.
// The result never goes below zero.
func SellingPrice(mrp, defaultDiscountPercent, manualDiscountRs float64, manualEnabled bool) float64 {
	price := mrp * (1 - defaultDiscountPercent/100)
	if manualEnabled {
		price -= manualDiscountRs
	}
	return clampZero(price)
}

// MaxManualDiscount returns the per-unit manual discount ceiling for the
// given MRP under this policy.
func (p Policy) MaxManualDiscount(mrp float64) float64 {
	return Round2(mrp * p.ManualDiscountCap)
}

// Round2 rounds to two decimal places for display and serialization.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func percentOf(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

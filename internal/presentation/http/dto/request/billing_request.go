package request

// AddBillItemRequest is a candidate bill line. Qty and price validation is a
// domain rule, not a binding rule, so the reason-coded errors come back
// instead of a generic binding failure.
type AddBillItemRequest struct {
	BrandID    string `json:"brand_id"`
	CategoryID string `json:"category_id"`
	SectionID  string `json:"section_id"`
	SizeID     string `json:"size_id"`

	ProductID string  `json:"product_id"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`

	// ManualEnabled marks that Price carries a manual discount on top of
	// the product's default one.
	ManualEnabled bool `json:"manual_enabled"`

	Brand    string `json:"brand"`
	Category string `json:"category"`
	Section  string `json:"section"`
	Size     string `json:"size"`
}

// BillingHeaderRequest carries the billing screen's header fields
type BillingHeaderRequest struct {
	CustomerName   string `json:"customer_name" binding:"omitempty,max=255"`
	CustomerMobile string `json:"customer_mobile" binding:"omitempty,max=20"`
	PaymentMode    string `json:"payment_mode"`
}

// SellingPriceRequest feeds the live per-unit price recomputation
type SellingPriceRequest struct {
	MRP                    float64 `json:"mrp" binding:"min=0"`
	DefaultDiscountPercent float64 `json:"default_discount_percent"`
	ManualDiscountRs       float64 `json:"manual_discount_rs"`
	ManualEnabled          bool    `json:"manual_enabled"`
}

// ConfirmRequest resolves a pending submission confirmation
type ConfirmRequest struct {
	Confirm bool `json:"confirm"`
}

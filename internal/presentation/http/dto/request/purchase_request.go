package request

// RecalculateRequest is one edit event on the purchase entry form: the full
// set of pricing fields plus which one the user just changed.
type RecalculateRequest struct {
	EditedField     string  `json:"edited_field" binding:"required"`
	MRP             float64 `json:"mrp"`
	DiscountPercent float64 `json:"discount_percent"`
	DiscountRs      float64 `json:"discount_rs"`
	Price           float64 `json:"price"`
	MSP             float64 `json:"msp"`
}

// AddPurchaseItemRequest is a candidate purchase line
type AddPurchaseItemRequest struct {
	BrandID    string `json:"brand_id"`
	CategoryID string `json:"category_id"`
	SectionID  string `json:"section_id"`
	SizeID     string `json:"size_id"`

	BrandName    string `json:"brand_name"`
	CategoryName string `json:"category_name"`
	SectionName  string `json:"section_name"`
	SizeName     string `json:"size_name"`

	Qty             int     `json:"qty"`
	MRP             float64 `json:"mrp"`
	Price           float64 `json:"price"`
	DiscountPercent float64 `json:"discount_percent"`
	DiscountRs      float64 `json:"discount_rs"`
	GSTPercent      float64 `json:"gst_percent"`
	MSP             float64 `json:"msp"`
}

// PurchaseHeaderRequest carries the purchase screen's header fields
type PurchaseHeaderRequest struct {
	SupplierID  string `json:"supplier_id"`
	BillNumber  string `json:"bill_number"`
	BillDate    string `json:"bill_date"`
	PaymentMode string `json:"payment_mode"`
}

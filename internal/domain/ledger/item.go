package ledger

// BillItem is one line on a sales bill. A line is immutable once added;
// edits replace it wholesale. JSON tags mirror the items_json payload the
// submission collaborator expects.
type BillItem struct {
	ProductID string `json:"product_id"`

	// Display strings, denormalized from the catalog at add-time.
	Brand    string `json:"brand"`
	Category string `json:"category"`
	Section  string `json:"section"`
	Size     string `json:"size"`

	Qty             int     `json:"qty"`
	MRP             float64 `json:"mrp"`
	Price           float64 `json:"price"`
	DiscountPercent float64 `json:"discount"`
	GSTPercent      float64 `json:"gst_percent"`
	GSTAmount       float64 `json:"gst_amount"`
	LineTotal       float64 `json:"final"`
}

// Finalize computes the derived amounts from quantity, price and GST rate.
// Called before the line enters the ledger so stored and aggregated values
// agree.
func (it *BillItem) Finalize() {
	base := it.Price * float64(it.Qty)
	it.GSTAmount = base * it.GSTPercent / 100
	it.LineTotal = base + it.GSTAmount
}

// PurchaseItem is one line on a purchase intake bill. It carries the
// hierarchy foreign keys so a line can be loaded back into the entry form
// for editing and resubmitted.
type PurchaseItem struct {
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
	GSTAmount       float64 `json:"gst_amount"`
	LineTotal       float64 `json:"line_total"`
	MSP             float64 `json:"msp"`
}

// Finalize computes the derived amounts from quantity, price and GST rate.
func (it *PurchaseItem) Finalize() {
	base := it.Price * float64(it.Qty)
	it.GSTAmount = base * it.GSTPercent / 100
	it.LineTotal = base + it.GSTAmount
}

func (it *PurchaseItem) hierarchyComplete() bool {
	return it.BrandID != "" && it.CategoryID != "" && it.SectionID != "" && it.SizeID != ""
}

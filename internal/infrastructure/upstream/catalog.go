package upstream

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// Option is one entry of a cascading dropdown (category, section, size).
// Sizes come back with a "value" label instead of "name"; both map here.
type Option struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (o *Option) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Value string `json:"value"`
		Label string `json:"label"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	o.ID = raw.ID
	o.Name = raw.Name
	if o.Name == "" {
		o.Name = raw.Value
	}
	if o.Name == "" {
		o.Name = raw.Label
	}
	return nil
}

// ProductInfo is one catalog entry for a brand/category/section/size
// selection. A selection can map to several entries when the same article
// exists at multiple MRPs.
type ProductInfo struct {
	ProductID       int64   `json:"product_id"`
	MRP             float64 `json:"mrp"`
	DefaultDiscount float64 `json:"default_discount"`
	GSTPercent      float64 `json:"gst_percent"`
	StockQty        int     `json:"stock_qty"`
}

// ProductQuery selects catalog entries either by the full hierarchy or by
// size alone.
type ProductQuery struct {
	BrandID    string
	CategoryID string
	SectionID  string
	SizeID     string
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.BrandID != "" {
		v.Set("brand_id", q.BrandID)
	}
	if q.CategoryID != "" {
		v.Set("category_id", q.CategoryID)
	}
	if q.SectionID != "" {
		v.Set("section_id", q.SectionID)
	}
	if q.SizeID != "" {
		v.Set("size_id", q.SizeID)
	}
	return v
}

// Categories lists the categories under a brand.
func (c *Client) Categories(ctx context.Context, brandID string) ([]Option, error) {
	var out []Option
	v := url.Values{"brand_id": {brandID}}
	if err := c.getJSON(ctx, "/api/categories/", v, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Sections lists the sections under a category.
func (c *Client) Sections(ctx context.Context, categoryID string) ([]Option, error) {
	var out []Option
	v := url.Values{"category_id": {categoryID}}
	if err := c.getJSON(ctx, "/api/sections/", v, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Sizes lists the sizes under a section.
func (c *Client) Sizes(ctx context.Context, sectionID string) ([]Option, error) {
	var out []Option
	v := url.Values{"section_id": {sectionID}}
	if err := c.getJSON(ctx, "/api/sizes/", v, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ProductInfos returns the catalog entries matching the query, with the
// stock figure as of this call. Stock must be re-read here at add-time,
// never served from an earlier page-load snapshot.
func (c *Client) ProductInfos(ctx context.Context, q ProductQuery) ([]ProductInfo, error) {
	var out []ProductInfo
	if err := c.getJSON(ctx, "/api/product-info/", q.values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CheckBill asks whether a supplier already has a bill with this number.
func (c *Client) CheckBill(ctx context.Context, supplierID, billNumber string) (bool, error) {
	var out struct {
		Exists bool `json:"exists"`
	}
	v := url.Values{
		"supplier_id": {supplierID},
		"bill_number": {billNumber},
	}
	if err := c.getJSON(ctx, "/purchase/check-bill/", v, &out); err != nil {
		return false, err
	}
	return out.Exists, nil
}

// FindProduct picks the entry with the given product ID out of a catalog
// result set.
func FindProduct(infos []ProductInfo, productID string) (ProductInfo, bool) {
	id, err := strconv.ParseInt(productID, 10, 64)
	if err != nil {
		return ProductInfo{}, false
	}
	for _, p := range infos {
		if p.ProductID == id {
			return p, true
		}
	}
	return ProductInfo{}, false
}

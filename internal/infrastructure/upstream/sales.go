package upstream

import (
	"context"
	"net/url"
	"strconv"
)

// SubmitResult is the submission collaborator's answer to a posted bill.
// Billing answers {success, invoice_url}; purchase answers {redirect_url}.
type SubmitResult struct {
	Success     bool   `json:"success"`
	InvoiceURL  string `json:"invoice_url"`
	RedirectURL string `json:"redirect_url"`
	Error       string `json:"error"`
}

// Accepted reports whether the collaborator took the bill.
func (r SubmitResult) Accepted() bool {
	return r.Success || r.RedirectURL != ""
}

// SubmitBill posts the serialized bill ledger plus header fields to the
// billing form action.
func (c *Client) SubmitBill(ctx context.Context, itemsJSON string, header url.Values) (SubmitResult, error) {
	form := url.Values{}
	for k, vs := range header {
		form[k] = vs
	}
	form.Set("items_json", itemsJSON)

	var out SubmitResult
	if err := c.postForm(ctx, "/billing/", form, &out); err != nil {
		return SubmitResult{}, err
	}
	return out, nil
}

// SubmitPurchase posts the serialized purchase ledger plus header fields to
// the purchase form action.
func (c *Client) SubmitPurchase(ctx context.Context, itemsJSON string, header url.Values) (SubmitResult, error) {
	form := url.Values{}
	for k, vs := range header {
		form[k] = vs
	}
	form.Set("items_json", itemsJSON)

	var out SubmitResult
	if err := c.postForm(ctx, "/purchase/", form, &out); err != nil {
		return SubmitResult{}, err
	}
	return out, nil
}

// DashboardKPIs is the headline numbers block of the sales dashboard.
type DashboardKPIs struct {
	TodaySales float64 `json:"today_sales"`
	Last7Sales float64 `json:"last_7_sales"`
	TotalSales float64 `json:"total_sales"`
	TotalQty   int     `json:"total_qty"`
}

// PaymentSummary is one payment mode's share of the filtered range.
type PaymentSummary struct {
	Mode   string  `json:"mode"`
	Amount float64 `json:"amount"`
}

// BestSelling is the top article by quantity in the filtered range.
type BestSelling struct {
	Name   string  `json:"name"`
	Qty    int     `json:"qty"`
	Amount float64 `json:"amount"`
}

// SalesRow is one row of the dashboard sales table.
type SalesRow struct {
	BillNo   string  `json:"bill_no"`
	Date     string  `json:"date"`
	Article  string  `json:"article"`
	Category string  `json:"category"`
	Size     string  `json:"size"`
	Qty      int     `json:"qty"`
	Amount   float64 `json:"amount"`
	Payment  string  `json:"payment"`
}

// SalesTable is the paginated table block of the dashboard payload.
type SalesTable struct {
	Rows       []SalesRow `json:"rows"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalRows  int        `json:"total_rows"`
	TotalPages int        `json:"total_pages"`
}

// DashboardMeta echoes the resolved filter range.
type DashboardMeta struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// DashboardData is the full sales dashboard payload.
type DashboardData struct {
	KPIs        DashboardKPIs    `json:"kpis"`
	Payments    []PaymentSummary `json:"payments"`
	BestSelling *BestSelling     `json:"best_selling"`
	Table       SalesTable       `json:"table"`
	Meta        DashboardMeta    `json:"meta"`
}

// DashboardParams filter the sales dashboard. Dates use the collaborator's
// DD-MM-YYYY convention; empty dates default to today upstream.
type DashboardParams struct {
	StartDate string
	EndDate   string
	Search    string
	Page      int
	PageSize  int
}

func (p DashboardParams) values() url.Values {
	v := url.Values{}
	if p.StartDate != "" {
		v.Set("start_date", p.StartDate)
	}
	if p.EndDate != "" {
		v.Set("end_date", p.EndDate)
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(p.PageSize))
	}
	return v
}

// Dashboard fetches the sales dashboard payload for the given filters.
func (c *Client) Dashboard(ctx context.Context, p DashboardParams) (*DashboardData, error) {
	var out DashboardData
	if err := c.getJSON(ctx, "/api/sales/dashboard-data/", p.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExpensesChart is the labels/data pair the expense chart widget renders.
type ExpensesChart struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// ExpensesChartData fetches the expense chart payload.
func (c *Client) ExpensesChartData(ctx context.Context) (*ExpensesChart, error) {
	var out ExpensesChart
	if err := c.getJSON(ctx, "/api/expenses/chart/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExportURL builds the navigation-triggered sales export URL with the same
// filters as the dashboard. The browser follows it directly; there is no
// payload contract beyond the query params.
func (c *Client) ExportURL(startDate, endDate, search string) string {
	v := url.Values{}
	if startDate != "" {
		v.Set("start_date", startDate)
	}
	if endDate != "" {
		v.Set("end_date", endDate)
	}
	if search != "" {
		v.Set("search", search)
	}
	u := c.baseURL + "/sales/export/"
	if enc := v.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

package service

import (
	"context"

	"github.com/aoneretail/footwear-pos/internal/infrastructure/upstream"
	"github.com/aoneretail/footwear-pos/pkg/apperror"
	"github.com/aoneretail/footwear-pos/pkg/debounce"
	"github.com/aoneretail/footwear-pos/pkg/pagination"
)

// DashboardService serves the sales dashboard: filtered KPIs, payment split,
// best seller, the paginated sales table, the expense chart, and the export
// link. Free-text searches are debounced per client so a typing burst turns
// into one upstream request instead of one per keystroke.
type DashboardService struct {
	client   *upstream.Client
	debounce *debounce.Group
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(client *upstream.Client, deb *debounce.Group) *DashboardService {
	return &DashboardService{
		client:   client,
		debounce: deb,
	}
}

// DashboardQuery filters the dashboard. DebounceKey identifies the client's
// search box; when set along with Search, the request waits out the quiet
// interval and is dropped if a newer search arrives meanwhile.
type DashboardQuery struct {
	StartDate   string `form:"start_date" json:"start_date"`
	EndDate     string `form:"end_date" json:"end_date"`
	Search      string `form:"search" json:"search"`
	DebounceKey string `form:"debounce_key" json:"debounce_key"`

	pagination.PaginationParams
}

// DashboardView is the dashboard payload with the sales table reshaped into
// the standard paginated envelope.
type DashboardView struct {
	KPIs        upstream.DashboardKPIs                         `json:"kpis"`
	Payments    []upstream.PaymentSummary                      `json:"payments"`
	BestSelling *upstream.BestSelling                          `json:"best_selling"`
	Table       *pagination.PaginatedResult[upstream.SalesRow] `json:"table"`
	Meta        upstream.DashboardMeta                         `json:"meta"`
}

// Data fetches the dashboard payload for the given filters.
func (s *DashboardService) Data(ctx context.Context, q DashboardQuery) (*DashboardView, error) {
	q.Validate()

	if q.Search != "" && q.DebounceKey != "" {
		if !s.debounce.Wait(ctx, "dashboard:"+q.DebounceKey) {
			return nil, apperror.NewStaleDataError("dashboard search")
		}
	}

	data, err := s.client.Dashboard(ctx, upstream.DashboardParams{
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		Search:    q.Search,
		Page:      q.Page,
		PageSize:  q.PerPage,
	})
	if err != nil {
		return nil, err
	}

	// The collaborator is not trusted to echo a usable page size; a zero
	// would poison the page math in the envelope.
	pageSize := data.Table.PageSize
	if pageSize < 1 {
		pageSize = q.PerPage
	}
	table := pagination.NewPaginatedResult(
		data.Table.Rows,
		pagination.NewPagination(data.Table.Page, pageSize, int64(data.Table.TotalRows)),
	)
	return &DashboardView{
		KPIs:        data.KPIs,
		Payments:    data.Payments,
		BestSelling: data.BestSelling,
		Table:       table,
		Meta:        data.Meta,
	}, nil
}

// ExpensesChart fetches the expense chart payload.
func (s *DashboardService) ExpensesChart(ctx context.Context) (*upstream.ExpensesChart, error) {
	return s.client.ExpensesChartData(ctx)
}

// ExportURL builds the sales export link for the current filters. The client
// navigates to it directly.
func (s *DashboardService) ExportURL(startDate, endDate, search string) string {
	return s.client.ExportURL(startDate, endDate, search)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/aoneretail/footwear-pos/internal/application/service"
	"github.com/aoneretail/footwear-pos/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetData handles getting the filtered dashboard payload
func (h *DashboardHandler) GetData(c *gin.Context) {
	var query service.DashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	data, err := h.dashboardService.Data(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard data retrieved successfully", data)
}

// GetExpensesChart handles getting the expense chart payload
func (h *DashboardHandler) GetExpensesChart(c *gin.Context) {
	chart, err := h.dashboardService.ExpensesChart(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expenses chart retrieved successfully", chart)
}

// GetExportURL handles building the sales export link for the current filters
func (h *DashboardHandler) GetExportURL(c *gin.Context) {
	url := h.dashboardService.ExportURL(
		c.Query("start_date"), c.Query("end_date"), c.Query("search"))

	response.OK(c, "Export URL built successfully", gin.H{"url": url})
}

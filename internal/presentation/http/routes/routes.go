package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aoneretail/footwear-pos/internal/config"
	"github.com/aoneretail/footwear-pos/internal/presentation/http/handler"
	"github.com/aoneretail/footwear-pos/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Billing   *handler.BillingHandler
	Purchase  *handler.PurchaseHandler
	Catalog   *handler.CatalogHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg *config.Config
	Log *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerBillingRoutes(v1, h)
		registerPurchaseRoutes(v1, h)
		registerCatalogRoutes(v1, h)
		registerDashboardRoutes(v1, h)
	}

	return router
}

func registerBillingRoutes(v1 *gin.RouterGroup, h *Handlers) {
	billing := v1.Group("/billing")
	{
		billing.POST("/sessions", h.Billing.CreateSession)
		billing.POST("/selling-price", h.Billing.SellingPrice)
		billing.GET("/sessions/:id", h.Billing.State)
		billing.DELETE("/sessions/:id", h.Billing.CloseSession)
		billing.POST("/sessions/:id/items", h.Billing.AddItem)
		billing.PUT("/sessions/:id/items/:index", h.Billing.UpdateItem)
		billing.DELETE("/sessions/:id/items/:index", h.Billing.RemoveItem)
		billing.PUT("/sessions/:id/header", h.Billing.SetHeader)
		billing.POST("/sessions/:id/submit", h.Billing.Submit)
		billing.POST("/sessions/:id/confirm", h.Billing.Confirm)
	}
}

func registerPurchaseRoutes(v1 *gin.RouterGroup, h *Handlers) {
	purchase := v1.Group("/purchase")
	{
		purchase.POST("/sessions", h.Purchase.CreateSession)
		purchase.POST("/recalculate", h.Purchase.Recalculate)
		purchase.GET("/check-bill", h.Purchase.CheckBill)
		purchase.GET("/sessions/:id", h.Purchase.State)
		purchase.DELETE("/sessions/:id", h.Purchase.CloseSession)
		purchase.POST("/sessions/:id/items", h.Purchase.AddItem)
		purchase.GET("/sessions/:id/items/:index", h.Purchase.GetItem)
		purchase.PUT("/sessions/:id/items/:index", h.Purchase.UpdateItem)
		purchase.DELETE("/sessions/:id/items/:index", h.Purchase.RemoveItem)
		purchase.PUT("/sessions/:id/header", h.Purchase.SetHeader)
		purchase.POST("/sessions/:id/submit", h.Purchase.Submit)
		purchase.POST("/sessions/:id/confirm", h.Purchase.Confirm)
	}
}

func registerCatalogRoutes(v1 *gin.RouterGroup, h *Handlers) {
	catalog := v1.Group("/catalog")
	{
		catalog.GET("/categories", h.Catalog.Categories)
		catalog.GET("/sections", h.Catalog.Sections)
		catalog.GET("/sizes", h.Catalog.Sizes)
		catalog.GET("/products", h.Catalog.Products)
	}
}

func registerDashboardRoutes(v1 *gin.RouterGroup, h *Handlers) {
	dashboard := v1.Group("/dashboard")
	{
		dashboard.GET("/sales", h.Dashboard.GetData)
		dashboard.GET("/expenses-chart", h.Dashboard.GetExpensesChart)
		dashboard.GET("/export-url", h.Dashboard.GetExportURL)
	}
}

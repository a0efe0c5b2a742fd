package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aoneretail/footwear-pos/internal/application/service"
	"github.com/aoneretail/footwear-pos/internal/config"
	"github.com/aoneretail/footwear-pos/internal/domain/pricing"
	"github.com/aoneretail/footwear-pos/internal/infrastructure/session"
	"github.com/aoneretail/footwear-pos/internal/infrastructure/upstream"
	"github.com/aoneretail/footwear-pos/internal/presentation/http/handler"
	"github.com/aoneretail/footwear-pos/internal/presentation/http/routes"
	"github.com/aoneretail/footwear-pos/pkg/debounce"
	"github.com/aoneretail/footwear-pos/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.Must(cfg.App.Env)
	defer log.Sync()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Upstream catalog/sales backend client
	client := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, log)

	policy := pricing.Policy{
		MSPMarkup:         cfg.Pricing.MSPMarkup,
		ManualDiscountCap: cfg.Pricing.ManualDiscountCap,
	}

	// Per-screen session stores
	billingSessions := session.NewStore[service.BillingSession](
		cfg.Session.TTL, cfg.Session.CleanupInterval, log)
	purchaseSessions := session.NewStore[service.PurchaseSession](
		cfg.Session.TTL, cfg.Session.CleanupInterval, log)

	// Initialize services
	billingService := service.NewBillingService(billingSessions, client, policy, log)
	purchaseService := service.NewPurchaseService(purchaseSessions, client, policy, log)
	catalogService := service.NewCatalogService(client)
	dashboardService := service.NewDashboardService(client, debounce.NewGroup(cfg.Search.DebounceInterval))

	// Initialize handlers
	handlers := &routes.Handlers{
		Billing:   handler.NewBillingHandler(billingService),
		Purchase:  handler.NewPurchaseHandler(purchaseService),
		Catalog:   handler.NewCatalogHandler(catalogService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg: cfg,
		Log: log,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info("starting server",
		zap.String("service", cfg.App.Name),
		zap.String("port", port),
		zap.String("env", cfg.App.Env),
		zap.String("upstream", client.BaseURL()),
	)

	if err := router.Run(":" + port); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

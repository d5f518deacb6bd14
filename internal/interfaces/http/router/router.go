package router

import (
	"github.com/gin-gonic/gin"
	"github.com/invoicing/backend/internal/infrastructure/config"
	"github.com/invoicing/backend/internal/infrastructure/logger"
	"github.com/invoicing/backend/internal/interfaces/http/handler"
	"github.com/invoicing/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Handlers bundles everything the router mounts
type Handlers struct {
	Health    *handler.HealthHandler
	Documents *handler.DocumentHandler
	Inventory *handler.InventoryHandler
	Products  *handler.ProductHandler
	Clients   *handler.ClientHandler
	Expenses  *handler.ExpenseHandler
	Business  *handler.BusinessHandler
	Tax       *handler.TaxHandler
}

// New builds the gin engine with the full middleware chain and all API
// routes mounted under /api/v1
func New(cfg *config.Config, log *zap.Logger, h Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if log == nil {
		log = zap.NewNop()
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	middleware.SetupValidator()

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORSWithConfig(corsConfig),
		middleware.Secure(),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	engine.GET("/health", h.Health.Check)

	api := engine.Group("/api/v1")

	documents := api.Group("/documents")
	{
		documents.POST("", h.Documents.Create)
		documents.GET("", h.Documents.List)
		documents.GET("/next-number", h.Documents.NextNumber)
		documents.GET("/:id", h.Documents.Get)
		documents.PUT("/:id", h.Documents.Update)
		documents.DELETE("/:id", h.Documents.Delete)
		documents.POST("/:id/convert", h.Documents.Convert)
		documents.POST("/:id/email", h.Documents.Email)
	}

	inventory := api.Group("/inventory")
	{
		inventory.POST("/adjust", h.Inventory.Adjust)
		inventory.GET("/transactions", h.Inventory.ListTransactions)
	}

	products := api.Group("/products")
	{
		products.POST("", h.Products.Create)
		products.GET("", h.Products.List)
		products.GET("/low-stock", h.Products.ListLowStock)
		products.POST("/import", h.Products.Import)
		products.GET("/:id", h.Products.Get)
		products.PUT("/:id", h.Products.Update)
		products.DELETE("/:id", h.Products.Delete)
	}

	clients := api.Group("/clients")
	{
		clients.POST("", h.Clients.Create)
		clients.GET("", h.Clients.List)
		clients.POST("/import", h.Clients.Import)
		clients.GET("/:id", h.Clients.Get)
		clients.PUT("/:id", h.Clients.Update)
		clients.DELETE("/:id", h.Clients.Delete)
	}

	expenses := api.Group("/expenses")
	{
		expenses.POST("", h.Expenses.Create)
		expenses.GET("", h.Expenses.List)
		expenses.GET("/:id", h.Expenses.Get)
		expenses.PUT("/:id", h.Expenses.Update)
		expenses.DELETE("/:id", h.Expenses.Delete)
	}

	business := api.Group("/business")
	{
		business.GET("", h.Business.Get)
		business.PUT("", h.Business.Save)
		business.POST("/smtp/test", h.Business.TestSMTP)
	}

	api.GET("/tax/gstin/:gstin", h.Tax.ValidateGSTIN)

	return engine
}

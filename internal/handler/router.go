package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"order-fulfillment/internal/handler/api"
	"order-fulfillment/internal/handler/middleware"
	"order-fulfillment/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	orderHandler *api.OrderHandler,
	inventoryHandler *api.InventoryHandler,
	productHandler *api.ProductHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, orderHandler, inventoryHandler, productHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	orderHandler *api.OrderHandler,
	inventoryHandler *api.InventoryHandler,
	productHandler *api.ProductHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		orders := apiGroup.Group("/orders")
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: orderHandler.CreateOrder},
			})
		}

		inventory := apiGroup.Group("/inventory")
		{
			addRoutes(inventory, []route{
				{Method: http.MethodPost, Path: "/reserve", Handler: inventoryHandler.Reserve},
			})

			adminInventory := inventory.Group("")
			adminInventory.Use(authMiddleware.RequireAdmin())
			addRoutes(adminInventory, []route{
				{Method: http.MethodPut, Path: "/update", Handler: inventoryHandler.Update},
			})
		}

		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: productHandler.GetAll},
				{Method: http.MethodGet, Path: "/exists/:skuCode", Handler: productHandler.Exists},
				{Method: http.MethodGet, Path: "/:skuCode", Handler: productHandler.GetBySku},
			})

			adminProducts := products.Group("")
			adminProducts.Use(authMiddleware.RequireAdmin())
			addRoutes(adminProducts, []route{
				{Method: http.MethodPost, Path: "", Handler: productHandler.Create},
				{Method: http.MethodPut, Path: "/:skuCode", Handler: productHandler.Update},
				{Method: http.MethodDelete, Path: "/:skuCode", Handler: productHandler.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/server/http/handlers"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ShopFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	productHandler := handlers.NewProductHandler(facade)

	api := engine.Group("/api/v1")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	api.GET("/products", productHandler.List)
	api.GET("/products/categories", productHandler.Categories)
	api.GET("/product/:id", productHandler.Detail)

	user := api.Group("")
	user.Use(middleware.AuthRequired(facade))
	user.POST("/orders/new", orderHandler.Create)
	user.GET("/orders/:id", orderHandler.Detail)
	user.GET("/me/orders", orderHandler.MyOrders)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade), middleware.AdminRequired(facade))
	admin.GET("/orders", orderHandler.AllOrders)
	admin.PUT("/orders/:id", orderHandler.UpdateStatus)
	admin.DELETE("/orders/:id", orderHandler.Delete)
	admin.GET("/getSales", orderHandler.Sales)
	admin.GET("/products", productHandler.AdminList)
	admin.POST("/add_products", productHandler.Create)

	return engine
}

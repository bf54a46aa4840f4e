package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/avolkov/clientbase/internal/server/http/handlers"
	"github.com/avolkov/clientbase/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PortalFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(middleware.Authenticate(facade))

	authHandler := handlers.NewAuthHandler(facade)
	customerHandler := handlers.NewCustomerHandler(facade)

	api := engine.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/signup", authHandler.Signup)

	customers := api.Group("/customers")
	customers.Use(middleware.RequireAuth())
	customers.POST("/create", customerHandler.Create)
	customers.GET("/getAllCustomers", customerHandler.List)
	customers.PUT("/update/:id", customerHandler.Update)
	customers.GET("/search", customerHandler.Search)
	customers.GET("/getCustomer/:id", customerHandler.Get)
	customers.DELETE("/delete/:id", customerHandler.Delete)
	customers.GET("/sync", customerHandler.Sync)

	return engine
}

package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"harmony-store/internal/auth"
	"harmony-store/internal/cache"
	"harmony-store/internal/handlers"
	"harmony-store/internal/middleware"
	"harmony-store/internal/repository"
)

// Deps carries everything the HTTP layer needs. Stores are interfaces so
// the same wiring serves MongoDB, the in-memory fallback and tests.
type Deps struct {
	Accounts repository.AccountStore
	Catalog  repository.CatalogStore
	Orders   repository.OrderStore
	Issuer   *auth.Issuer
	Cache    *cache.Cache
}

func RegisterRoutes(router *gin.Engine, deps Deps) {
	authH := handlers.NewAuthHandler(deps.Accounts, deps.Issuer)
	productH := handlers.NewProductHandler(deps.Catalog, deps.Cache)
	orderH := handlers.NewOrderHandler(deps.Orders)

	api := router.Group("/api")
	{
		api.POST("/auth/register", authH.Register)
		api.POST("/auth/login", authH.Login)

		api.GET("/products", productH.List)
		api.GET("/products/:id", productH.Get)
		api.POST("/products", middleware.Authenticate(deps.Issuer), middleware.RequireAdmin(), productH.Create)
		api.DELETE("/products/:id", middleware.Authenticate(deps.Issuer), middleware.RequireAdmin(), productH.Delete)

		orders := api.Group("/orders", middleware.Authenticate(deps.Issuer))
		{
			orders.POST("", orderH.Create)
			orders.GET("", orderH.List)
		}

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "ok",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})
	}
}

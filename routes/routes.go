package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	orderControllers "github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/controllers/order"
	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/middleware"
	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/repository"
	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/services"
	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/store"
)

// Deps bundles everything the route groups need.
type Deps struct {
	Products      repository.ProductRepository
	Orders        repository.OrderRepository
	OrderSvc      *services.OrderService
	Carts         *store.CartStore
	Auth          *store.AuthStore
	Source        repository.Source
	SessionSecret string
}

// SetupRoutes is the single entry-point that wires up the shop, auth, and
// admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	orderControllers.RegisterValidations()

	r.Use(middleware.Session(deps.SessionSecret))

	// Callers can tell backend data from the in-memory stand-in.
	r.Use(func(c *gin.Context) {
		c.Header("X-Data-Source", string(deps.Source))
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "data_source": deps.Source})
	})

	// Public storefront routes
	SetupShopRoutes(r, deps)

	// Admin login/logout
	SetupAuthRoutes(r, deps)

	// Admin dashboard routes (admin-flag-protected)
	SetupAdminRoutes(r, deps)
}

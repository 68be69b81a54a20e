package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/controllers/order"
	productcontroller "github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/controllers/product"
	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the session
// admin flag.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin(deps.Auth))
	{
		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(deps.Orders))
			orderAdmin.GET("/ws", orderControllers.OrderFeedHandler)
			orderAdmin.PUT("/:id/status", orderControllers.UpdateOrderStatusHandler(deps.Orders))
			orderAdmin.DELETE("/:id", orderControllers.DeleteOrderHandler(deps.Orders))
		}

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(deps.Products))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(deps.Products))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(deps.Products))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(deps.Products))
		}
	}
}

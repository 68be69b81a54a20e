package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/controllers/cart"
	orderControllers "github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/controllers/order"
	productcontroller "github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/controllers/product"
)

// SetupShopRoutes registers the public storefront endpoints.
func SetupShopRoutes(r *gin.Engine, deps Deps) {
	// ──────────────── Catalog ────────────────
	r.GET("/products", productcontroller.GetProducts(deps.Products))
	r.GET("/products/:id", productcontroller.GetProductByID(deps.Products))

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartControllers.GetCart(deps.Carts))
		cartGroup.POST("/items", cartControllers.AddItem(deps.Carts, deps.Products))
		cartGroup.PUT("/items/:product_id", cartControllers.UpdateItemQuantity(deps.Carts))
		cartGroup.DELETE("/items/:product_id", cartControllers.RemoveItem(deps.Carts))
		cartGroup.DELETE("", cartControllers.ClearCart(deps.Carts))
	}

	// ──────────────── Checkout & Tracking ────────────────
	r.POST("/orders", orderControllers.CheckoutHandler(deps.OrderSvc, deps.Carts))
	r.GET("/orders/:id", orderControllers.GetOrderByIDHandler(deps.Orders))
}

package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/middleware"
	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/repository"
	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/store"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// GET /cart
func GetCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := middleware.SessionID(c)
		c.JSON(http.StatusOK, gin.H{
			"items":       carts.Items(sid),
			"total":       carts.Total(sid),
			"total_items": carts.TotalItems(sid),
		})
	}
}

// POST /cart/items
// Adding a product already in the cart merges quantities into one line.
func AddItem(carts *store.CartStore, products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := products.GetByID(c.Request.Context(), input.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		sid := middleware.SessionID(c)
		carts.AddItem(sid, *product, input.Quantity)
		c.JSON(http.StatusCreated, gin.H{
			"items":       carts.Items(sid),
			"total":       carts.Total(sid),
			"total_items": carts.TotalItems(sid),
		})
	}
}

// PUT /cart/items/:product_id
func UpdateItemQuantity(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("product_id")

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sid := middleware.SessionID(c)
		if !carts.UpdateItemQuantity(sid, productID, input.Quantity) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items":       carts.Items(sid),
			"total":       carts.Total(sid),
			"total_items": carts.TotalItems(sid),
		})
	}
}

// DELETE /cart/items/:product_id
func RemoveItem(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := middleware.SessionID(c)
		if !carts.RemoveItem(sid, c.Param("product_id")) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /cart
func ClearCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		carts.ClearCart(middleware.SessionID(c))
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/middleware"
	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/models"
	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/repository"
	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/services"
	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/store"
)

// -------- Request Structs --------

type CheckoutRequest struct {
	BuyerName string `json:"buyer_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,phone"`
	Address   string `json:"address" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

// Map string to OrderStatus. Any known status is accepted regardless of the
// order's current one; transitions are deliberately unconstrained.
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusInProgress):
		return models.OrderStatusInProgress, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// -------- Handlers --------

// POST /orders
// Checkout: assembles an order from the session cart, then clears the cart
// only once the order has been persisted.
func CheckoutHandler(svc *services.OrderService, carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sid := middleware.SessionID(c)
		order, err := svc.CreateOrder(c.Request.Context(), services.OrderForm{
			BuyerName: req.BuyerName,
			Email:     req.Email,
			Phone:     req.Phone,
			Address:   req.Address,
		}, carts.Items(sid))
		if err != nil {
			if errors.Is(err, services.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order, please try again"})
			return
		}

		carts.ClearCart(sid)
		broadcastOrderEvent("order_created", *order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders/:id
// Serves both the confirmation and the tracking pages: the order comes back
// with its items enriched with their products.
func GetOrderByIDHandler(orders repository.OrderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order ID is required"})
			return
		}

		order, err := orders.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(orders repository.OrderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// PUT /admin/orders/:id/status
func UpdateOrderStatusHandler(orders repository.OrderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := orders.UpdateStatus(c.Request.Context(), id, newStatus); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		if order, err := orders.GetByID(c.Request.Context(), id); err == nil {
			broadcastOrderEvent("status_updated", *order)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// DELETE /admin/orders/:id
func DeleteOrderHandler(orders repository.OrderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := orders.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}

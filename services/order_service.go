package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/models"
	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/repository"
)

var ErrEmptyCart = errors.New("cart is empty")

// OrderForm carries the buyer details collected at checkout. Field syntax is
// validated at the HTTP binding boundary before the service is invoked.
type OrderForm struct {
	BuyerName string
	Email     string
	Phone     string
	Address   string
}

// OrderService assembles orders from cart contents and persists them.
type OrderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// CreateOrder builds one pending order plus one item per cart line, all
// sharing a single creation timestamp, and persists them together. Each
// item captures the product's unit price as it stands right now; later
// price changes must not alter this order's totals. The caller owns
// clearing the cart, and only after this returns successfully.
func (s *OrderService) CreateOrder(ctx context.Context, form OrderForm, cartItems []models.CartItem) (*models.Order, error) {
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	now := time.Now()
	order := &models.Order{
		ID:        uuid.NewString(),
		BuyerName: form.BuyerName,
		Email:     form.Email,
		Phone:     form.Phone,
		Address:   form.Address,
		Status:    models.OrderStatusPending,
		CreatedAt: now,
	}

	for _, item := range cartItems {
		order.Items = append(order.Items, models.OrderItem{
			ID:        uuid.NewString(),
			OrderID:   order.ID,
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
			CreatedAt: now,
		})
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

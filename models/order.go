package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	// Order statuses (operator-driven; no automatic transitions)
	OrderStatusPending    OrderStatus = "pending"     // Order placed, awaiting handling
	OrderStatusInProgress OrderStatus = "in_progress" // Being prepared for delivery
	OrderStatusDelivered  OrderStatus = "delivered"   // Customer received the order
)

type Order struct {
	ID        string      `gorm:"primaryKey;type:uuid" json:"id"`
	BuyerName string      `gorm:"not null" json:"buyer_name"`
	Email     string      `gorm:"not null" json:"email"`
	Phone     string      `gorm:"not null" json:"phone"`
	Address   string      `gorm:"not null" json:"address"`
	Status    OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderItem captures the product's unit price at order time. Changing a
// product's price later must not alter historical order totals.
type OrderItem struct {
	ID        string          `gorm:"primaryKey;type:uuid" json:"id"`
	OrderID   string          `gorm:"index;type:uuid" json:"order_id"`
	ProductID string          `gorm:"type:uuid" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

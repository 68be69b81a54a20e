package repository

import (
	"context"

	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/models"
)

// Source identifies which implementation is serving catalog and order data.
type Source string

const (
	SourceBackend  Source = "backend"  // Postgres
	SourceFallback Source = "fallback" // in-memory stand-in
)

type ProductRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}

type OrderRepository interface {
	List(ctx context.Context) ([]models.Order, error)
	// GetByID returns the order with its items, each item enriched with its
	// referenced product where that product still exists.
	GetByID(ctx context.Context, id string) (*models.Order, error)
	// CreateOrder persists the order together with its items.
	CreateOrder(ctx context.Context, order *models.Order) error
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error
	Delete(ctx context.Context, id string) error
}

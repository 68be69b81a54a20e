package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/models"
)

// MemoryStore is the in-memory stand-in used when no database is reachable.
// It backs both repository interfaces from the same dataset so order items
// can be joined against the catalog without a second round trip.
type MemoryStore struct {
	mu       sync.RWMutex
	products []models.Product
	orders   []models.Order
}

func NewMemoryStore(products []models.Product, orders []models.Order) *MemoryStore {
	return &MemoryStore{products: products, orders: orders}
}

// Products returns a ProductRepository view of the store.
func (s *MemoryStore) Products() ProductRepository { return (*memoryProducts)(s) }

// Orders returns an OrderRepository view of the store.
func (s *MemoryStore) Orders() OrderRepository { return (*memoryOrders)(s) }

type memoryProducts MemoryStore

func (s *memoryProducts) List(ctx context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memoryProducts) GetByID(ctx context.Context, id string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

func (s *memoryProducts) Create(ctx context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, *product)
	return nil
}

func (s *memoryProducts) Update(ctx context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == product.ID {
			// created_at is immutable
			product.CreatedAt = s.products[i].CreatedAt
			s.products[i] = *product
			return nil
		}
	}
	return ErrProductNotFound
}

func (s *memoryProducts) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

type memoryOrders MemoryStore

func (s *memoryOrders) List(ctx context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memoryOrders) GetByID(ctx context.Context, id string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID != id {
			continue
		}
		order := o
		order.Items = make([]models.OrderItem, len(o.Items))
		copy(order.Items, o.Items)

		// In-memory join against the catalog
		for i := range order.Items {
			for _, p := range s.products {
				if p.ID == order.Items[i].ProductID {
					product := p
					order.Items[i].Product = &product
					break
				}
			}
		}
		return &order, nil
	}
	return nil, ErrOrderNotFound
}

func (s *memoryOrders) CreateOrder(ctx context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *order
	stored.Items = make([]models.OrderItem, len(order.Items))
	copy(stored.Items, order.Items)
	s.orders = append(s.orders, stored)
	return nil
}

func (s *memoryOrders) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return nil
		}
	}
	return ErrOrderNotFound
}

func (s *memoryOrders) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return nil
		}
	}
	return ErrOrderNotFound
}

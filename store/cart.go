package store

import (
	"log"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/models"
)

// CartStore keeps one ordered item collection per session.
type CartStore struct {
	mu       sync.Mutex
	carts    map[string][]models.CartItem
	snapshot *Snapshot
}

func NewCartStore(snapshot *Snapshot) (*CartStore, error) {
	s := &CartStore{
		carts:    make(map[string][]models.CartItem),
		snapshot: snapshot,
	}
	if err := snapshot.Load(&s.carts); err != nil {
		return nil, err
	}
	return s, nil
}

// AddItem merges quantity into an existing line for the same product, or
// appends a new line. No upper bound is enforced.
func (s *CartStore) AddItem(sessionID string, product models.Product, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].Product.ID == product.ID {
			items[i].Quantity += quantity
			s.persist()
			return
		}
	}
	s.carts[sessionID] = append(items, models.CartItem{Product: product, Quantity: quantity})
	s.persist()
}

// UpdateItemQuantity replaces the quantity of the matching line. It never
// removes the line; callers decide when a zero quantity means removal.
func (s *CartStore) UpdateItemQuantity(sessionID, productID string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].Product.ID == productID {
			items[i].Quantity = quantity
			s.persist()
			return true
		}
	}
	return false
}

func (s *CartStore) RemoveItem(sessionID, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].Product.ID == productID {
			s.carts[sessionID] = append(items[:i], items[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

func (s *CartStore) ClearCart(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	s.persist()
}

// Items returns a copy of the session's cart in insertion order.
func (s *CartStore) Items(sessionID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartItem, len(s.carts[sessionID]))
	copy(items, s.carts[sessionID])
	return items
}

// Total recomputes Σ(unit price × quantity) on every call.
func (s *CartStore) Total(sessionID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, item := range s.carts[sessionID] {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// TotalItems returns Σ quantity over the session's cart.
func (s *CartStore) TotalItems(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.carts[sessionID] {
		total += item.Quantity
	}
	return total
}

// persist is called with the lock held.
func (s *CartStore) persist() {
	if err := s.snapshot.Save(s.carts); err != nil {
		log.Printf("❌ Failed to persist carts: %v", err)
	}
}

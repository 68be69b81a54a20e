// Package mockdata holds the seed catalog and sample orders used by the
// in-memory repository when no database is reachable.
package mockdata

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/models"
)

// Products returns the seed produce catalog.
func Products() []models.Product {
	now := time.Now()
	return []models.Product{
		{
			ID:          uuid.NewString(),
			Name:        "Organic Apples",
			Price:       decimal.RequireFromString("2.99"),
			ImageURL:    "https://images.pexels.com/photos/1510392/pexels-photo-1510392.jpeg",
			Description: "Fresh, juicy organic apples. Perfect for healthy snacking or baking.",
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Fresh Tomatoes",
			Price:       decimal.RequireFromString("1.99"),
			ImageURL:    "https://images.pexels.com/photos/1327838/pexels-photo-1327838.jpeg",
			Description: "Vine-ripened tomatoes, bursting with flavor. Ideal for salads and sauces.",
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Organic Bananas",
			Price:       decimal.RequireFromString("0.89"),
			ImageURL:    "https://images.pexels.com/photos/47305/bananas-yellow-fruit-tropical-47305.jpeg",
			Description: "Perfectly ripened organic bananas. Rich in potassium and natural sweetness.",
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Fresh Spinach",
			Price:       decimal.RequireFromString("3.49"),
			ImageURL:    "https://images.pexels.com/photos/2325843/pexels-photo-2325843.jpeg",
			Description: "Tender, nutrient-packed spinach leaves. Perfect for salads and cooking.",
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Ripe Avocados",
			Price:       decimal.RequireFromString("2.49"),
			ImageURL:    "https://images.pexels.com/photos/557659/pexels-photo-557659.jpeg",
			Description: "Creamy, ripe avocados. Perfect for guacamole, salads, or as a healthy spread.",
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Sweet Carrots",
			Price:       decimal.RequireFromString("1.29"),
			ImageURL:    "https://images.pexels.com/photos/143133/pexels-photo-143133.jpeg",
			Description: "Crunchy, sweet carrots. Excellent for snacking, roasting, or juicing.",
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Fresh Strawberries",
			Price:       decimal.RequireFromString("4.99"),
			ImageURL:    "https://images.pexels.com/photos/46174/strawberries-berries-fruit-freshness-46174.jpeg",
			Description: "Sweet, juicy strawberries. Perfect for desserts or eating fresh.",
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Green Bell Peppers",
			Price:       decimal.RequireFromString("1.79"),
			ImageURL:    "https://images.pexels.com/photos/6316515/pexels-photo-6316515.jpeg",
			Description: "Crisp green bell peppers. Great for salads, stir-fries, or stuffing.",
			CreatedAt:   now,
		},
	}
}

// Orders returns sample orders with line items referencing the given catalog.
// Item prices are copied from the catalog at build time, the same way a real
// checkout captures them.
func Orders(products []models.Product) []models.Order {
	now := time.Now()

	orders := []models.Order{
		{
			ID:        uuid.NewString(),
			BuyerName: "John Smith",
			Email:     "john.smith@example.com",
			Phone:     "555-123-4567",
			Address:   "123 Main St, Anytown, USA",
			Status:    models.OrderStatusPending,
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID:        uuid.NewString(),
			BuyerName: "Jane Doe",
			Email:     "jane.doe@example.com",
			Phone:     "555-987-6543",
			Address:   "456 Oak Ave, Somewhere, USA",
			Status:    models.OrderStatusInProgress,
			CreatedAt: now.Add(-2 * 24 * time.Hour),
		},
		{
			ID:        uuid.NewString(),
			BuyerName: "Bob Johnson",
			Email:     "bob.johnson@example.com",
			Phone:     "555-456-7890",
			Address:   "789 Pine Rd, Nowhere, USA",
			Status:    models.OrderStatusDelivered,
			CreatedAt: now.Add(-5 * 24 * time.Hour),
		},
	}

	lines := []struct {
		order    int
		product  int
		quantity int
	}{
		{0, 0, 10},
		{0, 3, 5},
		{1, 1, 20},
		{1, 4, 8},
		{2, 2, 15},
		{2, 5, 12},
	}

	for _, l := range lines {
		o := &orders[l.order]
		p := products[l.product]
		o.Items = append(o.Items, models.OrderItem{
			ID:        uuid.NewString(),
			OrderID:   o.ID,
			ProductID: p.ID,
			Quantity:  l.quantity,
			Price:     p.Price,
			CreatedAt: o.CreatedAt,
		})
	}

	return orders
}

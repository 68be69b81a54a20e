package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/mockdata"
	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/models"
	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/repository"
	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/services"
	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/store"
)

type testClient struct {
	t       *testing.T
	engine  *gin.Engine
	cookies []*http.Cookie
}

func newTestClient(t *testing.T) *testClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	carts, err := store.NewCartStore(store.NewSnapshot(t.TempDir(), "carts"))
	require.NoError(t, err)
	auth, err := store.NewAuthStore(store.NewSnapshot(t.TempDir(), "auth"))
	require.NoError(t, err)

	products := mockdata.Products()
	mem := repository.NewMemoryStore(products, mockdata.Orders(products))

	r := gin.New()
	SetupRoutes(r, Deps{
		Products:      mem.Products(),
		Orders:        mem.Orders(),
		OrderSvc:      services.NewOrderService(mem.Orders()),
		Carts:         carts,
		Auth:          auth,
		Source:        repository.SourceFallback,
		SessionSecret: "test-secret",
	})
	return &testClient{t: t, engine: r}
}

func (c *testClient) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	c.engine.ServeHTTP(rec, req)
	if cookies := rec.Result().Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

type cartResponse struct {
	Items      []models.CartItem `json:"items"`
	Total      decimal.Decimal   `json:"total"`
	TotalItems int               `json:"total_items"`
}

func (c *testClient) login(password string) *httptest.ResponseRecorder {
	return c.do(http.MethodPost, "/auth/login", gin.H{"password": password})
}

func TestHealthReportsDataSource(t *testing.T) {
	c := newTestClient(t)

	rec := c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fallback", rec.Header().Get("X-Data-Source"))
}

func TestCatalogListing(t *testing.T) {
	c := newTestClient(t)

	rec := c.do(http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	decode(t, rec, &products)
	require.Len(t, products, 8)

	single := c.do(http.MethodGet, "/products/"+products[0].ID, nil)
	assert.Equal(t, http.StatusOK, single.Code)

	missing := c.do(http.MethodGet, "/products/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestCartFlow(t *testing.T) {
	c := newTestClient(t)

	var products []models.Product
	decode(t, c.do(http.MethodGet, "/products", nil), &products)

	rec := c.do(http.MethodPost, "/cart/items", gin.H{"product_id": products[0].ID, "quantity": 2})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = c.do(http.MethodPost, "/cart/items", gin.H{"product_id": products[1].ID, "quantity": 3})
	require.Equal(t, http.StatusCreated, rec.Code)

	var cart cartResponse
	decode(t, c.do(http.MethodGet, "/cart", nil), &cart)
	assert.Equal(t, 5, cart.TotalItems)
	assert.Len(t, cart.Items, 2)

	// Unknown product is rejected before it reaches the cart
	rec = c.do(http.MethodPost, "/cart/items", gin.H{"product_id": "no-such-id", "quantity": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Replace quantity, then remove
	rec = c.do(http.MethodPut, "/cart/items/"+products[0].ID, gin.H{"quantity": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, c.do(http.MethodGet, "/cart", nil), &cart)
	assert.Equal(t, 4, cart.TotalItems)

	rec = c.do(http.MethodDelete, "/cart/items/"+products[1].ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, c.do(http.MethodGet, "/cart", nil), &cart)
	assert.Equal(t, 1, cart.TotalItems)

	rec = c.do(http.MethodDelete, "/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, c.do(http.MethodGet, "/cart", nil), &cart)
	assert.Equal(t, 0, cart.TotalItems)
}

func TestCheckout(t *testing.T) {
	c := newTestClient(t)

	var products []models.Product
	decode(t, c.do(http.MethodGet, "/products", nil), &products)

	c.do(http.MethodPost, "/cart/items", gin.H{"product_id": products[0].ID, "quantity": 2})
	c.do(http.MethodPost, "/cart/items", gin.H{"product_id": products[1].ID, "quantity": 3})

	// Invalid email never reaches order assembly
	rec := c.do(http.MethodPost, "/orders", gin.H{
		"buyer_name": "John Smith",
		"email":      "not-an-email",
		"phone":      "555-123-4567",
		"address":    "123 Main St",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.do(http.MethodPost, "/orders", gin.H{
		"buyer_name": "John Smith",
		"email":      "john.smith@example.com",
		"phone":      "555-123-4567",
		"address":    "123 Main St, Anytown, USA",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var order models.Order
	decode(t, rec, &order)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 2)
	assert.True(t, order.Items[0].Price.Equal(products[0].Price))
	assert.True(t, order.Items[1].Price.Equal(products[1].Price))

	// Cart is cleared only after the order landed
	var cart cartResponse
	decode(t, c.do(http.MethodGet, "/cart", nil), &cart)
	assert.Equal(t, 0, cart.TotalItems)

	// The tracking view returns enriched items
	var fetched models.Order
	decode(t, c.do(http.MethodGet, "/orders/"+order.ID, nil), &fetched)
	require.Len(t, fetched.Items, 2)
	for _, item := range fetched.Items {
		require.NotNil(t, item.Product)
		assert.Equal(t, item.ProductID, item.Product.ID)
	}

	// Second checkout on the now-empty cart fails
	rec = c.do(http.MethodPost, "/orders", gin.H{
		"buyer_name": "John Smith",
		"email":      "john.smith@example.com",
		"phone":      "555-123-4567",
		"address":    "123 Main St",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminAccess(t *testing.T) {
	c := newTestClient(t)

	rec := c.do(http.MethodGet, "/admin/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.Equal(t, http.StatusUnauthorized, c.login("wrong").Code)
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/admin/orders", nil).Code)

	require.Equal(t, http.StatusOK, c.login("admin123").Code)

	rec = c.do(http.MethodGet, "/admin/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []models.Order
	decode(t, rec, &orders)
	assert.Len(t, orders, 3)

	// Logout drops the flag again
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/auth/logout", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/admin/orders", nil).Code)
}

func TestAdminOrderStatusUpdate(t *testing.T) {
	c := newTestClient(t)
	require.Equal(t, http.StatusOK, c.login("admin123").Code)

	var orders []models.Order
	decode(t, c.do(http.MethodGet, "/admin/orders", nil), &orders)
	require.NotEmpty(t, orders)

	// Any known status is allowed from any current status
	rec := c.do(http.MethodPut, "/admin/orders/"+orders[0].ID+"/status", gin.H{"status": "delivered"})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Order
	decode(t, c.do(http.MethodGet, "/orders/"+orders[0].ID, nil), &updated)
	assert.Equal(t, models.OrderStatusDelivered, updated.Status)
	assert.Equal(t, orders[0].BuyerName, updated.BuyerName)

	rec = c.do(http.MethodPut, "/admin/orders/"+orders[0].ID+"/status", gin.H{"status": "shipped"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.do(http.MethodPut, "/admin/orders/no-such-id/status", gin.H{"status": "pending"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminProductManagement(t *testing.T) {
	c := newTestClient(t)
	require.Equal(t, http.StatusOK, c.login("admin123").Code)

	rec := c.do(http.MethodPost, "/admin/products", gin.H{
		"name":      "Crisp Cucumbers",
		"price":     "1.49",
		"image_url": "https://images.pexels.com/photos/37528/cucumber.jpeg",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Product
	decode(t, rec, &created)
	assert.NotEmpty(t, created.ID)

	rec = c.do(http.MethodPut, "/admin/products/"+created.ID, gin.H{"price": "1.99"})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.Product
	decode(t, rec, &updated)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("1.99")))
	assert.Equal(t, "Crisp Cucumbers", updated.Name)

	rec = c.do(http.MethodDelete, "/admin/products/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/products/"+created.ID, nil).Code)
}

func TestProductDeletionKeepsOrderHistory(t *testing.T) {
	c := newTestClient(t)

	var products []models.Product
	decode(t, c.do(http.MethodGet, "/products", nil), &products)
	c.do(http.MethodPost, "/cart/items", gin.H{"product_id": products[0].ID, "quantity": 2})

	rec := c.do(http.MethodPost, "/orders", gin.H{
		"buyer_name": "Jane Doe",
		"email":      "jane.doe@example.com",
		"phone":      "555-987-6543",
		"address":    "456 Oak Ave",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var order models.Order
	decode(t, rec, &order)

	require.Equal(t, http.StatusOK, c.login("admin123").Code)
	require.Equal(t, http.StatusOK, c.do(http.MethodDelete, "/admin/products/"+products[0].ID, nil).Code)

	var fetched models.Order
	decode(t, c.do(http.MethodGet, "/orders/"+order.ID, nil), &fetched)
	require.Len(t, fetched.Items, 1)
	assert.True(t, fetched.Items[0].Price.Equal(products[0].Price))
	assert.Nil(t, fetched.Items[0].Product)
}

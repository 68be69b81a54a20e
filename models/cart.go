package models

// CartItem is one line of a session cart: the product as it looked when
// added, plus a quantity. Uniqueness is by product id within the cart.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

package domain

// Cart is the per-email set of product ids pending purchase. ItemIDs
// holds no duplicates and keeps insertion order.
type Cart struct {
	Email   string   `json:"email"`
	ItemIDs []string `json:"itemIds"`
}

// Contains reports whether productID is already in the cart.
func (c *Cart) Contains(productID string) bool {
	for _, id := range c.ItemIDs {
		if id == productID {
			return true
		}
	}
	return false
}

package entity

// Cart is a user's current selection of dishes. Items are appended in the
// order they were added and duplicates are allowed (adding the same dish
// twice yields two entries). The cart is created lazily on first add and
// cleared, not deleted, when it is converted into an order.
type Cart struct {
	Email string `json:"email"` // Owning user, case-preserving.
	Items []Dish `json:"items"` // Ordered selection, duplicates allowed.
}

// Total returns the sum of the item prices.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price
	}

	return total
}

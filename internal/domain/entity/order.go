package entity

import "time"

// Order is the result of checking out a cart. Items are a snapshot of the
// cart at creation time, so later cart mutations never affect the order.
// Orders are never deleted; only the status field is ever mutated, and only
// through the transitions allowed by OrderStatus.
type Order struct {
	ID           int         `json:"id"`           // Monotonically increasing, assigned by the order store.
	Email        string      `json:"email"`        // Owning user, case-preserving.
	Items        []Dish      `json:"items"`        // Snapshot of the cart at checkout.
	Status       OrderStatus `json:"status"`       // Lifecycle state, starts at In Process.
	DeliveryTime time.Time   `json:"deliveryTime"` // Requested or default delivery time.
	CreatedAt    time.Time   `json:"createdAt"`    // Timestamp of checkout.
}

// Total returns the sum of the snapshot item prices.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price
	}

	return total
}

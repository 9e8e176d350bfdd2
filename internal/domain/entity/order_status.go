package entity

// OrderStatus represents the lifecycle state of an order.
// InProcess is the only initial state; Delivered and Cancelled are terminal.
type OrderStatus string

const (
	// OrderStatusInProcess indicates a freshly created order awaiting delivery.
	OrderStatusInProcess OrderStatus = "In Process"
	// OrderStatusDelivered indicates the order was confirmed as delivered.
	OrderStatusDelivered OrderStatus = "Delivered"
	// OrderStatusCancelled indicates the order was cancelled before delivery.
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusInProcess, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition may leave this status.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the state machine allows moving from the
// current status to next. Only InProcess -> Delivered and
// InProcess -> Cancelled are permitted.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return s == OrderStatusInProcess && next.IsTerminal()
}

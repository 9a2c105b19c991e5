package domain

import "errors"

var (
	// ErrInvalidItemType is returned when something other than an *OrderItem
	// is added to or removed from an order.
	ErrInvalidItemType = errors.New("invalid order item type")
	// ErrItemNotFound is returned when removing an item that is not on the order.
	ErrItemNotFound = errors.New("order item not found")
	ErrInvalidValue = errors.New("invalid value")
)

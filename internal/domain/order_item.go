package domain

import "github.com/shopspring/decimal"

// OrderItem is one line of an order. It holds a copy of the menu item taken
// when the line was created, so later catalog price changes do not reach it.
type OrderItem struct {
	MenuItem
	OrderItemID   int64  `json:"order_item_id"`
	Modifications string `json:"modifications,omitempty"`
}

func NewOrderItem(orderItemID, menuItemID int64, price decimal.Decimal, name, description, modifications string) *OrderItem {
	return &OrderItem{
		MenuItem: MenuItem{
			ID:          menuItemID,
			Price:       price,
			Name:        name,
			Description: description,
		},
		OrderItemID:   orderItemID,
		Modifications: modifications,
	}
}

// OrderItemFromMenu snapshots m into a new order line.
func OrderItemFromMenu(orderItemID int64, m MenuItem, modifications string) *OrderItem {
	return NewOrderItem(orderItemID, m.ID, m.Price, m.Name, m.Description, modifications)
}

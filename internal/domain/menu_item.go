package domain

import "github.com/shopspring/decimal"

// Priced is anything that carries a menu item's price and name.
// MenuItem and OrderItem both satisfy it; only *OrderItem can be placed on an Order.
type Priced interface {
	MenuItemSnapshot() MenuItem
}

// MenuItem is a catalog entry. No validation is done on its fields.
type MenuItem struct {
	ID          int64           `json:"id"`
	Price       decimal.Decimal `json:"price"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
}

// MenuItemSnapshot returns a copy of the item.
func (m MenuItem) MenuItemSnapshot() MenuItem { return m }

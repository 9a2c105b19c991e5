package domain

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// DiscountType selects how an order's discount is applied.
type DiscountType string

const (
	DiscountNone    DiscountType = "none"
	DiscountFlat    DiscountType = "flat"
	DiscountPercent DiscountType = "percent"
)

var hundred = decimal.NewFromInt(100)

// ParseDiscountType accepts "flat", "percent", "none" and the empty string (none).
func ParseDiscountType(s string) (DiscountType, error) {
	switch DiscountType(s) {
	case "", DiscountNone:
		return DiscountNone, nil
	case DiscountFlat, DiscountPercent:
		return DiscountType(s), nil
	default:
		return DiscountNone, fmt.Errorf("discount type %q: %w", s, ErrInvalidValue)
	}
}

// ApplyDiscount returns raw reduced by the discount. The result never drops below zero.
func ApplyDiscount(raw, discount decimal.Decimal, typ DiscountType) decimal.Decimal {
	var out decimal.Decimal
	switch typ {
	case DiscountFlat:
		out = raw.Sub(discount)
	case DiscountPercent:
		out = raw.Sub(raw.Mul(discount).Div(hundred))
	default:
		out = raw
	}
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

// Order is a mutable cart of order items with an optional discount.
// The total is derived and only changes through RecalculateTotal and the
// item and discount operations that call it.
// ID is assigned once by the repository before the order is shared.
type Order struct {
	ID int64

	mu           sync.Mutex
	details      string
	createdAt    time.Time
	items        []*OrderItem
	total        decimal.Decimal
	discount     decimal.Decimal
	discountType DiscountType
	log          logrus.FieldLogger
}

type OrderOption func(*Order)

func WithDiscount(value decimal.Decimal, typ DiscountType) OrderOption {
	return func(o *Order) {
		o.discount = value
		o.discountType = typ
	}
}

func WithCreatedAt(t time.Time) OrderOption {
	return func(o *Order) { o.createdAt = t }
}

func WithLogger(l logrus.FieldLogger) OrderOption {
	return func(o *Order) { o.log = l }
}

func NewOrder(id int64, details string, opts ...OrderOption) *Order {
	o := &Order{
		ID:           id,
		details:      details,
		createdAt:    time.Now().UTC(),
		items:        make([]*OrderItem, 0),
		total:        decimal.Zero,
		discount:     decimal.Zero,
		discountType: DiscountNone,
		log:          logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// asOrderItem rejects anything that is not a non-nil *OrderItem and logs a warning.
func (o *Order) asOrderItem(op string, item Priced) (*OrderItem, error) {
	oi, ok := item.(*OrderItem)
	if !ok || oi == nil {
		o.log.WithFields(logrus.Fields{
			"order_id":  o.ID,
			"operation": op,
			"item_type": fmt.Sprintf("%T", item),
		}).Warn("rejected value that is not an order item")
		return nil, ErrInvalidItemType
	}
	return oi, nil
}

// AddOrderItem appends item and recalculates the total. Adding the same
// item twice produces two lines.
func (o *Order) AddOrderItem(item Priced) error {
	oi, err := o.asOrderItem("add", item)
	if err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.items = append(o.items, oi)
	o.recalculate()
	return nil
}

// RemoveOrderItem removes the first line that is the same *OrderItem as item.
func (o *Order) RemoveOrderItem(item Priced) error {
	oi, err := o.asOrderItem("remove", item)
	if err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, it := range o.items {
		if it == oi {
			o.items = append(o.items[:i:i], o.items[i+1:]...)
			o.recalculate()
			return nil
		}
	}
	return ErrItemNotFound
}

// ClearOrderItems empties the order and recalculates the total.
func (o *Order) ClearOrderItems() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.items = make([]*OrderItem, 0)
	o.recalculate()
}

// Items returns the lines in insertion order. The slice is a copy; the items are shared.
func (o *Order) Items() []*OrderItem {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]*OrderItem, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) Total() decimal.Decimal {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.total
}

// Subtotal is the sum of line prices before discount.
func (o *Order) Subtotal() decimal.Decimal {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.subtotal()
}

func (o *Order) Discount() decimal.Decimal {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.discount
}

func (o *Order) DiscountType() DiscountType {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.discountType
}

func (o *Order) Details() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.details
}

func (o *Order) SetDetails(details string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.details = details
}

// CreatedAt defaults to the construction time.
func (o *Order) CreatedAt() time.Time {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.createdAt
}

func (o *Order) SetCreatedAt(t time.Time) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.createdAt = t
}

// SetDiscount does not recalculate the total.
func (o *Order) SetDiscount(v decimal.Decimal) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.discount = v
}

// SetDiscountType does not recalculate the total.
func (o *Order) SetDiscountType(t DiscountType) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.discountType = t
}

// SetDiscountPolicy sets the discount and its type and recalculates the
// total in one step, so readers never see a half-applied change.
func (o *Order) SetDiscountPolicy(value decimal.Decimal, typ DiscountType) decimal.Decimal {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.discount = value
	o.discountType = typ
	o.recalculate()
	return o.total
}

// RecalculateTotal sums the line prices and applies the discount once.
// Calling it repeatedly without changes yields the same total.
func (o *Order) RecalculateTotal() decimal.Decimal {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.recalculate()
	return o.total
}

func (o *Order) subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range o.items {
		sum = sum.Add(it.Price)
	}
	return sum
}

func (o *Order) recalculate() {
	o.total = ApplyDiscount(o.subtotal(), o.discount, o.discountType)
}

// OrderView is a consistent point-in-time copy of an order.
type OrderView struct {
	ID           int64           `json:"id"`
	Details      string          `json:"details"`
	CreatedAt    time.Time       `json:"created_at"`
	Items        []OrderItem     `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Discount     decimal.Decimal `json:"discount"`
	DiscountType DiscountType    `json:"discount_type"`
	Total        decimal.Decimal `json:"total"`
}

func (o *Order) View() OrderView {
	o.mu.Lock()
	defer o.mu.Unlock()
	items := make([]OrderItem, 0, len(o.items))
	for _, it := range o.items {
		items = append(items, *it)
	}
	return OrderView{
		ID:           o.ID,
		Details:      o.details,
		CreatedAt:    o.createdAt,
		Items:        items,
		Subtotal:     o.subtotal(),
		Discount:     o.discount,
		DiscountType: o.discountType,
		Total:        o.total,
	}
}

func (o *Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.View())
}

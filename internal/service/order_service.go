package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"foodkiosk/internal/domain"
	"foodkiosk/internal/repository"
)

// OrderService реализует логику заказов: позиции, скидки, пересчёт суммы
type OrderService struct {
	menu   repository.MenuRepository
	orders repository.OrderRepository
	tx     repository.TxManager
	log    logrus.FieldLogger
}

func NewOrderService(menu repository.MenuRepository, orders repository.OrderRepository, tx repository.TxManager, log logrus.FieldLogger) *OrderService {
	return &OrderService{menu: menu, orders: orders, tx: tx, log: log}
}

// CreateOrder создаёт пустой заказ со скидкой. Пустой тип скидки означает её отсутствие.
func (s *OrderService) CreateOrder(ctx context.Context, details string, discount decimal.Decimal, discountType string) (*domain.Order, error) {
	typ, err := domain.ParseDiscountType(discountType)
	if err != nil {
		return nil, err
	}
	o := domain.NewOrder(0, details, domain.WithDiscount(discount, typ), domain.WithLogger(s.log))
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"order_id": o.ID, "discount": discount.String(), "discount_type": typ}).Info("order created")
	return o, nil
}

// GetOrder возвращает заказ по id
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	return s.orders.GetByID(ctx, id)
}

func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	return s.orders.Delete(ctx, id)
}

// AddItem снимает копию позиции меню и добавляет её в заказ
func (s *OrderService) AddItem(ctx context.Context, orderID, menuItemID int64, modifications string) (*domain.OrderItem, error) {
	if orderID <= 0 || menuItemID <= 0 {
		return nil, ErrInvalidInput
	}
	var added *domain.OrderItem
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		o, err := s.orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		m, err := s.menu.GetByID(ctx, menuItemID)
		if err != nil {
			return err
		}
		item := domain.OrderItemFromMenu(s.orders.NextOrderItemID(ctx), *m, modifications)
		if err := o.AddOrderItem(item); err != nil {
			return err
		}
		added = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"order_id":      orderID,
		"order_item_id": added.OrderItemID,
		"menu_item_id":  menuItemID,
	}).Info("order item added")
	return added, nil
}

// RemoveItem удаляет первую позицию с данным id
func (s *OrderService) RemoveItem(ctx context.Context, orderID, orderItemID int64) (*domain.Order, error) {
	if orderID <= 0 || orderItemID <= 0 {
		return nil, ErrInvalidInput
	}
	var updated *domain.Order
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		o, err := s.orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		for _, it := range o.Items() {
			if it.OrderItemID == orderItemID {
				if err := o.RemoveOrderItem(it); err != nil {
					return err
				}
				updated = o
				return nil
			}
		}
		return domain.ErrItemNotFound
	})
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{"order_id": orderID, "order_item_id": orderItemID}).Warn("order item not removed")
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"order_id": orderID, "order_item_id": orderItemID}).Info("order item removed")
	return updated, nil
}

func (s *OrderService) ClearItems(ctx context.Context, orderID int64) (*domain.Order, error) {
	o, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	o.ClearOrderItems()
	s.log.WithField("order_id", orderID).Info("order cleared")
	return o, nil
}

// SetDiscount задаёт скидку и пересчитывает сумму
func (s *OrderService) SetDiscount(ctx context.Context, orderID int64, value decimal.Decimal, discountType string) (*domain.Order, error) {
	typ, err := domain.ParseDiscountType(discountType)
	if err != nil {
		return nil, err
	}
	o, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	total := o.SetDiscountPolicy(value, typ)
	s.log.WithFields(logrus.Fields{
		"order_id":      orderID,
		"discount":      value.String(),
		"discount_type": typ,
		"total":         total.String(),
	}).Info("order discount set")
	return o, nil
}

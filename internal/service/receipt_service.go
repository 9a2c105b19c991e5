package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"foodkiosk/internal/domain"
	"foodkiosk/internal/repository"
)

// ReceiptDefaults значения по умолчанию для новых чеков
type ReceiptDefaults struct {
	CashierName string
	Message     string
}

// ReceiptService выдаёт и рендерит чеки
type ReceiptService struct {
	orders   repository.OrderRepository
	receipts repository.ReceiptRepository
	defaults ReceiptDefaults
	log      logrus.FieldLogger
}

func NewReceiptService(orders repository.OrderRepository, receipts repository.ReceiptRepository, defaults ReceiptDefaults, log logrus.FieldLogger) *ReceiptService {
	return &ReceiptService{orders: orders, receipts: receipts, defaults: defaults, log: log}
}

// Issue выдаёт чек, привязанный к живому заказу
func (s *ReceiptService) Issue(ctx context.Context, orderID int64, cashier, message string) (*domain.Receipt, error) {
	if orderID <= 0 {
		return nil, ErrInvalidInput
	}
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if cashier == "" {
		cashier = s.defaults.CashierName
	}
	if message == "" {
		message = s.defaults.Message
	}
	r := domain.NewReceipt(0, cashier, o, message)
	if err := s.receipts.Create(ctx, r); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"receipt_id": r.ID, "order_id": orderID, "cashier": cashier}).Info("receipt issued")
	return r, nil
}

func (s *ReceiptService) Get(ctx context.Context, id int64) (*domain.Receipt, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	return s.receipts.GetByID(ctx, id)
}

func (s *ReceiptService) ListForOrder(ctx context.Context, orderID int64) ([]*domain.Receipt, error) {
	if orderID <= 0 {
		return nil, ErrInvalidInput
	}
	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		return nil, err
	}
	return s.receipts.ListByOrder(ctx, orderID)
}

// Render возвращает текст чека на текущий момент
func (s *ReceiptService) Render(ctx context.Context, id int64) (string, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return r.Render(), nil
}

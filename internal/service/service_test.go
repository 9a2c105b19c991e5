package service

import (
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"foodkiosk/internal/repository"
)

type services struct {
	menu     *MenuService
	orders   *OrderService
	receipts *ReceiptService
}

func setup(t *testing.T) services {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	store := repository.NewMemoryStore()
	ordersRepo := repository.NewMemoryOrders(store)
	receiptsRepo := repository.NewMemoryReceipts(store)
	tx := repository.NewMemoryTx(store)
	return services{
		menu:     NewMenuService(store, log),
		orders:   NewOrderService(store, ordersRepo, tx, log),
		receipts: NewReceiptService(ordersRepo, receiptsRepo, ReceiptDefaults{CashierName: "Kiosk", Message: "Have a great day!"}, log),
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

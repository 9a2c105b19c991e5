package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"foodkiosk/internal/domain"
)

// ErrNotFound возвращается, когда сущность не найдена
var ErrNotFound = errors.New("not found")

// MenuFilter параметры фильтрации меню
type MenuFilter struct {
	NameSubstring string
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
}

// MenuRepository интерфейс каталога меню
type MenuRepository interface {
	Create(ctx context.Context, m *domain.MenuItem) error
	GetByID(ctx context.Context, id int64) (*domain.MenuItem, error)
	Update(ctx context.Context, m *domain.MenuItem) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f MenuFilter) ([]domain.MenuItem, error)
}

// OrderRepository интерфейс репозитория заказов. Заказы хранятся по указателю:
// это живые корзины со своей блокировкой.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
	NextOrderItemID(ctx context.Context) int64
}

// ReceiptRepository интерфейс репозитория чеков
type ReceiptRepository interface {
	Create(ctx context.Context, r *domain.Receipt) error
	GetByID(ctx context.Context, id int64) (*domain.Receipt, error)
	ListByOrder(ctx context.Context, orderID int64) ([]*domain.Receipt, error)
}

// TxManager абстракция транзакции. Для in-memory — глобальная блокировка записи.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// helper: case-insensitive contains
func containsIgnoreCase(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

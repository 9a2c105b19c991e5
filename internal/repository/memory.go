package repository

import (
	"context"
	"sort"
	"sync"

	"foodkiosk/internal/domain"
)

// MemoryStore объединённое in-memory хранилище и простой генератор ID
type MemoryStore struct {
	mu              sync.RWMutex
	nextMenuID      int64
	nextOrderID     int64
	nextOrderItemID int64
	nextReceiptID   int64
	menuByID        map[int64]domain.MenuItem
	ordersByID      map[int64]*domain.Order
	receiptsByID    map[int64]*domain.Receipt
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextMenuID:      1,
		nextOrderID:     1,
		nextOrderItemID: 1,
		nextReceiptID:   1,
		menuByID:        make(map[int64]domain.MenuItem),
		ordersByID:      make(map[int64]*domain.Order),
		receiptsByID:    make(map[int64]*domain.Receipt),
	}
}

// transaction-aware locking helpers
type txKey struct{}

func isTx(ctx context.Context) bool {
	v := ctx.Value(txKey{})
	if v == nil {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func (m *MemoryStore) rlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RLock()
	}
}
func (m *MemoryStore) runlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RUnlock()
	}
}
func (m *MemoryStore) wlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Lock()
	}
}
func (m *MemoryStore) wunlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Unlock()
	}
}

var _ MenuRepository = (*MemoryStore)(nil)

// MenuRepository implementation
func (m *MemoryStore) Create(ctx context.Context, item *domain.MenuItem) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	item.ID = m.nextMenuID
	m.nextMenuID++
	m.menuByID[item.ID] = *item
	return nil
}

func (m *MemoryStore) GetByID(ctx context.Context, id int64) (*domain.MenuItem, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	item, ok := m.menuByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	// return copy
	cp := item
	return &cp, nil
}

func (m *MemoryStore) Update(ctx context.Context, item *domain.MenuItem) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, ok := m.menuByID[item.ID]; !ok {
		return ErrNotFound
	}
	m.menuByID[item.ID] = *item
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id int64) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, ok := m.menuByID[id]; !ok {
		return ErrNotFound
	}
	delete(m.menuByID, id)
	return nil
}

// List возвращает подходящие позиции, отсортированные по id
func (m *MemoryStore) List(ctx context.Context, f MenuFilter) ([]domain.MenuItem, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]domain.MenuItem, 0)
	for _, item := range m.menuByID {
		if !containsIgnoreCase(item.Name, f.NameSubstring) {
			continue
		}
		if f.MinPrice != nil && item.Price.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && item.Price.GreaterThan(*f.MaxPrice) {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// OrderRepository implementation on wrapper type
type MemoryOrders struct{ store *MemoryStore }

func NewMemoryOrders(store *MemoryStore) *MemoryOrders { return &MemoryOrders{store: store} }

var _ OrderRepository = (*MemoryOrders)(nil)

func (mo *MemoryOrders) Create(ctx context.Context, o *domain.Order) error {
	mo.store.wlock(ctx)
	defer mo.store.wunlock(ctx)
	o.ID = mo.store.nextOrderID
	mo.store.nextOrderID++
	mo.store.ordersByID[o.ID] = o
	return nil
}

func (mo *MemoryOrders) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	mo.store.rlock(ctx)
	defer mo.store.runlock(ctx)
	o, ok := mo.store.ordersByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return o, nil
}

func (mo *MemoryOrders) Delete(ctx context.Context, id int64) error {
	mo.store.wlock(ctx)
	defer mo.store.wunlock(ctx)
	if _, ok := mo.store.ordersByID[id]; !ok {
		return ErrNotFound
	}
	delete(mo.store.ordersByID, id)
	return nil
}

// NextOrderItemID выдаёт идентификатор новой позиции заказа
func (mo *MemoryOrders) NextOrderItemID(ctx context.Context) int64 {
	mo.store.wlock(ctx)
	defer mo.store.wunlock(ctx)
	id := mo.store.nextOrderItemID
	mo.store.nextOrderItemID++
	return id
}

// ReceiptRepository implementation
type MemoryReceipts struct{ store *MemoryStore }

func NewMemoryReceipts(store *MemoryStore) *MemoryReceipts { return &MemoryReceipts{store: store} }

var _ ReceiptRepository = (*MemoryReceipts)(nil)

func (mr *MemoryReceipts) Create(ctx context.Context, r *domain.Receipt) error {
	mr.store.wlock(ctx)
	defer mr.store.wunlock(ctx)
	r.ID = mr.store.nextReceiptID
	mr.store.nextReceiptID++
	mr.store.receiptsByID[r.ID] = r
	return nil
}

func (mr *MemoryReceipts) GetByID(ctx context.Context, id int64) (*domain.Receipt, error) {
	mr.store.rlock(ctx)
	defer mr.store.runlock(ctx)
	r, ok := mr.store.receiptsByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

func (mr *MemoryReceipts) ListByOrder(ctx context.Context, orderID int64) ([]*domain.Receipt, error) {
	mr.store.rlock(ctx)
	defer mr.store.runlock(ctx)
	out := make([]*domain.Receipt, 0)
	for _, r := range mr.store.receiptsByID {
		if r.Order != nil && r.Order.ID == orderID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Tx manager using write lock to emulate transaction boundary
type MemoryTx struct{ store *MemoryStore }

func NewMemoryTx(store *MemoryStore) *MemoryTx { return &MemoryTx{store: store} }

func (tx *MemoryTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	// Для in-memory используем блокировку записи и помечаем контекст, чтобы репозитории пропускали внутренние локи
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	ctx = context.WithValue(ctx, txKey{}, true)
	return fn(ctx)
}

package service

import (
	"errors"
	"sync"

	"github.com/RoyceAzure/lab/stylish/internal/domain/model"
)

var (
	ErrOrderNotFound = errors.New("order not found")
)

// OrderBook 訂單總表
// checkout寫入、後台讀寫，跨session共用所以要鎖
type OrderBook struct {
	mu     sync.RWMutex
	orders []model.Order
}

func NewOrderBook(seed []model.Order) *OrderBook {
	b := &OrderBook{
		orders: make([]model.Order, len(seed)),
	}
	copy(b.orders, seed)
	return b
}

// Append 新訂單加在最後，維持下單順序
func (b *OrderBook) Append(order model.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.orders = append(b.orders, order)
}

// List 回傳訂單快照
func (b *OrderBook) List() []model.Order {
	b.mu.RLock()
	defer b.mu.RUnlock()
	orders := make([]model.Order, len(b.orders))
	copy(orders, b.orders)
	return orders
}

// Get 依ID取訂單
// 錯誤:
//   - ErrOrderNotFound: 訂單不存在
func (b *OrderBook) Get(orderID string) (*model.Order, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, order := range b.orders {
		if order.OrderID == orderID {
			o := order
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}

// UpdateStatus 更新訂單狀態，任意狀態間都允許轉換
// 錯誤:
//   - ErrOrderNotFound: 訂單不存在
func (b *OrderBook) UpdateStatus(orderID string, status model.OrderStatus) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.orders {
		if b.orders[i].OrderID == orderID {
			b.orders[i].Status = status
			return nil
		}
	}
	return ErrOrderNotFound
}

func (b *OrderBook) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.orders)
}

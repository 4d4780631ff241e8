package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/stylish/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func seedOrders(n int) []model.Order {
	orders := make([]model.Order, 0, n)
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	statuses := []model.OrderStatus{
		model.OrderStatusProcessing,
		model.OrderStatusShipped,
		model.OrderStatusDelivered,
		model.OrderStatusCancelled,
	}
	for i := 0; i < n; i++ {
		orders = append(orders, model.Order{
			OrderID:   fmt.Sprintf("ORD-%03d", i+1),
			Customer:  fmt.Sprintf("Customer %d", i+1),
			OrderDate: base.Add(time.Duration(i) * 24 * time.Hour),
			Total:     decimal.NewFromInt(int64(10 * (i + 1))),
			Status:    statuses[i%len(statuses)],
		})
	}
	return orders
}

func newTestAdmin(t *testing.T, orders []model.Order, customers []model.Customer) (*AdminService, *OrderBook) {
	t.Helper()
	book := NewOrderBook(orders)
	return NewAdminService(newTestCatalog(), book, customers), book
}

func TestAdminService_Dashboard(t *testing.T) {
	svc, _ := newTestAdmin(t, seedOrders(7), nil)

	dash := svc.Dashboard()

	// total = 10+20+...+70 = 280
	require.True(t, dash.TotalSales.Equal(decimal.NewFromInt(280)))
	require.Equal(t, 7, dash.TotalOrders)
	require.Equal(t, 3, dash.TotalProducts)

	// Processing跟Shipped才算pending: 順序P,S,D,C,P,S,D → 4筆
	require.Equal(t, 4, dash.PendingOrders)

	// 最近五筆照下單時間新到舊
	require.Len(t, dash.RecentOrders, 5)
	require.Equal(t, "ORD-007", dash.RecentOrders[0].OrderID)
	require.Equal(t, "ORD-003", dash.RecentOrders[4].OrderID)

	require.LessOrEqual(t, len(dash.TopProducts), 5)
}

func TestAdminService_ListOrders(t *testing.T) {
	svc, _ := newTestAdmin(t, seedOrders(25), nil)

	// 沒條件回傳全部，每頁10筆
	result := svc.ListOrders("", "", 1)
	require.Equal(t, 25, result.TotalCount)
	require.Equal(t, 3, result.TotalPages)
	require.Len(t, result.Orders, 10)

	result = svc.ListOrders("", "", 3)
	require.Len(t, result.Orders, 5)

	// 超出範圍收斂到最後一頁
	result = svc.ListOrders("", "", 99)
	require.Equal(t, 3, result.Page)

	// 搜訂單ID
	result = svc.ListOrders("ord-001", "", 1)
	require.Equal(t, 1, result.TotalCount)
	require.Equal(t, "ORD-001", result.Orders[0].OrderID)

	// 搜客戶名稱不分大小寫
	result = svc.ListOrders("customer 2", "", 1)
	require.NotZero(t, result.TotalCount)

	// 狀態過濾
	result = svc.ListOrders("", model.OrderStatusProcessing, 1)
	for _, order := range result.Orders {
		require.Equal(t, model.OrderStatusProcessing, order.Status)
	}
}

func TestAdminService_UpdateOrderStatus(t *testing.T) {
	svc, book := newTestAdmin(t, seedOrders(3), nil)

	err := svc.UpdateOrderStatus("ORD-002", model.OrderStatusDelivered)
	require.NoError(t, err)

	order, err := book.Get("ORD-002")
	require.NoError(t, err)
	require.Equal(t, model.OrderStatusDelivered, order.Status)

	err = svc.UpdateOrderStatus("ORD-999", model.OrderStatusShipped)
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestAdminService_GetOrder(t *testing.T) {
	svc, _ := newTestAdmin(t, seedOrders(3), nil)

	order, err := svc.GetOrder("ORD-001")
	require.NoError(t, err)
	require.Equal(t, "Customer 1", order.Customer)

	_, err = svc.GetOrder("ORD-404")
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestAdminService_ListCustomers(t *testing.T) {
	customers := []model.Customer{
		{CustomerID: "c1", Name: "Emma Wilson", Email: "emma@example.com"},
		{CustomerID: "c2", Name: "James Brown", Email: "james@example.com"},
		{CustomerID: "c3", Name: "Olivia Martinez", Email: "olivia@example.com"},
	}
	svc, _ := newTestAdmin(t, nil, customers)

	result := svc.ListCustomers("", 1)
	require.Equal(t, 3, result.TotalCount)

	result = svc.ListCustomers("EMMA", 1)
	require.Equal(t, 1, result.TotalCount)
	require.Equal(t, "c1", result.Customers[0].CustomerID)

	// email也能搜
	result = svc.ListCustomers("james@", 1)
	require.Equal(t, 1, result.TotalCount)

	result = svc.ListCustomers("nobody", 1)
	require.Zero(t, result.TotalCount)
	require.Empty(t, result.Customers)
}

func TestAdminService_ListProducts(t *testing.T) {
	svc, _ := newTestAdmin(t, nil, nil)

	result := svc.ListProducts("", "", 1)
	require.Equal(t, 3, result.TotalCount)

	// 分類不分大小寫
	result = svc.ListProducts("", "outerwear", 1)
	require.Equal(t, 2, result.TotalCount)

	result = svc.ListProducts("wool", "", 1)
	require.Equal(t, 1, result.TotalCount)
	require.Equal(t, "p2", result.Products[0].ProductID)

	result = svc.ListProducts("wool", "T-Shirts", 1)
	require.Zero(t, result.TotalCount)
}

func TestOrderBook_Concurrency(t *testing.T) {
	book := NewOrderBook(seedOrders(5))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			book.Append(model.Order{OrderID: fmt.Sprintf("ORD-X%03d", i), Status: model.OrderStatusProcessing})
		}
	}()
	for i := 0; i < 100; i++ {
		book.List()
		book.Len()
	}
	<-done

	require.Equal(t, 105, book.Len())
}

func TestOrderBook_ListIsCopy(t *testing.T) {
	book := NewOrderBook(seedOrders(2))

	list := book.List()
	list[0].Status = model.OrderStatusCancelled

	order, err := book.Get("ORD-001")
	require.NoError(t, err)
	require.Equal(t, model.OrderStatusProcessing, order.Status)
}

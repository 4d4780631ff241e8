package service

import (
	"sort"
	"strings"

	"github.com/RoyceAzure/lab/stylish/internal/catalog"
	"github.com/RoyceAzure/lab/stylish/internal/domain/model"
	"github.com/shopspring/decimal"
)

// AdminPageSize 後台表格每頁筆數
const AdminPageSize = 10

// Dashboard 後台首頁指標
type Dashboard struct {
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalOrders   int             `json:"total_orders"`
	TotalProducts int             `json:"total_products"`
	PendingOrders int             `json:"pending_orders"` // Processing + Shipped
	RecentOrders  []model.Order   `json:"recent_orders"`  // 最近五筆
	TopProducts   []model.Product `json:"top_products"`   // 銷量前五
}

// OrderListResult 訂單列表分頁結果
type OrderListResult struct {
	Orders     []model.Order `json:"orders"`
	TotalCount int           `json:"total_count"`
	TotalPages int           `json:"total_pages"`
	Page       int           `json:"page"`
}

type CustomerListResult struct {
	Customers  []model.Customer `json:"customers"`
	TotalCount int              `json:"total_count"`
	TotalPages int              `json:"total_pages"`
	Page       int              `json:"page"`
}

type ProductListResult struct {
	Products   []model.Product `json:"products"`
	TotalCount int             `json:"total_count"`
	TotalPages int             `json:"total_pages"`
	Page       int             `json:"page"`
}

// AdminService 後台查詢與訂單維護
// customers跟catalog一樣是啟動時載入的唯讀清單
type AdminService struct {
	catalog   *catalog.Catalog
	orders    *OrderBook
	customers []model.Customer
}

func NewAdminService(cat *catalog.Catalog, orders *OrderBook, customers []model.Customer) *AdminService {
	if cat == nil {
		panic("admin service dependency catalog is nil")
	}
	if orders == nil {
		panic("admin service dependency orders is nil")
	}
	return &AdminService{
		catalog:   cat,
		orders:    orders,
		customers: customers,
	}
}

// Dashboard 計算後台指標，每次呼叫重新計算
func (s *AdminService) Dashboard() Dashboard {
	orders := s.orders.List()

	totalSales := decimal.Zero
	pending := 0
	for _, order := range orders {
		totalSales = totalSales.Add(order.Total)
		if order.Status.Open() {
			pending++
		}
	}

	// 最近五筆: 依下單時間新到舊
	recent := make([]model.Order, len(orders))
	copy(recent, orders)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].OrderDate.After(recent[j].OrderDate)
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}

	top := make([]model.Product, s.catalog.Len())
	copy(top, s.catalog.Products())
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Sales > top[j].Sales
	})
	if len(top) > 5 {
		top = top[:5]
	}

	return Dashboard{
		TotalSales:    totalSales,
		TotalOrders:   len(orders),
		TotalProducts: s.catalog.Len(),
		PendingOrders: pending,
		RecentOrders:  recent,
		TopProducts:   top,
	}
}

// ListOrders 搜尋訂單ID或客戶名稱(不分大小寫)，status為空字串代表全部
func (s *AdminService) ListOrders(query string, status model.OrderStatus, page int) OrderListResult {
	q := strings.ToLower(strings.TrimSpace(query))

	filtered := make([]model.Order, 0)
	for _, order := range s.orders.List() {
		if q != "" &&
			!strings.Contains(strings.ToLower(order.OrderID), q) &&
			!strings.Contains(strings.ToLower(order.Customer), q) {
			continue
		}
		if status != "" && order.Status != status {
			continue
		}
		filtered = append(filtered, order)
	}

	paged, totalPages, page := paginate(filtered, page, AdminPageSize)
	return OrderListResult{
		Orders:     paged,
		TotalCount: len(filtered),
		TotalPages: totalPages,
		Page:       page,
	}
}

// GetOrder 依ID取訂單
func (s *AdminService) GetOrder(orderID string) (*model.Order, error) {
	return s.orders.Get(orderID)
}

// UpdateOrderStatus 變更訂單狀態
// 錯誤:
//   - ErrOrderNotFound: 訂單不存在
func (s *AdminService) UpdateOrderStatus(orderID string, status model.OrderStatus) error {
	return s.orders.UpdateStatus(orderID, status)
}

// ListCustomers 搜尋客戶名稱或email(不分大小寫)
func (s *AdminService) ListCustomers(query string, page int) CustomerListResult {
	q := strings.ToLower(strings.TrimSpace(query))

	filtered := make([]model.Customer, 0)
	for _, customer := range s.customers {
		if q != "" &&
			!strings.Contains(strings.ToLower(customer.Name), q) &&
			!strings.Contains(strings.ToLower(customer.Email), q) {
			continue
		}
		filtered = append(filtered, customer)
	}

	paged, totalPages, page := paginate(filtered, page, AdminPageSize)
	return CustomerListResult{
		Customers:  paged,
		TotalCount: len(filtered),
		TotalPages: totalPages,
		Page:       page,
	}
}

// ListProducts 後台商品列表，category為空代表全部
func (s *AdminService) ListProducts(query, category string, page int) ProductListResult {
	q := strings.ToLower(strings.TrimSpace(query))

	filtered := make([]model.Product, 0)
	for _, product := range s.catalog.Products() {
		if q != "" &&
			!strings.Contains(strings.ToLower(product.Name), q) &&
			!strings.Contains(strings.ToLower(product.SKU), q) {
			continue
		}
		if category != "" && !strings.EqualFold(product.Category, category) {
			continue
		}
		filtered = append(filtered, product)
	}

	paged, totalPages, page := paginate(filtered, page, AdminPageSize)
	return ProductListResult{
		Products:   paged,
		TotalCount: len(filtered),
		TotalPages: totalPages,
		Page:       page,
	}
}

// paginate page收斂到 [1, totalPages]，空集合回傳空頁
func paginate[T any](items []T, page, pageSize int) ([]T, int, int) {
	totalCount := len(items)
	totalPages := (totalCount + pageSize - 1) / pageSize

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalCount {
		start = totalCount
	}
	if end > totalCount {
		end = totalCount
	}
	return items[start:end], totalPages, page
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	CustomerID string          `json:"customer_id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	JoinDate   time.Time       `json:"join_date"`
	OrderCount int             `json:"order_count"`
	TotalSpent decimal.Decimal `json:"total_spent"`
	IsVIP      bool            `json:"is_vip"`
	Address    *Address        `json:"address,omitempty"`
	Orders     []CustomerOrder `json:"orders,omitempty"`
	Notes      []CustomerNote  `json:"notes,omitempty"`
}

// CustomerOrder 客戶頁面上的訂單摘要
type CustomerOrder struct {
	OrderID string          `json:"order_id"`
	Date    time.Time       `json:"date"`
	Items   int             `json:"items"`
	Total   decimal.Decimal `json:"total"`
	Status  OrderStatus     `json:"status"`
}

type CustomerNote struct {
	Author  string    `json:"author"`
	Date    time.Time `json:"date"`
	Content string    `json:"content"`
}

package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing" // 處理中
	OrderStatusShipped    OrderStatus = "Shipped"    // 已出貨
	OrderStatusDelivered  OrderStatus = "Delivered"  // 已送達
	OrderStatusCancelled  OrderStatus = "Cancelled"  // 已取消
)

// ParseOrderStatus 將字串轉成OrderStatus，非法值回傳錯誤
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s), nil
	default:
		return "", fmt.Errorf("unknown order status: %q", s)
	}
}

// Open 訂單是否還在進行中(未送達也未取消)
func (s OrderStatus) Open() bool {
	return s == OrderStatusProcessing || s == OrderStatusShipped
}

type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard" // 3-5 個工作天
	ShippingExpress  ShippingMethod = "express"  // 1-2 個工作天
)

func ParseShippingMethod(s string) (ShippingMethod, error) {
	switch ShippingMethod(s) {
	case ShippingStandard, ShippingExpress:
		return ShippingMethod(s), nil
	default:
		return "", fmt.Errorf("unknown shipping method: %q", s)
	}
}

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "Credit Card"
	PaymentPayPal     PaymentMethod = "PayPal"
	PaymentApplePay   PaymentMethod = "Apple Pay"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCreditCard, PaymentPayPal, PaymentApplePay:
		return PaymentMethod(s), nil
	default:
		return "", fmt.Errorf("unknown payment method: %q", s)
	}
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type Order struct {
	OrderID         string          `json:"order_id"`
	Customer        string          `json:"customer"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	OrderDate       time.Time       `json:"order_date"`
	Total           decimal.Decimal `json:"total"`
	Status          OrderStatus     `json:"status"`
	Items           []OrderItem     `json:"items"`
	ShippingAddress Address         `json:"shipping_address"`
	ShippingMethod  ShippingMethod  `json:"shipping_method"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
}

type OrderItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"` // 下單當下的折扣後單價
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image,omitempty"`
	Variant   string          `json:"variant,omitempty"` // e.g. "Black / M"
}

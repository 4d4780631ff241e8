package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/stylish/internal/catalog"
	"github.com/RoyceAzure/lab/stylish/internal/domain/model"
	"github.com/RoyceAzure/lab/stylish/internal/domain/model/event"
	"github.com/RoyceAzure/lab/stylish/internal/infra/producer"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
)

var (
	taxRate             = decimal.RequireFromString("0.08") // 8% 銷售稅
	standardShippingFee = decimal.NewFromInt(10)
	expressShippingFee  = decimal.NewFromInt(15)
	freeShippingMinimum = decimal.NewFromInt(50) // 標準運送滿額免運門檻
)

// Quote 結帳金額試算
type Quote struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ShippingInfo 結帳表單的聯絡與收件資訊
// 由view layer驗證過才會進來
type ShippingInfo struct {
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Address   model.Address `json:"address"`
}

// CheckoutService 把購物車變成訂單
// 不處理真的金流
type CheckoutService struct {
	catalog  *catalog.Catalog
	orders   *OrderBook
	producer producer.IStoreEventProducer
	logger   zerolog.Logger
}

func NewCheckoutService(
	cat *catalog.Catalog,
	orders *OrderBook,
	eventProducer producer.IStoreEventProducer,
	logger zerolog.Logger,
) *CheckoutService {
	if cat == nil {
		panic("checkout service dependency catalog is nil")
	}
	if orders == nil {
		panic("checkout service dependency orders is nil")
	}
	if eventProducer == nil {
		eventProducer = producer.NewNoopProducer()
	}
	return &CheckoutService{
		catalog:  cat,
		orders:   orders,
		producer: eventProducer,
		logger:   logger,
	}
}

// NewQuote 由小計算出運費、稅金與總額
// 標準運送滿50免運，快遞固定15
func (s *CheckoutService) NewQuote(subtotal decimal.Decimal, method model.ShippingMethod) Quote {
	shipping := standardShippingFee
	switch {
	case method == model.ShippingExpress:
		shipping = expressShippingFee
	case subtotal.GreaterThan(freeShippingMinimum):
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(taxRate).Round(2)
	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

// PlaceOrder 下單
// 成功後購物車會被清空，訂單進入order book並發布OrderCreated事件
// 錯誤:
//   - ErrEmptyCart: 購物車是空的
func (s *CheckoutService) PlaceOrder(
	ctx context.Context,
	cart *CartStore,
	info ShippingInfo,
	shippingMethod model.ShippingMethod,
	paymentMethod model.PaymentMethod,
) (*model.Order, error) {
	items := cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	orderItems := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		product, err := s.catalog.Get(item.ProductID)
		if err != nil {
			// rehydrate已經濾掉未知商品，這裡理論上不會發生
			s.logger.Warn().Str("product_id", item.ProductID).Msg("skip unknown product at checkout")
			continue
		}
		orderItems = append(orderItems, model.OrderItem{
			ProductID: product.ProductID,
			Name:      product.Name,
			Price:     product.EffectivePrice(),
			Quantity:  item.Quantity,
			Image:     product.Image,
			Variant:   variantLabel(item),
		})
	}

	quote := s.NewQuote(cart.Subtotal(), shippingMethod)
	order := model.Order{
		OrderID:         newOrderID(),
		Customer:        strings.TrimSpace(info.FirstName + " " + info.LastName),
		Email:           info.Email,
		Phone:           info.Phone,
		OrderDate:       time.Now().UTC(),
		Total:           quote.Total,
		Status:          model.OrderStatusProcessing,
		Items:           orderItems,
		ShippingAddress: info.Address,
		ShippingMethod:  shippingMethod,
		PaymentMethod:   paymentMethod,
	}

	s.orders.Append(order)
	cart.Clear(ctx)

	if err := s.producer.Publish(ctx, event.NewOrderCreatedEvent(cart.sessionID, order)); err != nil {
		s.logger.Warn().Err(err).Str("order_id", order.OrderID).Msg("failed to publish order event")
	}
	return &order, nil
}

func newOrderID() string {
	id := uuid.New().String()
	return "ORD-" + strings.ToUpper(id[:8])
}

func variantLabel(item model.CartItem) string {
	switch {
	case item.Size != "" && item.Color != "":
		return item.Color + " / " + item.Size
	case item.Color != "":
		return item.Color
	case item.Size != "":
		return item.Size
	default:
		return ""
	}
}

package event

import (
	"github.com/RoyceAzure/lab/stylish/internal/domain/model"
)

// CartUpdatedEvent 購物車內容異動(add/update/remove)後發布
// Items 為異動後的完整快照
type CartUpdatedEvent struct {
	BaseEvent
	SessionID string           `json:"sessionId"`
	Items     []model.CartItem `json:"items"`
}

func NewCartUpdatedEvent(sessionID string, items []model.CartItem) *CartUpdatedEvent {
	return &CartUpdatedEvent{
		BaseEvent: *NewBaseEvent(sessionID, CartUpdatedEventName),
		SessionID: sessionID,
		Items:     items,
	}
}

func (e *CartUpdatedEvent) Type() EventType {
	return CartUpdatedEventName
}

type CartClearedEvent struct {
	BaseEvent
	SessionID string `json:"sessionId"`
}

func NewCartClearedEvent(sessionID string) *CartClearedEvent {
	return &CartClearedEvent{
		BaseEvent: *NewBaseEvent(sessionID, CartClearedEventName),
		SessionID: sessionID,
	}
}

func (e *CartClearedEvent) Type() EventType {
	return CartClearedEventName
}

type OrderCreatedEvent struct {
	BaseEvent
	SessionID string      `json:"sessionId"`
	Order     model.Order `json:"order"`
}

func NewOrderCreatedEvent(sessionID string, order model.Order) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseEvent: *NewBaseEvent(order.OrderID, OrderCreatedEventName),
		SessionID: sessionID,
		Order:     order,
	}
}

func (e *OrderCreatedEvent) Type() EventType {
	return OrderCreatedEventName
}

package event

import (
	"time"

	"github.com/google/uuid"
)

type BaseEvent struct {
	EventID     string    `json:"eventId"`
	AggregateID string    `json:"aggregateId"`
	CreatedAt   time.Time `json:"createdAt"`
	EventType   EventType `json:"eventType"`
}

func NewBaseEvent(aggregateID string, eventType EventType) *BaseEvent {
	return &BaseEvent{
		EventID:     uuid.New().String(),
		AggregateID: aggregateID,
		CreatedAt:   time.Now().UTC(),
		EventType:   eventType,
	}
}

func (e *BaseEvent) GetID() string {
	return e.EventID
}

func (e *BaseEvent) GetAggregateID() string {
	return e.AggregateID
}

type EventType string

const (
	CartUpdatedEventName    EventType = "CartUpdated"
	CartClearedEventName    EventType = "CartCleared"
	OrderCreatedEventName   EventType = "OrderCreated"
	UserLoggedInEventName   EventType = "UserLoggedIn"
	UserLoggedOutEventName  EventType = "UserLoggedOut"
	UserRegisteredEventName EventType = "UserRegistered"
)

type Event interface {
	Type() EventType
	GetID() string
	GetAggregateID() string
}

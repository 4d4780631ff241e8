package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/RoyceAzure/lab/stylish/internal/domain/model/event"
	"github.com/segmentio/kafka-go"
)

// IStoreEventProducer 發布store異動事件
// 事件是fire-and-forget: 發布失敗由呼叫端記log，不影響store狀態
type IStoreEventProducer interface {
	Publish(ctx context.Context, evt event.Event) error
	Close() error
}

// NoopProducer 預設實作，事件直接丟棄
// 沒有設定kafka broker時使用
type NoopProducer struct{}

func NewNoopProducer() *NoopProducer {
	return &NoopProducer{}
}

func (p *NoopProducer) Publish(ctx context.Context, evt event.Event) error {
	return nil
}

func (p *NoopProducer) Close() error {
	return nil
}

// KafkaProducer 將事件寫入kafka topic
// 訊息key = aggregate id，確保同一session/訂單的事件落在同一分區
type KafkaProducer struct {
	writer *kafka.Writer
	closed atomic.Bool
}

var _ IStoreEventProducer = (*KafkaProducer)(nil)

func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
		Compression:  kafka.Snappy,
	}
	return &KafkaProducer{writer: writer}
}

func (p *KafkaProducer) Publish(ctx context.Context, evt event.Event) error {
	if p.closed.Load() {
		return fmt.Errorf("producer is closed")
	}

	value, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", evt.GetID(), err)
	}

	msg := kafka.Message{
		Key:   []byte(evt.GetAggregateID()),
		Value: value,
		Headers: []kafka.Header{
			{
				Key:   "event_type",
				Value: []byte(evt.Type()),
			},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", evt.GetID(), err)
	}
	return nil
}

func (p *KafkaProducer) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	return p.writer.Close()
}

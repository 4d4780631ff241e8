package service

import (
	"context"
	"sync"
	"testing"

	"github.com/RoyceAzure/lab/stylish/internal/catalog"
	"github.com/RoyceAzure/lab/stylish/internal/domain/model"
	"github.com/RoyceAzure/lab/stylish/internal/domain/model/event"
	"github.com/RoyceAzure/lab/stylish/internal/infra/repository/redis_repo"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// newTestSessionRepo 用內嵌redis，測試結束自動關閉
func newTestSessionRepo(t *testing.T) (*redis_repo.SessionRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return redis_repo.NewSessionRepo(client, "stylish", 0), mr
}

func newTestCatalog() *catalog.Catalog {
	return catalog.New([]model.Product{
		{
			ProductID: "p1",
			Name:      "Classic White Tee",
			Price:     decimal.NewFromInt(30),
			Category:  "T-Shirts",
			Sizes:     []string{"S", "M", "L"},
			Colors:    []string{"White"},
		},
		{
			ProductID: "p2",
			Name:      "Wool Coat",
			Price:     decimal.NewFromInt(100),
			Discount:  20,
			Category:  "Outerwear",
			Sizes:     []string{"M", "L"},
			Colors:    []string{"Black"},
		},
		{
			ProductID: "p3",
			Name:      "Denim Jacket",
			Price:     decimal.NewFromInt(90),
			Category:  "Outerwear",
			Sizes:     []string{"S", "M"},
			Colors:    []string{"Blue"},
		},
	})
}

// capturingProducer 收集發出的事件供斷言用
type capturingProducer struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *capturingProducer) Publish(ctx context.Context, evt event.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return nil
}

func (p *capturingProducer) Close() error {
	return nil
}

func (p *capturingProducer) Events() []event.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]event.Event, len(p.events))
	copy(out, p.events)
	return out
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/stylish/internal/catalog"
	"github.com/RoyceAzure/lab/stylish/internal/domain/model"
	"github.com/RoyceAzure/lab/stylish/internal/domain/model/event"
	"github.com/RoyceAzure/lab/stylish/internal/infra/producer"
	"github.com/RoyceAzure/lab/stylish/internal/infra/repository/redis_repo"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
)

// CartStore 單一session的購物車
// 明細順序 = 加入順序，line key = (product_id, size, color)
// 每次異動後同步寫回session快照，寫入失敗只記log不中斷
//
// 一個CartStore實例只服務一個邏輯操作者，不做鎖
type CartStore struct {
	sessionID   string
	catalog     *catalog.Catalog
	sessionRepo redis_repo.ISessionRepository
	producer    producer.IStoreEventProducer
	logger      zerolog.Logger
	items       []model.CartItem
}

// NewCartStore 建立購物車並從快照還原
// 快照不存在或毀損都當作空購物車，不會失敗
func NewCartStore(
	ctx context.Context,
	sessionID string,
	cat *catalog.Catalog,
	sessionRepo redis_repo.ISessionRepository,
	eventProducer producer.IStoreEventProducer,
	logger zerolog.Logger,
) *CartStore {
	if cat == nil {
		panic("cart store dependency catalog is nil")
	}
	if sessionRepo == nil {
		panic("cart store dependency sessionRepo is nil")
	}
	if eventProducer == nil {
		eventProducer = producer.NewNoopProducer()
	}

	s := &CartStore{
		sessionID:   sessionID,
		catalog:     cat,
		sessionRepo: sessionRepo,
		producer:    eventProducer,
		logger:      logger,
	}
	s.rehydrate(ctx)
	return s
}

func (s *CartStore) rehydrate(ctx context.Context) {
	items, err := s.sessionRepo.LoadCart(ctx, s.sessionID)
	if errors.Is(err, redis_repo.ErrSnapshotNotFound) {
		return
	}
	if err != nil {
		// 壞掉的快照視同沒有快照
		s.logger.Warn().Err(err).Str("session_id", s.sessionID).Msg("discard cart snapshot")
		return
	}

	// 目錄是唯一真相來源，已下架的商品直接剔除
	for _, item := range items {
		if _, err := s.catalog.Get(item.ProductID); err != nil {
			s.logger.Warn().Str("session_id", s.sessionID).Str("product_id", item.ProductID).
				Msg("drop cart line for unknown product")
			continue
		}
		if item.Quantity < 1 {
			continue
		}
		s.items = append(s.items, item)
	}
}

// AddItem 加入商品
// 相同line key的明細直接加數量，否則append新明細
// 不檢查庫存
// 錯誤:
//   - ErrInvalidQuantity: quantity <= 0
//   - catalog.ErrProductNotFound: 商品不存在
func (s *CartStore) AddItem(ctx context.Context, productID string, quantity int, size, color string) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if _, err := s.catalog.Get(productID); err != nil {
		return err
	}

	merged := false
	for i := range s.items {
		if s.items[i].SameLine(productID, size, color) {
			s.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, model.CartItem{
			ProductID: productID,
			Quantity:  quantity,
			Size:      size,
			Color:     color,
		})
	}

	s.persist(ctx)
	s.emitUpdated(ctx)
	return nil
}

// UpdateQuantity 更新第一筆符合productID的明細數量
// 注意: 只看productID不看size/color，同商品多規格會一起被第一筆吃掉
// 數量不做clamp，由UI保證 >= 1
func (s *CartStore) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.persist(ctx)
	s.emitUpdated(ctx)
}

// RemoveItem 移除所有符合productID的明細，不分規格
func (s *CartStore) RemoveItem(ctx context.Context, productID string) {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.persist(ctx)
	s.emitUpdated(ctx)
}

// Clear 清空購物車
func (s *CartStore) Clear(ctx context.Context) {
	s.items = nil
	s.persist(ctx)
	if err := s.producer.Publish(ctx, event.NewCartClearedEvent(s.sessionID)); err != nil {
		s.logger.Warn().Err(err).Str("session_id", s.sessionID).Msg("failed to publish cart event")
	}
}

// Items 回傳明細快照
func (s *CartStore) Items() []model.CartItem {
	items := make([]model.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// TotalItems 數量加總，每次重新計算
func (s *CartStore) TotalItems() int {
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// Subtotal Σ(折扣後單價 × 數量)
func (s *CartStore) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range s.items {
		product, err := s.catalog.Get(item.ProductID)
		if err != nil {
			continue
		}
		subtotal = subtotal.Add(product.EffectivePrice().Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal
}

func (s *CartStore) persist(ctx context.Context) {
	if err := s.sessionRepo.SaveCart(ctx, s.sessionID, s.items); err != nil {
		s.logger.Warn().Err(err).Str("session_id", s.sessionID).Msg("failed to persist cart snapshot")
	}
}

func (s *CartStore) emitUpdated(ctx context.Context) {
	if err := s.producer.Publish(ctx, event.NewCartUpdatedEvent(s.sessionID, s.Items())); err != nil {
		s.logger.Warn().Err(err).Str("session_id", s.sessionID).Msg("failed to publish cart event")
	}
}

package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/stylish/internal/catalog"
	"github.com/RoyceAzure/lab/stylish/internal/domain/model"
	"github.com/RoyceAzure/lab/stylish/internal/domain/model/event"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestCart(t *testing.T, sessionID string) *CartStore {
	t.Helper()
	repo, _ := newTestSessionRepo(t)
	return NewCartStore(context.Background(), sessionID, newTestCatalog(), repo, nil, testLogger())
}

func TestCartStore_AddItem(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t, "sid-add")

	err := cart.AddItem(ctx, "p1", 2, "M", "White")
	require.NoError(t, err)

	// 相同line key直接累加數量，不新增明細
	err = cart.AddItem(ctx, "p1", 3, "M", "White")
	require.NoError(t, err)

	items := cart.Items()
	require.Len(t, items, 1)
	require.Equal(t, 5, items[0].Quantity)

	// 不同規格是獨立明細
	err = cart.AddItem(ctx, "p1", 1, "L", "White")
	require.NoError(t, err)
	require.Len(t, cart.Items(), 2)
	require.Equal(t, 6, cart.TotalItems())
}

func TestCartStore_AddItem_Invalid(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t, "sid-invalid")

	err := cart.AddItem(ctx, "p1", 0, "M", "White")
	require.ErrorIs(t, err, ErrInvalidQuantity)

	err = cart.AddItem(ctx, "p1", -3, "M", "White")
	require.ErrorIs(t, err, ErrInvalidQuantity)

	err = cart.AddItem(ctx, "ghost", 1, "M", "White")
	require.ErrorIs(t, err, catalog.ErrProductNotFound)

	require.Empty(t, cart.Items())
}

func TestCartStore_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t, "sid-update")

	require.NoError(t, cart.AddItem(ctx, "p1", 2, "M", "White"))
	require.NoError(t, cart.AddItem(ctx, "p1", 1, "L", "White"))

	// 只改第一筆符合productID的明細
	cart.UpdateQuantity(ctx, "p1", 7)

	items := cart.Items()
	require.Equal(t, 7, items[0].Quantity)
	require.Equal(t, 1, items[1].Quantity)

	// 不存在的商品是no-op
	cart.UpdateQuantity(ctx, "ghost", 99)
	require.Equal(t, 8, cart.TotalItems())
}

func TestCartStore_RemoveItem(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t, "sid-remove")

	require.NoError(t, cart.AddItem(ctx, "p1", 2, "M", "White"))
	require.NoError(t, cart.AddItem(ctx, "p1", 1, "L", "White"))
	require.NoError(t, cart.AddItem(ctx, "p2", 1, "M", "Black"))

	// 移除不分規格，同商品全部消失
	cart.RemoveItem(ctx, "p1")

	items := cart.Items()
	require.Len(t, items, 1)
	require.Equal(t, "p2", items[0].ProductID)
}

func TestCartStore_SubtotalUsesEffectivePrice(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t, "sid-subtotal")

	// p2原價100打8折 = 80
	require.NoError(t, cart.AddItem(ctx, "p1", 2, "M", "White"))
	require.NoError(t, cart.AddItem(ctx, "p2", 1, "M", "Black"))

	expected := decimal.NewFromInt(30).Mul(decimal.NewFromInt(2)).Add(decimal.NewFromInt(80))
	require.True(t, cart.Subtotal().Equal(expected),
		"expected %s, got %s", expected, cart.Subtotal())
}

func TestCartStore_Clear(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t, "sid-clear")

	require.NoError(t, cart.AddItem(ctx, "p1", 2, "M", "White"))
	cart.Clear(ctx)

	require.Empty(t, cart.Items())
	require.Equal(t, 0, cart.TotalItems())
	require.True(t, cart.Subtotal().IsZero())
}

func TestCartStore_SnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestSessionRepo(t)
	cat := newTestCatalog()

	cart := NewCartStore(ctx, "sid-persist", cat, repo, nil, testLogger())
	require.NoError(t, cart.AddItem(ctx, "p1", 2, "M", "White"))
	require.NoError(t, cart.AddItem(ctx, "p2", 1, "M", "Black"))

	// 同一個session重建，狀態要從快照還原
	reloaded := NewCartStore(ctx, "sid-persist", cat, repo, nil, testLogger())
	require.Equal(t, cart.Items(), reloaded.Items())
	require.Equal(t, 3, reloaded.TotalItems())

	// 不同session看不到彼此的購物車
	other := NewCartStore(ctx, "sid-other", cat, repo, nil, testLogger())
	require.Empty(t, other.Items())
}

func TestCartStore_CorruptedSnapshot(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestSessionRepo(t)

	// 壞掉的快照視同空購物車，不能panic也不能error
	mr.Set("stylish:session:sid-corrupt:cart", "{not json")

	cart := NewCartStore(ctx, "sid-corrupt", newTestCatalog(), repo, nil, testLogger())
	require.Empty(t, cart.Items())

	// 壞快照之後照常可用
	require.NoError(t, cart.AddItem(ctx, "p1", 1, "M", "White"))
	require.Len(t, cart.Items(), 1)
}

func TestCartStore_RehydrateDropsUnknownProducts(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestSessionRepo(t)
	cat := newTestCatalog()

	// 先存一筆含已下架商品的快照
	require.NoError(t, repo.SaveCart(ctx, "sid-stale", []model.CartItem{
		{ProductID: "p1", Quantity: 2, Size: "M", Color: "White"},
		{ProductID: "discontinued", Quantity: 1, Size: "M", Color: "Red"},
	}))

	cart := NewCartStore(ctx, "sid-stale", cat, repo, nil, testLogger())
	items := cart.Items()
	require.Len(t, items, 1)
	require.Equal(t, "p1", items[0].ProductID)
}

func TestCartStore_EmitsEvents(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestSessionRepo(t)
	prod := &capturingProducer{}

	cart := NewCartStore(ctx, "sid-events", newTestCatalog(), repo, prod, testLogger())
	require.NoError(t, cart.AddItem(ctx, "p1", 1, "M", "White"))
	cart.Clear(ctx)

	events := prod.Events()
	require.Len(t, events, 2)
	require.Equal(t, event.CartUpdatedEventName, events[0].Type())
	require.Equal(t, event.CartClearedEventName, events[1].Type())
	require.Equal(t, "sid-events", events[0].GetAggregateID())
}

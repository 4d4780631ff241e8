package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestProduct_EffectivePrice(t *testing.T) {
	testCases := []struct {
		name     string
		price    string
		discount uint
		expected string
	}{
		{"無折扣回傳原價", "29.99", 0, "29.99"},
		{"八折", "100", 20, "80"},
		{"九折小數價", "59.99", 10, "53.991"},
		{"全額折扣", "49.99", 100, "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Product{
				Price:    decimal.RequireFromString(tc.price),
				Discount: tc.discount,
			}
			require.True(t, p.EffectivePrice().Equal(decimal.RequireFromString(tc.expected)),
				"expected %s, got %s", tc.expected, p.EffectivePrice())
		})
	}
}

func TestProduct_OnSale(t *testing.T) {
	p := Product{Price: decimal.NewFromInt(50)}
	require.False(t, p.OnSale())

	p.Discount = 15
	require.True(t, p.OnSale())
}

func TestProduct_Variants(t *testing.T) {
	p := Product{
		Sizes:  []string{"S", "M", "L"},
		Colors: []string{"Black", "White"},
	}

	require.True(t, p.HasSize("M"))
	require.False(t, p.HasSize("XXL"))
	require.True(t, p.HasColor("Black"))
	require.False(t, p.HasColor("Red"))

	// 無尺寸商品
	bag := Product{}
	require.False(t, bag.HasSize("M"))
}

func TestParseOrderStatus(t *testing.T) {
	st, err := ParseOrderStatus("Shipped")
	require.NoError(t, err)
	require.Equal(t, OrderStatusShipped, st)

	_, err = ParseOrderStatus("Lost")
	require.Error(t, err)
}

func TestOrderStatus_Open(t *testing.T) {
	require.True(t, OrderStatusProcessing.Open())
	require.True(t, OrderStatusShipped.Open())
	require.False(t, OrderStatusDelivered.Open())
	require.False(t, OrderStatusCancelled.Open())
}

func TestCartItem_SameLine(t *testing.T) {
	item := CartItem{ProductID: "p1", Size: "M", Color: "Black"}

	require.True(t, item.SameLine("p1", "M", "Black"))
	require.False(t, item.SameLine("p1", "L", "Black"))
	require.False(t, item.SameLine("p1", "M", "White"))
	require.False(t, item.SameLine("p2", "M", "Black"))
}

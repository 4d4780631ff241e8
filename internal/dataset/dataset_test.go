package dataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProducts(t *testing.T) {
	products := Products()
	require.Len(t, products, 12)

	seen := map[string]bool{}
	for _, p := range products {
		require.NotEmpty(t, p.ProductID)
		require.False(t, seen[p.ProductID], "duplicate product id %s", p.ProductID)
		seen[p.ProductID] = true

		require.True(t, p.Price.IsPositive())
		require.LessOrEqual(t, p.Discount, uint(100))
		require.NotEmpty(t, p.Category)
	}
}

func TestOrdersReferenceKnownProducts(t *testing.T) {
	known := map[string]bool{}
	for _, p := range Products() {
		known[p.ProductID] = true
	}

	orders := Orders()
	require.Len(t, orders, 6)

	for _, order := range orders {
		require.NotEmpty(t, order.Items)
		require.True(t, order.Total.IsPositive())
		for _, item := range order.Items {
			require.True(t, known[item.ProductID], "order %s references unknown product %s", order.OrderID, item.ProductID)
		}
	}
}

func TestCustomers(t *testing.T) {
	customers := Customers()
	require.Len(t, customers, 8)

	for _, c := range customers {
		require.NotEmpty(t, c.CustomerID)
		require.NotEmpty(t, c.Email)
	}
}

func TestProviderListProducts(t *testing.T) {
	p := NewProvider()
	products, err := p.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 12)
}

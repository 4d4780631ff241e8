// Package dataset 內嵌的種子資料
// 提供catalog、order book、customer book啟動時的初始內容
package dataset

import (
	"context"
	"time"

	"github.com/RoyceAzure/lab/stylish/internal/domain/model"
	"github.com/shopspring/decimal"
)

// Provider 以內嵌資料實作catalog.IProvider
type Provider struct{}

func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) ListProducts(ctx context.Context) ([]model.Product, error) {
	return Products(), nil
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// 種子資料的時間都沒有時區，一律視為UTC
func at(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

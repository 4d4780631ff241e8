package catalog

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/stylish/internal/domain/model"
)

var ErrProductNotFound = errors.New("product not found")

// IProvider 提供啟動時的商品清單
// catalog 視其為已驗證的唯讀輸入，不做schema檢查
type IProvider interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
}

// Catalog 唯讀商品目錄
// 啟動時載入一次，之後不再異動，順序即為featured排序的基準順序
type Catalog struct {
	products []model.Product
	byID     map[string]int
}

// Load 從provider載入商品並建立索引
func Load(ctx context.Context, provider IProvider) (*Catalog, error) {
	products, err := provider.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return New(products), nil
}

func New(products []model.Product) *Catalog {
	c := &Catalog{
		products: make([]model.Product, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	copy(c.products, products)
	for i, p := range c.products {
		c.byID[p.ProductID] = i
	}
	return c
}

// Get 依ID取商品
// 錯誤:
//   - ErrProductNotFound: 商品不存在
func (c *Catalog) Get(productID string) (*model.Product, error) {
	i, ok := c.byID[productID]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := c.products[i]
	return &p, nil
}

// Products 回傳目錄快照，呼叫端不可修改
func (c *Catalog) Products() []model.Product {
	return c.products
}

func (c *Catalog) Len() int {
	return len(c.products)
}

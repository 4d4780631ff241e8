package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type SortKey string

const (
	SortFeatured  SortKey = "featured"   // 維持目錄原始順序
	SortPriceAsc  SortKey = "price-asc"  // 折扣後價格由低到高
	SortPriceDesc SortKey = "price-desc" // 折扣後價格由高到低
	SortNewest    SortKey = "newest"     // 新品優先，其餘維持穩定
	SortRating    SortKey = "rating"     // 評分由高到低
)

func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortFeatured, nil
	}
	switch SortKey(s) {
	case SortFeatured, SortPriceAsc, SortPriceDesc, SortNewest, SortRating:
		return SortKey(s), nil
	default:
		return "", fmt.Errorf("unknown sort key: %q", s)
	}
}

// DefaultPageSize 商店列表每頁筆數
const DefaultPageSize = 12

// Criteria 使用者在UI上選擇的過濾條件
// 每次render重新組出來，不持久化
type Criteria struct {
	Query      string
	Categories []string
	Sizes      []string
	Colors     []string
	PriceMin   decimal.Decimal
	PriceMax   decimal.Decimal
	SaleOnly   bool
	Sort       SortKey
	Page       int
	PageSize   int
}

// DefaultCriteria 對應UI的Clear All: 無任何過濾、featured排序、第一頁
// 價格區間預設 [0, 200]
func DefaultCriteria() Criteria {
	return Criteria{
		PriceMin: decimal.Zero,
		PriceMax: decimal.NewFromInt(200),
		Sort:     SortFeatured,
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

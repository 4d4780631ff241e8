package catalog

import (
	"sort"
	"strings"

	"github.com/RoyceAzure/lab/stylish/internal/domain/model"
)

// Page 過濾、排序、分頁後的結果
type Page struct {
	Items      []model.Product `json:"items"`
	TotalCount int             `json:"total_count"`
	TotalPages int             `json:"total_pages"`
	Page       int             `json:"page"`
}

// View 純函數: 由目錄與過濾條件導出可見的商品頁
// pipeline順序固定: 文字 -> 分類 -> 尺寸 -> 顏色 -> 特價 -> 價格區間 -> 排序 -> 分頁
// 相同條件重複呼叫結果必定相同
func View(c *Catalog, criteria Criteria) Page {
	filtered := make([]model.Product, 0, c.Len())
	for _, p := range c.products {
		if matches(&p, &criteria) {
			filtered = append(filtered, p)
		}
	}

	sortProducts(filtered, criteria.Sort)

	pageSize := criteria.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalCount := len(filtered)
	totalPages := (totalCount + pageSize - 1) / pageSize

	// page收斂到 [1, totalPages]
	page := criteria.Page
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalCount {
		start = totalCount
	}
	if end > totalCount {
		end = totalCount
	}

	return Page{
		Items:      filtered[start:end],
		TotalCount: totalCount,
		TotalPages: totalPages,
		Page:       page,
	}
}

func matches(p *model.Product, criteria *Criteria) bool {
	if q := strings.ToLower(strings.TrimSpace(criteria.Query)); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}

	if len(criteria.Categories) > 0 && !containsFold(criteria.Categories, p.Category) {
		return false
	}

	if len(criteria.Sizes) > 0 && !intersects(p.Sizes, criteria.Sizes) {
		return false
	}

	if len(criteria.Colors) > 0 && !intersects(p.Colors, criteria.Colors) {
		return false
	}

	if criteria.SaleOnly && !p.OnSale() {
		return false
	}

	// 價格區間用折扣後價格，邊界皆包含
	price := p.EffectivePrice()
	if price.LessThan(criteria.PriceMin) || price.GreaterThan(criteria.PriceMax) {
		return false
	}

	return true
}

func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// sortProducts 穩定排序，featured不重排
func sortProducts(products []model.Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice().LessThan(products[j].EffectivePrice())
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice().GreaterThan(products[j].EffectivePrice())
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsNew && !products[j].IsNew
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	}
}

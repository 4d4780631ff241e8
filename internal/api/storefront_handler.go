package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/stylish/internal/catalog"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// ListProducts GET /api/v1/products
// query params: q, category(可重複), size(可重複), color(可重複),
// price_min, price_max, sale, sort, page
func (s *Server) ListProducts(w http.ResponseWriter, r *http.Request) {
	criteria := catalog.DefaultCriteria()
	q := r.URL.Query()

	criteria.Query = q.Get("q")
	criteria.Categories = q["category"]
	criteria.Sizes = q["size"]
	criteria.Colors = q["color"]
	criteria.SaleOnly = q.Get("sale") == "true"

	if v := q.Get("price_min"); v != "" {
		min, err := decimal.NewFromString(v)
		if err != nil {
			ErrorJSON(w, http.StatusBadRequest, "invalid price_min")
			return
		}
		criteria.PriceMin = min
	}
	if v := q.Get("price_max"); v != "" {
		max, err := decimal.NewFromString(v)
		if err != nil {
			ErrorJSON(w, http.StatusBadRequest, "invalid price_max")
			return
		}
		criteria.PriceMax = max
	}

	sortKey, err := catalog.ParseSortKey(q.Get("sort"))
	if err != nil {
		ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	criteria.Sort = sortKey

	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			ErrorJSON(w, http.StatusBadRequest, "invalid page")
			return
		}
		criteria.Page = page
	}

	SuccessJSON(w, catalog.View(s.catalog, criteria))
}

// GetProduct GET /api/v1/products/{productID}
func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	product, err := s.catalog.Get(productID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		ErrorJSON(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		ErrorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	SuccessJSON(w, product)
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/stylish/internal/catalog"
	"github.com/RoyceAzure/lab/stylish/internal/domain/model"
	"github.com/RoyceAzure/lab/stylish/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type CartLineDTO struct {
	Product   model.Product   `json:"product"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type CartDTO struct {
	Items      []CartLineDTO   `json:"items"`
	TotalItems int             `json:"total_items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

type AddCartItemDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

type UpdateCartItemDTO struct {
	Quantity int `json:"quantity"`
}

func (s *Server) cartDTO(cart *service.CartStore) CartDTO {
	items := cart.Items()
	lines := make([]CartLineDTO, 0, len(items))
	for _, item := range items {
		product, err := s.catalog.Get(item.ProductID)
		if err != nil {
			continue
		}
		lines = append(lines, CartLineDTO{
			Product:   *product,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
			LineTotal: product.EffectivePrice().Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}
	return CartDTO{
		Items:      lines,
		TotalItems: cart.TotalItems(),
		Subtotal:   cart.Subtotal(),
	}
}

// GetCart GET /api/v1/cart
func (s *Server) GetCart(w http.ResponseWriter, r *http.Request) {
	SuccessJSON(w, s.cartDTO(s.cartStore(r)))
}

// AddCartItem POST /api/v1/cart/items
func (s *Server) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cart := s.cartStore(r)
	err := cart.AddItem(r.Context(), req.ProductID, req.Quantity, req.Size, req.Color)
	if errors.Is(err, service.ErrInvalidQuantity) {
		ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	if errors.Is(err, catalog.ErrProductNotFound) {
		ErrorJSON(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		ErrorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	SuccessJSON(w, s.cartDTO(cart))
}

// UpdateCartItem PUT /api/v1/cart/items/{productID}
func (s *Server) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateCartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cart := s.cartStore(r)
	cart.UpdateQuantity(r.Context(), chi.URLParam(r, "productID"), req.Quantity)
	SuccessJSON(w, s.cartDTO(cart))
}

// RemoveCartItem DELETE /api/v1/cart/items/{productID}
func (s *Server) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	cart := s.cartStore(r)
	cart.RemoveItem(r.Context(), chi.URLParam(r, "productID"))
	SuccessJSON(w, s.cartDTO(cart))
}

// ClearCart DELETE /api/v1/cart
func (s *Server) ClearCart(w http.ResponseWriter, r *http.Request) {
	cart := s.cartStore(r)
	cart.Clear(r.Context())
	SuccessJSON(w, s.cartDTO(cart))
}

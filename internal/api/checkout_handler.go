package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/stylish/internal/domain/model"
	"github.com/RoyceAzure/lab/stylish/internal/service"
)

type CheckoutDTO struct {
	Info           service.ShippingInfo `json:"info"`
	ShippingMethod string               `json:"shipping_method"`
	PaymentMethod  string               `json:"payment_method"`
}

// QuoteCheckout GET /api/v1/checkout/quote?shipping=standard
func (s *Server) QuoteCheckout(w http.ResponseWriter, r *http.Request) {
	method := model.ShippingStandard
	if v := r.URL.Query().Get("shipping"); v != "" {
		parsed, err := model.ParseShippingMethod(v)
		if err != nil {
			ErrorJSON(w, http.StatusBadRequest, err.Error())
			return
		}
		method = parsed
	}

	cart := s.cartStore(r)
	SuccessJSON(w, s.checkout.NewQuote(cart.Subtotal(), method))
}

// PlaceOrder POST /api/v1/checkout
func (s *Server) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req CheckoutDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	shippingMethod, err := model.ParseShippingMethod(req.ShippingMethod)
	if err != nil {
		ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	paymentMethod, err := model.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	cart := s.cartStore(r)
	order, err := s.checkout.PlaceOrder(r.Context(), cart, req.Info, shippingMethod, paymentMethod)
	if errors.Is(err, service.ErrEmptyCart) {
		ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		ErrorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	SuccessJSON(w, order)
}

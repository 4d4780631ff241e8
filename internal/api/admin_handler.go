package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/stylish/internal/domain/model"
	"github.com/RoyceAzure/lab/stylish/internal/service"
	"github.com/go-chi/chi/v5"
)

type UpdateOrderStatusDTO struct {
	Status string `json:"status"`
}

// AdminDashboard GET /api/v1/admin/dashboard
func (s *Server) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	SuccessJSON(w, s.admin.Dashboard())
}

// AdminListOrders GET /api/v1/admin/orders?q=&status=&page=
func (s *Server) AdminListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var status model.OrderStatus
	if v := q.Get("status"); v != "" && v != "all" {
		parsed, err := model.ParseOrderStatus(v)
		if err != nil {
			ErrorJSON(w, http.StatusBadRequest, err.Error())
			return
		}
		status = parsed
	}

	page := parsePage(q.Get("page"))
	SuccessJSON(w, s.admin.ListOrders(q.Get("q"), status, page))
}

// AdminGetOrder GET /api/v1/admin/orders/{orderID}
func (s *Server) AdminGetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := s.admin.GetOrder(chi.URLParam(r, "orderID"))
	if errors.Is(err, service.ErrOrderNotFound) {
		ErrorJSON(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		ErrorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	SuccessJSON(w, order)
}

// AdminUpdateOrderStatus PUT /api/v1/admin/orders/{orderID}/status
func (s *Server) AdminUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateOrderStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	status, err := model.ParseOrderStatus(req.Status)
	if err != nil {
		ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	err = s.admin.UpdateOrderStatus(chi.URLParam(r, "orderID"), status)
	if errors.Is(err, service.ErrOrderNotFound) {
		ErrorJSON(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		ErrorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	SuccessJSON(w, map[string]bool{"ok": true})
}

// AdminListCustomers GET /api/v1/admin/customers?q=&page=
func (s *Server) AdminListCustomers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	SuccessJSON(w, s.admin.ListCustomers(q.Get("q"), parsePage(q.Get("page"))))
}

// AdminListProducts GET /api/v1/admin/products?q=&category=&page=
func (s *Server) AdminListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	SuccessJSON(w, s.admin.ListProducts(q.Get("q"), q.Get("category"), parsePage(q.Get("page"))))
}

// parsePage 非法page一律當第一頁
func parsePage(v string) int {
	if v == "" {
		return 1
	}
	page, err := strconv.Atoi(v)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

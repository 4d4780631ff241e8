package router

import (
	"github.com/RoyceAzure/lab/stylish/internal/api"
	m "github.com/RoyceAzure/lab/stylish/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func SetupRouter(server *api.Server, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.SessionMiddleware)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", server.ListProducts)
			r.Get("/{productID}", server.GetProduct)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", server.GetCart)
			r.Delete("/", server.ClearCart)
			r.Post("/items", server.AddCartItem)
			r.Put("/items/{productID}", server.UpdateCartItem)
			r.Delete("/items/{productID}", server.RemoveCartItem)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", server.Login)
			r.Post("/register", server.Register)
			r.Post("/logout", server.Logout)
			r.Get("/me", server.Me)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/quote", server.QuoteCheckout)
			r.Post("/", server.PlaceOrder)
		})

		// 後台路由
		r.Route("/admin", func(r chi.Router) {
			r.Use(server.RequireAdmin)
			r.Get("/dashboard", server.AdminDashboard)
			r.Get("/orders", server.AdminListOrders)
			r.Get("/orders/{orderID}", server.AdminGetOrder)
			r.Put("/orders/{orderID}/status", server.AdminUpdateOrderStatus)
			r.Get("/customers", server.AdminListCustomers)
			r.Get("/products", server.AdminListProducts)
		})
	})

	return r
}

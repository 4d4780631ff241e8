package api

import (
	"net/http"
	"time"

	"github.com/RoyceAzure/lab/stylish/internal/api/middleware"
	"github.com/RoyceAzure/lab/stylish/internal/catalog"
	"github.com/RoyceAzure/lab/stylish/internal/infra/producer"
	"github.com/RoyceAzure/lab/stylish/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/stylish/internal/service"
	"github.com/rs/zerolog"
)

// Server view layer的JSON介面
// 所有格式化(幣值、日期)留在前端，這裡只進出domain資料
type Server struct {
	catalog     *catalog.Catalog
	sessionRepo redis_repo.ISessionRepository
	producer    producer.IStoreEventProducer
	checkout    *service.CheckoutService
	admin       *service.AdminService
	loginDelay  time.Duration
	logger      zerolog.Logger
}

func NewServer(
	cat *catalog.Catalog,
	sessionRepo redis_repo.ISessionRepository,
	eventProducer producer.IStoreEventProducer,
	checkout *service.CheckoutService,
	admin *service.AdminService,
	loginDelay time.Duration,
	logger zerolog.Logger,
) *Server {
	if cat == nil {
		panic("server dependency catalog is nil")
	}
	if sessionRepo == nil {
		panic("server dependency sessionRepo is nil")
	}
	if checkout == nil {
		panic("server dependency checkout is nil")
	}
	if admin == nil {
		panic("server dependency admin is nil")
	}
	if eventProducer == nil {
		eventProducer = producer.NewNoopProducer()
	}
	return &Server{
		catalog:     cat,
		sessionRepo: sessionRepo,
		producer:    eventProducer,
		checkout:    checkout,
		admin:       admin,
		loginDelay:  loginDelay,
		logger:      logger,
	}
}

// cartStore 以request的session id組出該瀏覽器的購物車
// 每個request重建一次，狀態都在快照裡
func (s *Server) cartStore(r *http.Request) *service.CartStore {
	sid := middleware.GetSessionID(r.Context())
	return service.NewCartStore(r.Context(), sid, s.catalog, s.sessionRepo, s.producer, s.logger)
}

func (s *Server) authStore(r *http.Request) *service.AuthStore {
	sid := middleware.GetSessionID(r.Context())
	return service.NewAuthStore(r.Context(), sid, s.sessionRepo, s.producer, s.loginDelay, s.logger)
}

// RequireAdmin 後台路由的守門，非admin一律403
func (s *Server) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := s.authStore(r)
		user := auth.Current()
		if user == nil {
			ErrorJSON(w, http.StatusUnauthorized, "login required")
			return
		}
		if !user.IsAdmin {
			ErrorJSON(w, http.StatusForbidden, "admin only")
			return
		}
		next.ServeHTTP(w, r)
	})
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/stylish/internal/domain/model"
	"github.com/RoyceAzure/lab/stylish/internal/domain/model/event"
	"github.com/RoyceAzure/lab/stylish/internal/infra/producer"
	"github.com/RoyceAzure/lab/stylish/internal/infra/repository/redis_repo"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// 寫死的兩組測試帳號，這不是真的認證系統
var mockAccounts = map[string]model.User{
	"admin@example.com": {
		UserID:  "1",
		Name:    "Admin User",
		Email:   "admin@example.com",
		IsAdmin: true,
	},
	"user@example.com": {
		UserID:  "2",
		Name:    "Regular User",
		Email:   "user@example.com",
		IsAdmin: false,
	},
}

const mockPassword = "password"

// AuthStore 單一session的登入狀態
// 狀態機只有兩態: anonymous <-> authenticated，沒有token也沒有過期
type AuthStore struct {
	sessionID   string
	sessionRepo redis_repo.ISessionRepository
	producer    producer.IStoreEventProducer
	logger      zerolog.Logger
	delay       time.Duration
	current     *model.User
}

// NewAuthStore delay 模擬後端延遲，0代表不等
func NewAuthStore(
	ctx context.Context,
	sessionID string,
	sessionRepo redis_repo.ISessionRepository,
	eventProducer producer.IStoreEventProducer,
	delay time.Duration,
	logger zerolog.Logger,
) *AuthStore {
	if sessionRepo == nil {
		panic("auth store dependency sessionRepo is nil")
	}
	if eventProducer == nil {
		eventProducer = producer.NewNoopProducer()
	}

	s := &AuthStore{
		sessionID:   sessionID,
		sessionRepo: sessionRepo,
		producer:    eventProducer,
		logger:      logger,
		delay:       delay,
	}
	s.rehydrate(ctx)
	return s
}

func (s *AuthStore) rehydrate(ctx context.Context) {
	user, err := s.sessionRepo.LoadUser(ctx, s.sessionID)
	if errors.Is(err, redis_repo.ErrSnapshotNotFound) {
		return
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("session_id", s.sessionID).Msg("discard user snapshot")
		return
	}
	s.current = user
}

// Login 驗證帳密
// 先等模擬延遲(可被ctx取消)再比對，失敗不改變現有狀態
// 錯誤:
//   - ErrInvalidCredentials: 帳密不對
//   - ctx.Err(): 等待期間被取消
func (s *AuthStore) Login(ctx context.Context, email, password string) (*model.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	account, ok := mockAccounts[email]
	if !ok || password != mockPassword {
		return nil, ErrInvalidCredentials
	}

	user := account
	s.current = &user
	s.persist(ctx)

	if err := s.producer.Publish(ctx, event.NewUserLoggedInEvent(s.sessionID, user.UserID, user.IsAdmin)); err != nil {
		s.logger.Warn().Err(err).Str("session_id", s.sessionID).Msg("failed to publish auth event")
	}
	return &user, nil
}

// Register 註冊新帳號
// 不檢查email重複，一律成功，id用隨機uuid
func (s *AuthStore) Register(ctx context.Context, email, password, name string) (*model.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	user := model.User{
		UserID:  uuid.New().String(),
		Name:    name,
		Email:   email,
		IsAdmin: false,
	}
	s.current = &user
	s.persist(ctx)

	if err := s.producer.Publish(ctx, event.NewUserRegisteredEvent(s.sessionID, user.UserID, user.Email)); err != nil {
		s.logger.Warn().Err(err).Str("session_id", s.sessionID).Msg("failed to publish auth event")
	}
	return &user, nil
}

// Logout 登出並刪除快照
func (s *AuthStore) Logout(ctx context.Context) {
	if s.current == nil {
		return
	}
	userID := s.current.UserID
	s.current = nil

	if err := s.sessionRepo.DeleteUser(ctx, s.sessionID); err != nil {
		s.logger.Warn().Err(err).Str("session_id", s.sessionID).Msg("failed to delete user snapshot")
	}
	if err := s.producer.Publish(ctx, event.NewUserLoggedOutEvent(s.sessionID, userID)); err != nil {
		s.logger.Warn().Err(err).Str("session_id", s.sessionID).Msg("failed to publish auth event")
	}
}

// Current 目前登入的使用者，anonymous回傳nil
func (s *AuthStore) Current() *model.User {
	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

func (s *AuthStore) IsAuthenticated() bool {
	return s.current != nil
}

// wait 模擬API延遲，這裡是唯一的suspension point
func (s *AuthStore) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *AuthStore) persist(ctx context.Context) {
	if err := s.sessionRepo.SaveUser(ctx, s.sessionID, s.current); err != nil {
		s.logger.Warn().Err(err).Str("session_id", s.sessionID).Msg("failed to persist user snapshot")
	}
}

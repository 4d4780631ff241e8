package redis_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/stylish/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

type SessionRepoError error

var (
	ErrSnapshotNotFound SessionRepoError = errors.New("snapshot not found")
)

// ISessionRepository 會話快照存取
// 對應瀏覽器localStorage的角色: 每個session底下有cart跟user兩個JSON blob
type ISessionRepository interface {
	SaveCart(ctx context.Context, sessionID string, items []model.CartItem) error
	LoadCart(ctx context.Context, sessionID string) ([]model.CartItem, error)
	DeleteCart(ctx context.Context, sessionID string) error

	SaveUser(ctx context.Context, sessionID string, user *model.User) error
	LoadUser(ctx context.Context, sessionID string) (*model.User, error)
	DeleteUser(ctx context.Context, sessionID string) error
}

/*	redis 儲存結構:
	stylish:session:<sid>:cart -> JSON array of cart items
	stylish:session:<sid>:user -> JSON object of current user*/

type SessionRepo struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ ISessionRepository = (*SessionRepo)(nil)

// NewSessionRepo ttl <= 0 代表快照不過期
func NewSessionRepo(client *redis.Client, prefix string, ttl time.Duration) *SessionRepo {
	if prefix == "" {
		prefix = "stylish"
	}
	if ttl < 0 {
		ttl = 0
	}
	return &SessionRepo{client: client, prefix: prefix, ttl: ttl}
}

func (r *SessionRepo) cartKey(sessionID string) string {
	return fmt.Sprintf("%s:session:%s:cart", r.prefix, sessionID)
}

func (r *SessionRepo) userKey(sessionID string) string {
	return fmt.Sprintf("%s:session:%s:user", r.prefix, sessionID)
}

func (r *SessionRepo) SaveCart(ctx context.Context, sessionID string, items []model.CartItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot: %w", err)
	}
	if err := r.client.Set(ctx, r.cartKey(sessionID), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart snapshot: %w", err)
	}
	return nil
}

// LoadCart 讀取購物車快照
// 錯誤:
//   - ErrSnapshotNotFound: 該session沒有存過購物車
//   - err: payload毀損或redis錯誤
func (r *SessionRepo) LoadCart(ctx context.Context, sessionID string) ([]model.CartItem, error) {
	payload, err := r.client.Get(ctx, r.cartKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart snapshot: %w", err)
	}

	var items []model.CartItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart snapshot: %w", err)
	}
	return items, nil
}

func (r *SessionRepo) DeleteCart(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart snapshot: %w", err)
	}
	return nil
}

func (r *SessionRepo) SaveUser(ctx context.Context, sessionID string, user *model.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user snapshot: %w", err)
	}
	if err := r.client.Set(ctx, r.userKey(sessionID), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save user snapshot: %w", err)
	}
	return nil
}

// LoadUser 讀取登入使用者快照
// 錯誤:
//   - ErrSnapshotNotFound: 該session沒有登入紀錄
//   - err: payload毀損或redis錯誤
func (r *SessionRepo) LoadUser(ctx context.Context, sessionID string) (*model.User, error) {
	payload, err := r.client.Get(ctx, r.userKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user snapshot: %w", err)
	}

	var user model.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user snapshot: %w", err)
	}
	return &user, nil
}

func (r *SessionRepo) DeleteUser(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.userKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete user snapshot: %w", err)
	}
	return nil
}

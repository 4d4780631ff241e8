package service

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/stylish/internal/domain/model/event"
	"github.com/stretchr/testify/require"
)

func newTestAuth(t *testing.T, sessionID string, delay time.Duration) *AuthStore {
	t.Helper()
	repo, _ := newTestSessionRepo(t)
	return NewAuthStore(context.Background(), sessionID, repo, nil, delay, testLogger())
}

func TestAuthStore_LoginAdmin(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(t, "sid-admin", 0)

	require.False(t, auth.IsAuthenticated())

	user, err := auth.Login(ctx, "admin@example.com", "password")
	require.NoError(t, err)
	require.True(t, user.IsAdmin)
	require.Equal(t, "Admin User", user.Name)
	require.True(t, auth.IsAuthenticated())

	current := auth.Current()
	require.NotNil(t, current)
	require.Equal(t, user.UserID, current.UserID)
}

func TestAuthStore_LoginRegularUser(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(t, "sid-user", 0)

	user, err := auth.Login(ctx, "user@example.com", "password")
	require.NoError(t, err)
	require.False(t, user.IsAdmin)
}

func TestAuthStore_LoginFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(t, "sid-fail", 0)

	_, err := auth.Login(ctx, "admin@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.False(t, auth.IsAuthenticated())

	_, err = auth.Login(ctx, "nobody@example.com", "password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// 登入後打錯密碼不影響現有登入狀態
	_, err = auth.Login(ctx, "admin@example.com", "password")
	require.NoError(t, err)
	_, err = auth.Login(ctx, "admin@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.True(t, auth.IsAuthenticated())
}

func TestAuthStore_LoginCancelled(t *testing.T) {
	auth := newTestAuth(t, "sid-cancel", 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := auth.Login(ctx, "admin@example.com", "password")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.False(t, auth.IsAuthenticated())
}

func TestAuthStore_Register(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(t, "sid-register", 0)

	user, err := auth.Register(ctx, "new@example.com", "secret", "New User")
	require.NoError(t, err)
	require.NotEmpty(t, user.UserID)
	require.Equal(t, "new@example.com", user.Email)
	require.False(t, user.IsAdmin)
	require.True(t, auth.IsAuthenticated())

	// id是隨機的，兩次註冊不能撞號
	other := newTestAuth(t, "sid-register-2", 0)
	second, err := other.Register(ctx, "new@example.com", "secret", "New User")
	require.NoError(t, err)
	require.NotEqual(t, user.UserID, second.UserID)
}

func TestAuthStore_Logout(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestSessionRepo(t)
	auth := NewAuthStore(ctx, "sid-logout", repo, nil, 0, testLogger())

	_, err := auth.Login(ctx, "user@example.com", "password")
	require.NoError(t, err)

	auth.Logout(ctx)
	require.False(t, auth.IsAuthenticated())
	require.Nil(t, auth.Current())

	// 登出後重建session，不能還原出已登出的使用者
	reloaded := NewAuthStore(ctx, "sid-logout", repo, nil, 0, testLogger())
	require.False(t, reloaded.IsAuthenticated())
}

func TestAuthStore_LogoutAnonymousIsNoop(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestSessionRepo(t)
	prod := &capturingProducer{}
	auth := NewAuthStore(ctx, "sid-anon", repo, prod, 0, testLogger())

	auth.Logout(ctx)
	require.False(t, auth.IsAuthenticated())
	require.Empty(t, prod.Events())
}

func TestAuthStore_SnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestSessionRepo(t)

	auth := NewAuthStore(ctx, "sid-roundtrip", repo, nil, 0, testLogger())
	user, err := auth.Login(ctx, "admin@example.com", "password")
	require.NoError(t, err)

	reloaded := NewAuthStore(ctx, "sid-roundtrip", repo, nil, 0, testLogger())
	require.True(t, reloaded.IsAuthenticated())
	current := reloaded.Current()
	require.Equal(t, user.UserID, current.UserID)
	require.True(t, current.IsAdmin)
}

func TestAuthStore_CorruptedSnapshot(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestSessionRepo(t)

	mr.Set("stylish:session:sid-corrupt:user", "{not json")

	auth := NewAuthStore(ctx, "sid-corrupt", repo, nil, 0, testLogger())
	require.False(t, auth.IsAuthenticated())
	require.Nil(t, auth.Current())
}

func TestAuthStore_EmitsEvents(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestSessionRepo(t)
	prod := &capturingProducer{}

	auth := NewAuthStore(ctx, "sid-auth-events", repo, prod, 0, testLogger())
	_, err := auth.Login(ctx, "user@example.com", "password")
	require.NoError(t, err)
	auth.Logout(ctx)

	events := prod.Events()
	require.Len(t, events, 2)
	require.Equal(t, event.UserLoggedInEventName, events[0].Type())
	require.Equal(t, event.UserLoggedOutEventName, events[1].Type())
}

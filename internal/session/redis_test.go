package session

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/amoylab/inventory/internal/common/config"
	"github.com/amoylab/inventory/internal/common/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	s, err := NewRedisStore(config.SessionRedisConfig{Addr: mr.Addr(), Prefix: "test:session:"})
	if err != nil {
		mr.Close()
		t.Fatalf("failed to create RedisStore: %v", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
		mr.Close()
	})
	return s, mr
}

func TestRedisStore_SaveGetDelete(t *testing.T) {
	s, mr := newTestRedisStore(t)
	ctx := context.Background()

	sess := &Session{ID: "r1", User: dto.UserInfo{ID: 9, Username: "bob", Role: "normal"}, ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, s.Save(ctx, sess))
	assert.True(t, mr.Exists("test:session:r1"))

	got, err := s.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, sess.User, got.User)

	require.NoError(t, s.Delete(ctx, "r1"))
	_, err = s.Get(ctx, "r1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_TTL(t *testing.T) {
	s, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &Session{ID: "r2", ExpiresAt: time.Now().Add(30 * time.Second)}))
	assert.Greater(t, mr.TTL("test:session:r2"), time.Duration(0))

	mr.FastForward(time.Minute)
	_, err := s.Get(ctx, "r2")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// an already expired session is never written
	require.NoError(t, s.Save(ctx, &Session{ID: "r3", ExpiresAt: time.Now().Add(-time.Second)}))
	assert.False(t, mr.Exists("test:session:r3"))
}

func TestNewRedisStore_Unreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = NewRedisStore(config.SessionRedisConfig{Addr: addr})
	assert.Error(t, err)
}

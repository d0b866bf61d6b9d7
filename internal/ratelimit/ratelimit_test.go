package ratelimit

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAllowsUpToLimitPerKey(t *testing.T) {
	ctx := context.Background()
	l := NewMemory(3, time.Hour)

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d", i+1)
	}
	ok, _ := l.Allow(ctx, "10.0.0.1")
	assert.False(t, ok)

	ok, _ = l.Allow(ctx, "10.0.0.2")
	assert.True(t, ok)
}

func TestMemoryResetsWhenFull(t *testing.T) {
	l := NewMemory(1, time.Hour)
	for i := 0; i < maxTrackedKeys; i++ {
		l.get(fmt.Sprintf("k-%d", i))
	}
	l.get("overflow")

	l.mu.RLock()
	defer l.mu.RUnlock()
	assert.Len(t, l.limiters, 1)
}

func TestNewRedisClientRejectsBadURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "")
	assert.Error(t, err)

	_, err = NewRedisClient(context.Background(), "http://not-redis")
	assert.Error(t, err)
}

func TestRedisFixedWindow(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	client, err := NewRedisClient(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	l := NewRedis(client, "test:contact:"+uuid.NewString()+":", 2, time.Minute)
	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok)
}

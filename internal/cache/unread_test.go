package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnreadKey(t *testing.T) {
	assert.Equal(t, "notif:unread:42", unreadKey(42))
}

func TestNoopUnreadCounter(t *testing.T) {
	var c UnreadCounter = NoopUnreadCounter{}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 1, 5))
	_, ok, err := c.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok, "noop никогда не отдает значение")
	assert.NoError(t, c.Invalidate(ctx, 1))
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := NewRedisClient(ctx, "127.0.0.1:1", "", 0)
	assert.Error(t, err)
}

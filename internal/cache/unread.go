package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// UnreadCounter кэширует счетчик непрочитанных уведомлений.
// Любая запись уведомления пользователя должна вызывать Invalidate.
type UnreadCounter interface {
	Get(ctx context.Context, userID uint) (count int64, ok bool, err error)
	Set(ctx context.Context, userID uint, count int64) error
	Invalidate(ctx context.Context, userID uint) error
}

type RedisUnreadCounter struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisUnreadCounter(rdb *redis.Client, ttl time.Duration) *RedisUnreadCounter {
	return &RedisUnreadCounter{rdb: rdb, ttl: ttl}
}

// NewRedisClient открывает клиент и проверяет соединение
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return rdb, nil
}

func unreadKey(userID uint) string { return fmt.Sprintf("notif:unread:%d", userID) }

func (c *RedisUnreadCounter) Get(ctx context.Context, userID uint) (int64, bool, error) {
	count, err := c.rdb.Get(ctx, unreadKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return count, true, nil
}

func (c *RedisUnreadCounter) Set(ctx context.Context, userID uint, count int64) error {
	return c.rdb.Set(ctx, unreadKey(userID), count, c.ttl).Err()
}

func (c *RedisUnreadCounter) Invalidate(ctx context.Context, userID uint) error {
	return c.rdb.Del(ctx, unreadKey(userID)).Err()
}

// NoopUnreadCounter - кэш отключен (redis.addr не задан)
type NoopUnreadCounter struct{}

func (NoopUnreadCounter) Get(context.Context, uint) (int64, bool, error) { return 0, false, nil }
func (NoopUnreadCounter) Set(context.Context, uint, int64) error         { return nil }
func (NoopUnreadCounter) Invalidate(context.Context, uint) error         { return nil }

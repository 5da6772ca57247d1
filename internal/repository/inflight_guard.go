package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const inflightKeyPrefix = "psp_inflight:"

// redisCmdable is the part of *redis.Client the guard needs.
type redisCmdable interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisInFlightGuard marks a key as being processed for at most ttl.
type RedisInFlightGuard struct {
	client redisCmdable
	ttl    time.Duration
}

func NewRedisInFlightGuard(client redisCmdable, ttl time.Duration) *RedisInFlightGuard {
	return &RedisInFlightGuard{client: client, ttl: ttl}
}

// Acquire reports false when another worker holds key.
func (g *RedisInFlightGuard) Acquire(ctx context.Context, key string) (bool, error) {
	return g.client.SetNX(ctx, inflightKeyPrefix+key, "1", g.ttl).Result()
}

func (g *RedisInFlightGuard) Release(ctx context.Context, key string) error {
	return g.client.Del(ctx, inflightKeyPrefix+key).Err()
}

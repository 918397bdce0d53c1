// Package cache stores computed booking quotes so repeated reads of a booking
// skip the database round trips.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by Get when no entry exists for the key.
var ErrMiss = errors.New("cache miss")

// QuoteCache is a JSON blob store with per-entry expiry.
type QuoteCache interface {
	Get(ctx context.Context, bookingID string, dst any) error
	Set(ctx context.Context, bookingID string, v any) error
	Delete(ctx context.Context, bookingID string) error
	Ping(ctx context.Context) error
}

func quoteKey(bookingID string) string {
	return "quote:booking:" + bookingID
}

type RedisQuoteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

func NewRedisQuoteCache(client *redis.Client, ttl time.Duration) *RedisQuoteCache {
	return &RedisQuoteCache{client: client, ttl: ttl}
}

func (c *RedisQuoteCache) Get(ctx context.Context, bookingID string, dst any) error {
	data, err := c.client.Get(ctx, quoteKey(bookingID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return fmt.Errorf("get quote: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode quote: %w", err)
	}
	return nil
}

func (c *RedisQuoteCache) Set(ctx context.Context, bookingID string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode quote: %w", err)
	}
	if err := c.client.Set(ctx, quoteKey(bookingID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set quote: %w", err)
	}
	return nil
}

func (c *RedisQuoteCache) Delete(ctx context.Context, bookingID string) error {
	return c.client.Del(ctx, quoteKey(bookingID)).Err()
}

func (c *RedisQuoteCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Noop is used when no Redis address is configured. Every Get misses.
type Noop struct{}

func (Noop) Get(context.Context, string, any) error { return ErrMiss }
func (Noop) Set(context.Context, string, any) error { return nil }
func (Noop) Delete(context.Context, string) error   { return nil }
func (Noop) Ping(context.Context) error             { return nil }

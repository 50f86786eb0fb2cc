package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"camping-fun/server/config"
)

// Client wraps go-redis. It currently backs the write rate limiter only.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient connects and pings Redis.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── rate limiting ──

const rateLimitPrefix = "rate_limit:"

// CheckRateLimit records one hit for key and reports whether it is within
// limit hits over the trailing window. Every key is a sorted set of hit
// timestamps; hits older than the window are trimmed on each call.
// Rejected hits are removed again, so retrying while blocked does not
// push the window forward.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := time.Now()
	k := rateLimitPrefix + key
	cutoff := strconv.FormatInt(now.Add(-window).UnixMicro(), 10)
	member := uuid.NewString()

	pipe := c.rdb.TxPipeline()
	pipe.ZRemRangeByScore(ctx, k, "-inf", "("+cutoff)
	pipe.ZAdd(ctx, k, goredis.Z{Score: float64(now.UnixMicro()), Member: member})
	count := pipe.ZCard(ctx, k)
	pipe.PExpire(ctx, k, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	if count.Val() <= int64(limit) {
		return true, nil
	}

	if err := c.rdb.ZRem(ctx, k, member).Err(); err != nil {
		c.logger.Warn("drop rejected rate limit hit", zap.String("key", k), zap.Error(err))
	}
	return false, nil
}

// Close releases the connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}

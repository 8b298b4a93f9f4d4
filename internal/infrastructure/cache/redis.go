package cache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"go-medical-seeder/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const redisDialTimeout = 5 * time.Second

// NewRedisClient connects to the redis server that guards seeding runs.
// The lock TTL must be positive or a crashed run would hold the lock forever.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig, log *logrus.Logger) (*redis.Client, error) {
	if !cfg.Enabled() {
		return nil, errors.New("redis host is not configured")
	}
	if cfg.LockTTL <= 0 {
		return nil, fmt.Errorf("invalid seed lock ttl %s", cfg.LockTTL)
	}

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: redisDialTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	log.WithField("addr", addr).Info("Successfully connected to Redis")

	return client, nil
}

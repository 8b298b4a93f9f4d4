package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrSeedInProgress is returned when another seeding process holds the lock
var ErrSeedInProgress = errors.New("another seeding run is in progress")

// RunLockKey is the redis key guarding seeding runs
const RunLockKey = "seeder:lock:seed"

// releaseLockScript deletes the key only if it still holds our token,
// so a run that outlived its TTL cannot release a newer run's lock.
var releaseLockScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

// RunLock keeps seeding runs from overlapping
type RunLock interface {
	// Acquire returns a release func, or ErrSeedInProgress
	Acquire(ctx context.Context) (func(), error)
}

type redisRunLock struct {
	client *redis.Client
	log    *logrus.Logger
	ttl    time.Duration
}

func NewRedisRunLock(client *redis.Client, log *logrus.Logger, ttl time.Duration) RunLock {
	return &redisRunLock{client: client, log: log, ttl: ttl}
}

func (l *redisRunLock) Acquire(ctx context.Context) (func(), error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, RunLockKey, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire seeding lock: %w", err)
	}
	if !ok {
		return nil, ErrSeedInProgress
	}

	release := func() {
		// The caller's context may already be cancelled
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := releaseLockScript.Run(ctx, l.client, []string{RunLockKey}, token).Err(); err != nil {
			l.log.Warnf("Failed to release seeding lock: %+v", err)
		}
	}
	return release, nil
}

type noopRunLock struct{}

// NewNoopRunLock is used when no redis server is configured
func NewNoopRunLock() RunLock {
	return noopRunLock{}
}

func (noopRunLock) Acquire(ctx context.Context) (func(), error) {
	return func() {}, nil
}

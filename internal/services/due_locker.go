package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dueLockTTL = 2 * time.Minute

// RedisDueLocker holds a short-lived advisory lock per due while an order
// initiation is in flight. The TTL covers the crash case where Release
// never runs.
type RedisDueLocker struct {
	RDB *redis.Client
}

func lockKey(dueID string) string {
	return fmt.Sprintf("paylock:due:%s", dueID)
}

func (l *RedisDueLocker) Acquire(ctx context.Context, dueID string) (bool, error) {
	return l.RDB.SetNX(ctx, lockKey(dueID), 1, dueLockTTL).Result()
}

func (l *RedisDueLocker) Release(ctx context.Context, dueID string) {
	l.RDB.Del(ctx, lockKey(dueID))
}

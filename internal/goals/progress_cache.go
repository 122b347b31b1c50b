package goals

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// RedisProgressCache keeps computed goal progress in redis for a short
// TTL, so a burst of refresh triggers does not recompute every goal
// each time. Cache failures are soft: a broken cache degrades to
// recomputation, never to an error.
type RedisProgressCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisProgressCache(rdb *redis.Client, ttl time.Duration) *RedisProgressCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisProgressCache{
		rdb: rdb,
		ttl: ttl,
	}
}

func progressKey(goalID string) string {
	return fmt.Sprintf("macrotrack::goal-progress::%s", goalID)
}

func (c *RedisProgressCache) Get(ctx context.Context, goalID string) (*Progress, bool) {
	raw, err := c.rdb.Get(ctx, progressKey(goalID)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Errorf("progress cache: get %s: %s", goalID, err)
		}
		return nil, false
	}

	var progress Progress
	if err := json.Unmarshal([]byte(raw), &progress); err != nil {
		log.Errorf("progress cache: unmarshal %s: %s", goalID, err)
		return nil, false
	}
	return &progress, true
}

func (c *RedisProgressCache) Set(ctx context.Context, progress *Progress) {
	raw, err := json.Marshal(progress)
	if err != nil {
		log.Errorf("progress cache: marshal %s: %s", progress.GoalID, err)
		return
	}
	if err := c.rdb.Set(ctx, progressKey(progress.GoalID), raw, c.ttl).Err(); err != nil {
		log.Errorf("progress cache: set %s: %s", progress.GoalID, err)
	}
}

func (c *RedisProgressCache) Invalidate(ctx context.Context, goalIDs ...string) {
	if len(goalIDs) == 0 {
		return
	}
	keys := make([]string, 0, len(goalIDs))
	for _, goalID := range goalIDs {
		keys = append(keys, progressKey(goalID))
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Errorf("progress cache: invalidate: %s", err)
	}
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tanker-plan-service/internal/domain"
	"tanker-plan-service/internal/platform/obs"
)

// Stored for keys whose route turned out infeasible. Caching the
// absence keeps cached and uncached calls in agreement.
const noPlanSentinel = "null"

// Redis-backed implementation of the PlanCache port. Entries carry a
// TTL so stale fuel prices age out of cached plans on their own.
type RedisPlanCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisPlanCache(client *redis.Client, ttl time.Duration) *RedisPlanCache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &RedisPlanCache{Client: client, TTL: ttl}
}

// Fetch a cached plan. The bool is false on a miss.
func (c *RedisPlanCache) GetPlan(ctx context.Context, key string) (_ *domain.MultiLegPlan, _ bool, err error) {
	defer obs.Time(ctx, "plan.cache.GetPlan")(&err)

	if c.Client == nil {
		return nil, false, errors.New("plan cache: client is nil")
	}

	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("plan cache: get %q: %w", key, err)
	}

	if val == noPlanSentinel {
		return nil, true, nil
	}

	var plan domain.MultiLegPlan
	if err := json.Unmarshal([]byte(val), &plan); err != nil {
		return nil, false, fmt.Errorf("plan cache: decode cached plan for %q: %w", key, err)
	}
	return &plan, true, nil
}

// Store a computed plan, or the infeasible sentinel for a nil plan.
func (c *RedisPlanCache) SetPlan(ctx context.Context, key string, plan *domain.MultiLegPlan) (err error) {
	defer obs.Time(ctx, "plan.cache.SetPlan")(&err)

	if c.Client == nil {
		return errors.New("plan cache: client is nil")
	}

	val := noPlanSentinel
	if plan != nil {
		b, err := json.Marshal(plan)
		if err != nil {
			return fmt.Errorf("plan cache: encode plan for %q: %w", key, err)
		}
		val = string(b)
	}

	if err := c.Client.Set(ctx, key, val, c.TTL).Err(); err != nil {
		return fmt.Errorf("plan cache: set %q: %w", key, err)
	}
	return nil
}

package adapters

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisCounter implements the PendingCounter interface against the pending
// index set maintained by the storage layer (one member per pending order id).
type RedisCounter struct {
	// client is the shared Redis connection.
	client *redis.Client
	// key is the set holding pending order ids.
	key string
}

// NewRedisCounter creates a new Redis-backed pending counter.
func NewRedisCounter(client *redis.Client, key string) *RedisCounter {
	return &RedisCounter{
		client: client,
		key:    key,
	}
}

// CountPending returns the cardinality of the pending index set.
// A missing key counts as zero pending orders.
func (c *RedisCounter) CountPending(ctx context.Context) (int64, error) {
	count, err := c.client.SCard(ctx, c.key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count pending orders: %w", err)
	}
	return count, nil
}

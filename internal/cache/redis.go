package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const ingestedSetKey = "courtside:ingested"

// SeenCache tracks game ids that have already been ingested, so re-runs
// and concurrent processes skip the fetch entirely instead of discovering
// the duplicate at the database. A nil *SeenCache is valid and remembers
// nothing; the pipeline runs fine without Redis configured.
type SeenCache struct {
	client *redis.Client
}

// NewSeenCache connects to Redis and verifies the connection.
func NewSeenCache(redisURL string) (*SeenCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &SeenCache{
		client: client,
	}, nil
}

// Close closes the Redis connection
func (sc *SeenCache) Close() error {
	if sc == nil {
		return nil
	}
	return sc.client.Close()
}

// HealthCheck pings Redis to verify connection
func (sc *SeenCache) HealthCheck(ctx context.Context) error {
	if sc == nil {
		return nil
	}
	return sc.client.Ping(ctx).Err()
}

// AlreadyIngested reports whether gameID was marked by a previous run.
// Lookup failures read as "not seen"; the database uniqueness constraint
// is the backstop, this cache only saves fetches.
func (sc *SeenCache) AlreadyIngested(ctx context.Context, gameID string) bool {
	if sc == nil {
		return false
	}
	seen, err := sc.client.SIsMember(ctx, ingestedSetKey, gameID).Result()
	if err != nil {
		return false
	}
	return seen
}

// MarkIngested records game ids as ingested.
func (sc *SeenCache) MarkIngested(ctx context.Context, gameIDs ...string) error {
	if sc == nil || len(gameIDs) == 0 {
		return nil
	}
	members := make([]interface{}, len(gameIDs))
	for i, id := range gameIDs {
		members[i] = id
	}
	return sc.client.SAdd(ctx, ingestedSetKey, members...).Err()
}

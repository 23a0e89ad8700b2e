package question

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultCacheTTL = 5 * time.Minute
	cachePrefix     = "questions"
)

// Cache provides Redis-backed corpus caching to offload repeated filter
// lookups during game creation.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ CorpusCache = (*Cache)(nil)

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) key(f Filter) string {
	return strings.Join([]string{
		cachePrefix,
		strings.ToLower(f.Difficulty),
		f.Category,
	}, ":")
}

func (c *Cache) Get(ctx context.Context, f Filter) ([]Question, bool, error) {
	data, err := c.client.Get(ctx, c.key(f)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, false, err
	}
	return questions, true, nil
}

func (c *Cache) Set(ctx context.Context, f Filter, questions []Question) error {
	data, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(f), data, c.ttl).Err()
}

// Invalidate drops every cached corpus entry; called after corpus mutations.
func (c *Cache) Invalidate(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, cachePrefix+":*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

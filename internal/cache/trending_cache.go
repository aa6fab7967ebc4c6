package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const trendingKey = "courses:trending"

// TrendingCache tallies how often each course is the top recommendation
type TrendingCache interface {
	Bump(ctx context.Context, courseID string) error
	Top(ctx context.Context, limit int) ([]TrendingEntry, error)
}

// TrendingEntry is one row of the trending list
type TrendingEntry struct {
	CourseID string `json:"courseId"`
	Count    int    `json:"count"`
	Rank     int    `json:"rank"`
}

type trendingCache struct {
	client *redis.Client
}

func NewTrendingCache(client *redis.Client) TrendingCache {
	return &trendingCache{
		client: client,
	}
}

func (c *trendingCache) Bump(ctx context.Context, courseID string) error {
	return c.client.ZIncrBy(ctx, trendingKey, 1, courseID).Err()
}

func (c *trendingCache) Top(ctx context.Context, limit int) ([]TrendingEntry, error) {
	if limit <= 0 {
		return nil, nil
	}
	results, err := c.client.ZRevRangeWithScores(ctx, trendingKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]TrendingEntry, len(results))
	for i, z := range results {
		id, _ := z.Member.(string)
		entries[i] = TrendingEntry{
			CourseID: id,
			Count:    int(z.Score),
			Rank:     i + 1,
		}
	}
	return entries, nil
}

package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// QuestionStats counts what students did with one question across sessions
type QuestionStats struct {
	QuestionID string `json:"questionId"`
	Answered   int    `json:"answered"`
	Reverted   int    `json:"reverted"`
	Invalid    int    `json:"invalid"`
}

// QuestionStatsCache keeps per-question tallies for counselors
type QuestionStatsCache interface {
	IncrementAnswered(ctx context.Context, questionID string) error
	IncrementReverted(ctx context.Context, questionID string) error
	IncrementInvalid(ctx context.Context, questionID string) error
	Get(ctx context.Context, questionIDs []string) ([]QuestionStats, error)
}

type questionStatsCache struct {
	client *redis.Client
}

func NewQuestionStatsCache(client *redis.Client) QuestionStatsCache {
	return &questionStatsCache{client: client}
}

func (c *questionStatsCache) key(questionID string) string {
	return fmt.Sprintf("question:%s:stats", questionID)
}

func (c *questionStatsCache) incr(ctx context.Context, questionID, field string) error {
	return c.client.HIncrBy(ctx, c.key(questionID), field, 1).Err()
}

func (c *questionStatsCache) IncrementAnswered(ctx context.Context, questionID string) error {
	return c.incr(ctx, questionID, "answered")
}

func (c *questionStatsCache) IncrementReverted(ctx context.Context, questionID string) error {
	return c.incr(ctx, questionID, "reverted")
}

func (c *questionStatsCache) IncrementInvalid(ctx context.Context, questionID string) error {
	return c.incr(ctx, questionID, "invalid")
}

// Get returns stats in the order of questionIDs; unseen questions are zero
func (c *questionStatsCache) Get(ctx context.Context, questionIDs []string) ([]QuestionStats, error) {
	pipe := c.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(questionIDs))
	for i, id := range questionIDs {
		cmds[i] = pipe.HGetAll(ctx, c.key(id))
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, err
	}

	out := make([]QuestionStats, len(questionIDs))
	for i, id := range questionIDs {
		fields := cmds[i].Val()
		out[i] = QuestionStats{
			QuestionID: id,
			Answered:   atoi(fields["answered"]),
			Reverted:   atoi(fields["reverted"]),
			Invalid:    atoi(fields["invalid"]),
		}
	}
	return out, nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

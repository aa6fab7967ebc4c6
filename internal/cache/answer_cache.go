package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"careercompass/internal/model"
)

// AnswerCache stores each session's flat raw-answer map as a redis hash
// keyed by question id, and the answer log beside it as a JSON string. The
// two keys are the only place in-progress answers live.
type AnswerCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAnswerCache creates an answer cache; ttl is refreshed on every write
func NewAnswerCache(client *redis.Client, ttl time.Duration) *AnswerCache {
	return &AnswerCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *AnswerCache) key(sessionID string) string {
	return fmt.Sprintf("assessment:%s:answers", sessionID)
}

func (c *AnswerCache) logKey(sessionID string) string {
	return fmt.Sprintf("assessment:%s:log", sessionID)
}

// Load returns the stored answers, empty when none exist
func (c *AnswerCache) Load(ctx context.Context, sessionID string) (map[string]string, error) {
	data, err := c.client.HGetAll(ctx, c.key(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load answers for %s: %w", sessionID, err)
	}
	return data, nil
}

// Put stores one raw answer, replacing any earlier answer to the question
func (c *AnswerCache) Put(ctx context.Context, sessionID, questionID, raw string) error {
	key := c.key(sessionID)
	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, questionID, raw)
	pipe.Expire(ctx, key, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store answer %s for %s: %w", questionID, sessionID, err)
	}
	return nil
}

// Remove deletes one answer
func (c *AnswerCache) Remove(ctx context.Context, sessionID, questionID string) error {
	return c.client.HDel(ctx, c.key(sessionID), questionID).Err()
}

// Clear drops every answer of a session and its log
func (c *AnswerCache) Clear(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, c.key(sessionID), c.logKey(sessionID)).Err()
}

// LoadLog returns the stored answer log, nil when none exists
func (c *AnswerCache) LoadLog(ctx context.Context, sessionID string) ([]model.AnswerRecord, error) {
	data, err := c.client.Get(ctx, c.logKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load answer log for %s: %w", sessionID, err)
	}

	var log []model.AnswerRecord
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("failed to decode answer log for %s: %w", sessionID, err)
	}
	return log, nil
}

// SaveLog replaces the answer log and refreshes the ttl of both keys
func (c *AnswerCache) SaveLog(ctx context.Context, sessionID string, log []model.AnswerRecord) error {
	data, err := json.Marshal(log)
	if err != nil {
		return err
	}
	pipe := c.client.TxPipeline()
	pipe.Set(ctx, c.logKey(sessionID), data, c.ttl)
	pipe.Expire(ctx, c.key(sessionID), c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store answer log for %s: %w", sessionID, err)
	}
	return nil
}

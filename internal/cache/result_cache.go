package cache

import (
	"careerfit/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResultCache keeps finished reports hot for the results page
type ResultCache interface {
	Set(ctx context.Context, result *model.AssessmentResult) error
	Get(ctx context.Context, sessionID string) (*model.AssessmentResult, error)
}

type resultCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResultCache(client *redis.Client, ttl time.Duration) ResultCache {
	return &resultCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *resultCache) key(sessionID string) string {
	return fmt.Sprintf("result:%s", sessionID)
}

func (c *resultCache) Set(ctx context.Context, result *model.AssessmentResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(result.SessionID), data, c.ttl).Err()
}

func (c *resultCache) Get(ctx context.Context, sessionID string) (*model.AssessmentResult, error) {
	data, err := c.client.Get(ctx, c.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var result model.AssessmentResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

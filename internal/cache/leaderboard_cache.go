package cache

import (
	"careerfit/internal/model"
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// LeaderboardCache keeps the overall score distribution of each assessment in a ZSET
type LeaderboardCache interface {
	Record(ctx context.Context, assessmentID, sessionID string, score int) error
	Standing(ctx context.Context, assessmentID, sessionID string) (*model.Standing, error)
	Remove(ctx context.Context, assessmentID string) error
}

type leaderboardCache struct {
	client *redis.Client
}

func NewLeaderboardCache(client *redis.Client) LeaderboardCache {
	return &leaderboardCache{
		client: client,
	}
}

func (c *leaderboardCache) key(assessmentID string) string {
	return fmt.Sprintf("assessment:%s:scores", assessmentID)
}

func (c *leaderboardCache) Record(ctx context.Context, assessmentID, sessionID string, score int) error {
	return c.client.ZAdd(ctx, c.key(assessmentID), redis.Z{
		Score:  float64(score),
		Member: sessionID,
	}).Err()
}

// Standing returns nil when the session has no recorded score.
// Equal scores share a rank.
func (c *leaderboardCache) Standing(ctx context.Context, assessmentID, sessionID string) (*model.Standing, error) {
	key := c.key(assessmentID)

	score, err := c.client.ZScore(ctx, key, sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s := strconv.FormatFloat(score, 'f', -1, 64)
	pipe := c.client.Pipeline()
	totalCmd := pipe.ZCard(ctx, key)
	aboveCmd := pipe.ZCount(ctx, key, "("+s, "+inf")
	belowCmd := pipe.ZCount(ctx, key, "-inf", "("+s)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	return standingFrom(aboveCmd.Val(), belowCmd.Val(), totalCmd.Val()), nil
}

func (c *leaderboardCache) Remove(ctx context.Context, assessmentID string) error {
	return c.client.Del(ctx, c.key(assessmentID)).Err()
}

func standingFrom(above, below, total int64) *model.Standing {
	st := &model.Standing{Rank: above + 1, Total: total}
	if total > 0 {
		st.Percentile = int(math.Round(float64(below) * 100 / float64(total)))
	}
	return st
}

package cache

import (
	"careerfit/internal/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrSessionConflict is returned when an update keeps losing the optimistic lock
var ErrSessionConflict = errors.New("attempt session changed concurrently")

const maxUpdateRetries = 5

// SessionCache stores in-progress attempt sessions
type SessionCache interface {
	Set(ctx context.Context, session *model.AttemptSession) error
	Get(ctx context.Context, id string) (*model.AttemptSession, error)
	// Update runs fn on the current session and writes it back atomically.
	// fn is not called when the session does not exist.
	Update(ctx context.Context, id string, fn func(*model.AttemptSession) error) (*model.AttemptSession, error)
}

type sessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionCache(client *redis.Client, ttl time.Duration) SessionCache {
	return &sessionCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *sessionCache) key(id string) string {
	return fmt.Sprintf("attempt:%s", id)
}

func (c *sessionCache) Set(ctx context.Context, session *model.AttemptSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(session.ID), data, c.ttl).Err()
}

func (c *sessionCache) Get(ctx context.Context, id string) (*model.AttemptSession, error) {
	data, err := c.client.Get(ctx, c.key(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeSession(data)
}

func (c *sessionCache) Update(ctx context.Context, id string, fn func(*model.AttemptSession) error) (*model.AttemptSession, error) {
	key := c.key(id)
	var updated *model.AttemptSession

	txf := func(tx *redis.Tx) error {
		updated = nil
		data, err := tx.Get(ctx, key).Result()
		if err == redis.Nil {
			return nil
		}
		if err != nil {
			return err
		}
		session, err := decodeSession(data)
		if err != nil {
			return err
		}
		if err := fn(session); err != nil {
			return err
		}
		out, err := json.Marshal(session)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, c.ttl)
			return nil
		})
		if err == nil {
			updated = session
		}
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := c.client.Watch(ctx, txf, key)
		if err == redis.TxFailedErr {
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
	return nil, ErrSessionConflict
}

func decodeSession(data string) (*model.AttemptSession, error) {
	var session model.AttemptSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	if session.Answers == nil {
		session.Answers = make(map[model.SectionKind]model.SectionAnswerMap)
	}
	if session.Completed == nil {
		session.Completed = make(map[model.SectionKind]bool)
	}
	if session.Scores == nil {
		session.Scores = make(map[model.SectionKind]model.SectionScore)
	}
	return &session, nil
}

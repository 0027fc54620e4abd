package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"leadlens/internal/model"
)

// ErrStateNotFound means no in-progress assessment exists under that ID; the
// run either expired or was never started.
var ErrStateNotFound = errors.New("assessment state not found")

// In-progress runs expire if untouched; a completed run is persisted to Mongo
// before the key lapses.
const stateTTL = 2 * time.Hour

type StateCache interface {
	Set(ctx context.Context, state *model.AssessmentState) error
	Get(ctx context.Context, id string) (*model.AssessmentState, error)
	Delete(ctx context.Context, id string) error
}

type stateCache struct {
	client *redis.Client
}

func NewStateCache(client *redis.Client) StateCache {
	return &stateCache{
		client: client,
	}
}

func (c *stateCache) Set(ctx context.Context, state *model.AssessmentState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "assessment:"+state.ID, data, stateTTL).Err()
}

func (c *stateCache) Get(ctx context.Context, id string) (*model.AssessmentState, error) {
	data, err := c.client.Get(ctx, "assessment:"+id).Result()
	if err == redis.Nil {
		return nil, ErrStateNotFound
	}
	if err != nil {
		return nil, err
	}
	var state model.AssessmentState
	err = json.Unmarshal([]byte(data), &state)
	return &state, err
}

func (c *stateCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, "assessment:"+id).Err()
}

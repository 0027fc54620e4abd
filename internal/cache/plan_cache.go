package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"leadlens/internal/model"
)

type PlanCache interface {
	Set(ctx context.Context, plan *model.DevelopmentPlan) error
	GetByAssessmentID(ctx context.Context, assessmentID string) (*model.DevelopmentPlan, error)
	Delete(ctx context.Context, assessmentID string) error
}

type planCache struct {
	client *redis.Client
}

func NewPlanCache(client *redis.Client) PlanCache {
	return &planCache{
		client: client,
	}
}

func (c *planCache) Set(ctx context.Context, plan *model.DevelopmentPlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "plan:"+plan.AssessmentID, data, 24*time.Hour).Err()
}

func (c *planCache) GetByAssessmentID(ctx context.Context, assessmentID string) (*model.DevelopmentPlan, error) {
	data, err := c.client.Get(ctx, "plan:"+assessmentID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var plan model.DevelopmentPlan
	err = json.Unmarshal([]byte(data), &plan)
	return &plan, err
}

func (c *planCache) Delete(ctx context.Context, assessmentID string) error {
	return c.client.Del(ctx, "plan:"+assessmentID).Err()
}

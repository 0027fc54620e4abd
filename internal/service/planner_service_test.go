package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadlens/internal/config"
	"leadlens/internal/model"
)

type fakePlanRepo struct {
	byID    map[string]*model.DevelopmentPlan
	creates int
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{byID: make(map[string]*model.DevelopmentPlan)}
}

func (r *fakePlanRepo) Create(ctx context.Context, plan *model.DevelopmentPlan) error {
	r.creates++
	r.byID[plan.ID] = plan
	return nil
}

func (r *fakePlanRepo) GetByID(ctx context.Context, id string) (*model.DevelopmentPlan, error) {
	return r.byID[id], nil
}

func (r *fakePlanRepo) GetByUserID(ctx context.Context, userID string) ([]*model.DevelopmentPlan, error) {
	var out []*model.DevelopmentPlan
	for _, p := range r.byID {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePlanRepo) GetByAssessmentID(ctx context.Context, assessmentID string) (*model.DevelopmentPlan, error) {
	for _, p := range r.byID {
		if p.AssessmentID == assessmentID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePlanRepo) Update(ctx context.Context, plan *model.DevelopmentPlan) error {
	r.byID[plan.ID] = plan
	return nil
}

type fakePlanCache struct {
	byAssessment map[string]*model.DevelopmentPlan
}

func newFakePlanCache() *fakePlanCache {
	return &fakePlanCache{byAssessment: make(map[string]*model.DevelopmentPlan)}
}

func (c *fakePlanCache) Set(ctx context.Context, plan *model.DevelopmentPlan) error {
	c.byAssessment[plan.AssessmentID] = plan
	return nil
}

func (c *fakePlanCache) GetByAssessmentID(ctx context.Context, assessmentID string) (*model.DevelopmentPlan, error) {
	return c.byAssessment[assessmentID], nil
}

func (c *fakePlanCache) Delete(ctx context.Context, assessmentID string) error {
	delete(c.byAssessment, assessmentID)
	return nil
}

func completedAssessment(id, userID string) *model.Assessment {
	return &model.Assessment{
		ID:     id,
		UserID: userID,
		Demographics: &model.DemographicProfile{
			Name:          "Dana",
			JobTitle:      "Director of Engineering",
			DecisionLevel: "strategic",
			CompanySize:   1000,
		},
		ResponsibilityLevel: model.ResponsibilityLevel{Role: model.TierNames[4], Level: 4},
		Responses: []model.AssessmentResponse{
			{Question: "team skill", Rating: 2, ConfidenceRating: 2, Area: "Building a Team"},
			{Question: "hiring prompt", Response: "hiring is hard", Area: "Building a Team"},
			{Question: "develop skill", Rating: 5, ConfidenceRating: 5, Area: "Developing Others"},
		},
		Status: model.AssessmentCompleted,
	}
}

func newTestPlannerService() (*PlannerService, *fakePlanRepo, *fakePlanCache, *fakeAssessmentRepo, *fakeNotifier) {
	planRepo := newFakePlanRepo()
	planCache := newFakePlanCache()
	assessmentRepo := newFakeAssessmentRepo()
	notifier := &fakeNotifier{}

	svc := NewPlannerService(planRepo, planCache, assessmentRepo)
	// Force the deterministic mock regardless of the test environment.
	svc.config = &config.AIConfig{}
	svc.SetNotifier(notifier)
	return svc, planRepo, planCache, assessmentRepo, notifier
}

func TestGeneratePlanWithMock(t *testing.T) {
	ctx := context.Background()
	svc, planRepo, planCache, assessmentRepo, notifier := newTestPlannerService()
	require.NoError(t, assessmentRepo.Create(ctx, completedAssessment("a-1", "user-1")))

	plan, err := svc.Generate(ctx, "user-1", "a-1")
	require.NoError(t, err)
	assert.Equal(t, model.PlanReady, plan.Status)
	require.NotNil(t, plan.Document)
	assert.Equal(t, "Dana", plan.Document.DevelopmentPlan.ParticipantName)

	// One analysis per capability covered by the responses.
	analyses := plan.Document.DevelopmentPlan.CapabilityAnalysis
	require.Len(t, analyses, 2)
	assert.Equal(t, "Building a Team", analyses[0].Capability)
	assert.Equal(t, "Developing Others", analyses[1].Capability)

	stored, err := planRepo.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, plan, stored)

	cached, err := planCache.GetByAssessmentID(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, plan, cached)

	require.NotEmpty(t, notifier.events)
	assert.Equal(t, "plan_ready", notifier.events[len(notifier.events)-1].msgType)
}

func TestGeneratePlanReusesExisting(t *testing.T) {
	ctx := context.Background()
	svc, planRepo, _, assessmentRepo, _ := newTestPlannerService()
	require.NoError(t, assessmentRepo.Create(ctx, completedAssessment("a-1", "user-1")))

	first, err := svc.Generate(ctx, "user-1", "a-1")
	require.NoError(t, err)
	second, err := svc.Generate(ctx, "user-1", "a-1")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, planRepo.creates)
}

func TestGeneratePlanGuards(t *testing.T) {
	ctx := context.Background()
	svc, _, _, assessmentRepo, _ := newTestPlannerService()
	require.NoError(t, assessmentRepo.Create(ctx, completedAssessment("a-1", "user-1")))

	_, err := svc.Generate(ctx, "user-1", "missing")
	assert.ErrorIs(t, err, ErrAssessmentNotFound)

	_, err = svc.Generate(ctx, "intruder", "a-1")
	assert.ErrorIs(t, err, ErrNotOwner)

	empty := completedAssessment("a-2", "user-1")
	empty.Responses = nil
	require.NoError(t, assessmentRepo.Create(ctx, empty))
	_, err = svc.Generate(ctx, "user-1", "a-2")
	assert.ErrorIs(t, err, ErrAssessmentIncomplete)
}

func TestGetPlanOwnership(t *testing.T) {
	ctx := context.Background()
	svc, _, _, assessmentRepo, _ := newTestPlannerService()
	require.NoError(t, assessmentRepo.Create(ctx, completedAssessment("a-1", "user-1")))

	plan, err := svc.Generate(ctx, "user-1", "a-1")
	require.NoError(t, err)

	got, err := svc.Get(ctx, "user-1", plan.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.ID, got.ID)

	_, err = svc.Get(ctx, "intruder", plan.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	missing, err := svc.Get(ctx, "user-1", "missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
